package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

func TestSwarmFormationDeterministic(t *testing.T) {
	a := NewSwarm(DefaultSwarmConfig())
	b := NewSwarm(DefaultSwarmConfig())

	if diff := cmp.Diff(a.Invaders(), b.Invaders()); diff != "" {
		t.Fatalf("Formation differs between runs (-a +b):\n%s", diff)
	}

	// Even columns 2..36, even rows 2..8
	if a.Len() != 18*4 {
		t.Errorf("Expected 72 invaders, got %d", a.Len())
	}
	for _, inv := range a.Invaders() {
		if inv.X < 2 || inv.X > constants.Cols-3 || inv.X%2 != 0 {
			t.Errorf("Invader column out of formation: %+v", inv)
		}
		if inv.Y < 1 || inv.Y >= constants.FormationDepth || inv.Y%2 != 0 {
			t.Errorf("Invader row out of formation: %+v", inv)
		}
	}
	if a.Direction() != Right {
		t.Errorf("Expected initial direction right, got %v", a.Direction())
	}
	if a.Interval() != constants.SwarmInitialInterval {
		t.Errorf("Expected interval %v, got %v", constants.SwarmInitialInterval, a.Interval())
	}
}

func TestSwarmBounceAtLeftEdge(t *testing.T) {
	cfg := DefaultSwarmConfig()
	s := NewSwarmAt(cfg, []Invader{{X: 0, Y: 5}}, Left)

	if step := s.Update(cfg.Interval); step != StepDescend {
		t.Fatalf("Expected StepDescend, got %v", step)
	}
	if s.Direction() != Right {
		t.Errorf("Expected direction right after bounce, got %v", s.Direction())
	}
	if diff := cmp.Diff([]Invader{{X: 0, Y: 6}}, s.Invaders()); diff != "" {
		t.Errorf("Unexpected position (-want +got):\n%s", diff)
	}
	if want := cfg.Interval - cfg.Decrement; s.Interval() != want {
		t.Errorf("Expected interval %v, got %v", want, s.Interval())
	}
}

func TestSwarmLateralMove(t *testing.T) {
	cfg := DefaultSwarmConfig()
	s := NewSwarmAt(cfg, []Invader{{X: 4, Y: 2}, {X: 6, Y: 2}}, Right)

	if step := s.Update(cfg.Interval - time.Millisecond); step != StepNone {
		t.Fatalf("Swarm moved before timer fired: %v", step)
	}
	if step := s.Update(time.Millisecond); step != StepLateral {
		t.Fatalf("Expected StepLateral, got %v", step)
	}
	if diff := cmp.Diff([]Invader{{X: 5, Y: 2}, {X: 7, Y: 2}}, s.Invaders()); diff != "" {
		t.Errorf("Unexpected positions (-want +got):\n%s", diff)
	}
	if s.Interval() != cfg.Interval {
		t.Errorf("Lateral move changed interval to %v", s.Interval())
	}
}

func TestSwarmBounceAtRightEdge(t *testing.T) {
	cfg := DefaultSwarmConfig()
	s := NewSwarmAt(cfg, []Invader{{X: 10, Y: 3}, {X: constants.Cols - 1, Y: 3}}, Right)

	if step := s.Update(cfg.Interval); step != StepDescend {
		t.Fatalf("Expected StepDescend, got %v", step)
	}
	if s.Direction() != Left {
		t.Errorf("Expected direction left, got %v", s.Direction())
	}
	want := []Invader{{X: 10, Y: 4}, {X: constants.Cols - 1, Y: 4}}
	if diff := cmp.Diff(want, s.Invaders()); diff != "" {
		t.Errorf("Unexpected positions (-want +got):\n%s", diff)
	}
}

func TestSwarmIntervalFloor(t *testing.T) {
	cfg := SwarmConfig{Interval: 400 * time.Millisecond, Decrement: 250 * time.Millisecond, Floor: 250 * time.Millisecond}
	s := NewSwarmAt(cfg, []Invader{{X: 0, Y: 0}}, Left)

	s.Update(s.Interval())
	if s.Interval() != cfg.Floor {
		t.Errorf("Expected interval floored at %v, got %v", cfg.Floor, s.Interval())
	}
}

func TestSwarmEmptyIsInert(t *testing.T) {
	cfg := DefaultSwarmConfig()
	s := NewSwarmAt(cfg, nil, Left)

	if step := s.Update(cfg.Interval); step != StepNone {
		t.Errorf("Empty swarm moved: %v", step)
	}
	if !s.AllKilled() {
		t.Error("Expected AllKilled on empty swarm")
	}
	if s.ReachedBottom() {
		t.Error("Empty swarm cannot reach bottom")
	}
	if s.Interval() != cfg.Interval {
		t.Errorf("Empty swarm escalated to %v", s.Interval())
	}
}

func TestSwarmReachedBottom(t *testing.T) {
	s := NewSwarmAt(DefaultSwarmConfig(), []Invader{{X: 3, Y: constants.Rows - 2}}, Right)
	if s.ReachedBottom() {
		t.Fatal("Invader one row above bottom reported as landed")
	}

	s = NewSwarmAt(DefaultSwarmConfig(), []Invader{{X: 3, Y: constants.Rows - 1}}, Right)
	if !s.ReachedBottom() {
		t.Error("Invader on bottom row not detected")
	}
}

func TestKillInvaderAt(t *testing.T) {
	s := NewSwarm(DefaultSwarmConfig())
	n := s.Len()

	if !s.KillInvaderAt(2, 2) {
		t.Fatal("Expected kill at formation corner (2, 2)")
	}
	if s.KillInvaderAt(2, 2) {
		t.Error("Same coordinate killed twice")
	}
	if s.KillInvaderAt(3, 3) {
		t.Error("Killed an invader at an empty cell")
	}
	if s.Len() != n-1 {
		t.Errorf("Expected %d invaders, got %d", n-1, s.Len())
	}
}

func TestKillEveryInvaderWins(t *testing.T) {
	s := NewSwarm(DefaultSwarmConfig())
	for _, inv := range s.Invaders() {
		if !s.KillInvaderAt(inv.X, inv.Y) {
			t.Fatalf("Failed to kill invader at %+v", inv)
		}
	}
	if !s.AllKilled() {
		t.Errorf("Expected empty swarm, %d left", s.Len())
	}
}

func TestSwarmAnimationGlyph(t *testing.T) {
	cfg := DefaultSwarmConfig()
	s := NewSwarmAt(cfg, []Invader{{X: 5, Y: 5}}, Right)

	f := core.NewFrame()
	s.Draw(&f)
	if f[5][5] != core.GlyphInvaderB {
		t.Errorf("Expected %q early in the period, got %q", core.GlyphInvaderB, f[5][5])
	}

	s.Update(cfg.Interval*3/4)
	s.Draw(&f)
	if f[5][5] != core.GlyphInvaderA {
		t.Errorf("Expected %q late in the period, got %q", core.GlyphInvaderA, f[5][5])
	}
}

// TestSwarmEscalationFormula checks interval after N bounces is max(initial - dec*N, floor)
// and that direction flips exactly once per bounce. Invaders on both edges force a bounce
// on every timer fire.
func TestSwarmEscalationFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := DefaultSwarmConfig()
		bounces := rapid.IntRange(0, constants.Rows-2).Draw(t, "bounces")
		start := Direction(rapid.SampledFrom([]int{-1, 1}).Draw(t, "direction"))

		s := NewSwarmAt(cfg, []Invader{{X: 0, Y: 0}, {X: constants.Cols - 1, Y: 0}}, start)
		dir := start
		for i := 1; i <= bounces; i++ {
			if step := s.Update(s.Interval()); step != StepDescend {
				t.Fatalf("bounce %d: expected StepDescend, got %v", i, step)
			}
			dir = -dir
			if s.Direction() != dir {
				t.Fatalf("bounce %d: direction %v, want %v", i, s.Direction(), dir)
			}
		}

		want := cfg.Interval - time.Duration(bounces)*cfg.Decrement
		if want < cfg.Floor {
			want = cfg.Floor
		}
		if s.Interval() != want {
			t.Fatalf("after %d bounces interval %v, want %v", bounces, s.Interval(), want)
		}
	})
}
