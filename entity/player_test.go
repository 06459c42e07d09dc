package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

func TestPlayerStartPosition(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	want := core.Point{X: constants.Cols / 2, Y: constants.Rows - 1}
	if p.Position() != want {
		t.Errorf("Expected %+v, got %+v", want, p.Position())
	}
}

func TestPlayerMovementClamps(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())

	for i := 0; i < constants.Cols*2; i++ {
		p.MoveLeft()
	}
	if p.Position().X != 0 {
		t.Errorf("Expected x clamped at 0, got %d", p.Position().X)
	}

	for i := 0; i < constants.Cols*2; i++ {
		p.MoveRight()
	}
	if p.Position().X != constants.Cols-1 {
		t.Errorf("Expected x clamped at %d, got %d", constants.Cols-1, p.Position().X)
	}
	if p.Position().Y != constants.Rows-1 {
		t.Errorf("Vertical position changed to %d", p.Position().Y)
	}
}

func TestPlayerShotCap(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())

	if !p.Shoot() || !p.Shoot() {
		t.Fatal("Expected the first two shots to fire")
	}
	if p.Shoot() {
		t.Error("Third concurrent shot should be refused")
	}

	shots := p.Shots()
	if len(shots) != 2 {
		t.Fatalf("Expected 2 shots, got %d", len(shots))
	}
	for i, s := range shots {
		if s.X != 20 || s.Y != 18 {
			t.Errorf("Shot %d at (%d, %d), want (20, 18)", i, s.X, s.Y)
		}
	}
}

func TestPlayerShotCapConfigurable(t *testing.T) {
	cfg := DefaultPlayerConfig()
	cfg.MaxShots = 3
	p := NewPlayer(cfg)

	for i := 0; i < 3; i++ {
		if !p.Shoot() {
			t.Fatalf("Shot %d refused under cap 3", i+1)
		}
	}
	if p.Shoot() {
		t.Error("Fourth shot should be refused")
	}
}

func TestPlayerUpdateRemovesDeadShots(t *testing.T) {
	cfg := DefaultPlayerConfig()
	p := NewPlayer(cfg)
	p.Shoot()

	// Climb from row 18 to row 0
	for i := 0; i < constants.Rows-2; i++ {
		p.Update(cfg.Shot.Interval)
	}
	if n := len(p.Shots()); n != 0 {
		t.Errorf("Expected shot removed at top, %d left", n)
	}
	if !p.Shoot() {
		t.Error("Expected to fire again after shot died")
	}
}

func TestDetectHits(t *testing.T) {
	cfg := DefaultPlayerConfig()
	p := NewPlayer(cfg)
	s := NewSwarmAt(DefaultSwarmConfig(), []Invader{{X: 20, Y: 17}, {X: 30, Y: 3}}, Right)

	p.Shoot()
	if p.DetectHits(s) {
		t.Fatal("Hit reported before the shot reached the invader")
	}

	p.Update(cfg.Shot.Interval)
	if !p.DetectHits(s) {
		t.Fatal("Expected hit at (20, 17)")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 invader left, got %d", s.Len())
	}
	if !p.Shots()[0].Exploding {
		t.Error("Expected hitting shot to explode")
	}

	// Exploding shots never hit again
	if p.DetectHits(s) {
		t.Error("Exploding shot scored a second hit")
	}

	p.Update(cfg.Shot.Explosion)
	if n := len(p.Shots()); n != 0 {
		t.Errorf("Expected explosion removed, %d shots left", n)
	}
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.Shoot()

	f := core.NewFrame()
	p.Draw(&f)

	pos := p.Position()
	if f[pos.X][pos.Y] != core.GlyphShip {
		t.Errorf("Expected ship glyph, got %q", f[pos.X][pos.Y])
	}
	if f[pos.X][pos.Y-1] != core.GlyphProjectile {
		t.Errorf("Expected projectile above ship, got %q", f[pos.X][pos.Y-1])
	}
	if n := f.Count(); n != 2 {
		t.Errorf("Expected 2 painted cells, got %d", n)
	}
}

func TestShotsSnapshotIsolated(t *testing.T) {
	p := NewPlayer(DefaultPlayerConfig())
	p.Shoot()

	snap := p.Shots()
	snap[0].Y = 0

	if diff := cmp.Diff(p.Shots(), snap, cmpopts.IgnoreUnexported(Shot{})); diff == "" {
		t.Error("Mutating the snapshot changed the player's shot")
	}
}
