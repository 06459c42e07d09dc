package entity

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// SwarmConfig holds movement timing and escalation
type SwarmConfig struct {
	Interval  time.Duration // Movement timer at game start
	Decrement time.Duration // Subtracted from the interval on every bounce
	Floor     time.Duration // Lower bound of the interval
}

// DefaultSwarmConfig returns the stock swarm timing
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Interval:  constants.SwarmInitialInterval,
		Decrement: constants.SwarmIntervalDecrement,
		Floor:     constants.SwarmIntervalFloor,
	}
}

// Direction is the lateral heading of the swarm
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Step describes what a swarm update did
type Step int

const (
	StepNone    Step = iota // Timer not ready or swarm empty
	StepLateral             // Moved one column
	StepDescend             // Bounced: direction flipped, descended one row, sped up
)

// Invader is one member of the swarm
type Invader struct {
	X, Y int
}

// Swarm moves every invader in lockstep on a shared timer
type Swarm struct {
	invaders  []Invader
	timer     core.Timer
	direction Direction
	decrement time.Duration
	floor     time.Duration
}

// NewSwarm builds the initial formation: every other cell, kept off the side edges and the
// top row, down to FormationDepth
func NewSwarm(cfg SwarmConfig) *Swarm {
	var invaders []Invader
	for x := 0; x < constants.Cols; x++ {
		for y := 0; y < constants.Rows; y++ {
			if x >= constants.FormationMarginX &&
				x < constants.Cols-constants.FormationMarginX &&
				y > 0 &&
				y < constants.FormationDepth &&
				x%constants.FormationSpacing == 0 &&
				y%constants.FormationSpacing == 0 {
				invaders = append(invaders, Invader{X: x, Y: y})
			}
		}
	}
	return NewSwarmAt(cfg, invaders, Right)
}

// NewSwarmAt builds a swarm from explicit positions
func NewSwarmAt(cfg SwarmConfig, invaders []Invader, dir Direction) *Swarm {
	army := make([]Invader, len(invaders))
	copy(army, invaders)
	return &Swarm{
		invaders:  army,
		timer:     core.NewTimer(cfg.Interval),
		direction: dir,
		decrement: cfg.Decrement,
		floor:     cfg.Floor,
	}
}

// Update advances the movement timer and moves the swarm when it fires
func (s *Swarm) Update(delta time.Duration) Step {
	s.timer.Update(delta)
	if !s.timer.Ready {
		return StepNone
	}
	s.timer.Reset()

	// Nothing to move, but the timer keeps cycling
	if len(s.invaders) == 0 {
		return StepNone
	}

	// Bounce: flip, speed up, and drop one row instead of moving sideways
	if s.atEdge() {
		s.direction = -s.direction
		s.escalate()
		for i := range s.invaders {
			s.invaders[i].Y++
		}
		return StepDescend
	}

	// Lateral step in lockstep
	for i := range s.invaders {
		s.invaders[i].X += int(s.direction)
	}
	return StepLateral
}

// atEdge reports whether the leading invader touches the boundary in the current direction
func (s *Swarm) atEdge() bool {
	extreme := s.invaders[0].X
	for _, inv := range s.invaders[1:] {
		if s.direction == Left && inv.X < extreme {
			extreme = inv.X
		}
		if s.direction == Right && inv.X > extreme {
			extreme = inv.X
		}
	}
	if s.direction == Left {
		return extreme == 0
	}
	return extreme == constants.Cols-1
}

// escalate shortens the movement timer, never below the floor
func (s *Swarm) escalate() {
	next := s.timer.Duration - s.decrement
	if next < s.floor {
		next = s.floor
	}
	s.timer = core.NewTimer(next)
}

// AllKilled reports the win condition
func (s *Swarm) AllKilled() bool {
	return len(s.invaders) == 0
}

// ReachedBottom reports the loss condition
func (s *Swarm) ReachedBottom() bool {
	for _, inv := range s.invaders {
		if inv.Y >= constants.Rows-1 {
			return true
		}
	}
	return false
}

// KillInvaderAt removes the invader at (x, y) and reports whether one was there
func (s *Swarm) KillInvaderAt(x, y int) bool {
	for i, inv := range s.invaders {
		if inv.X == x && inv.Y == y {
			s.invaders = append(s.invaders[:i], s.invaders[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of living invaders
func (s *Swarm) Len() int {
	return len(s.invaders)
}

// Invaders returns a copy of the living invaders
func (s *Swarm) Invaders() []Invader {
	out := make([]Invader, len(s.invaders))
	copy(out, s.invaders)
	return out
}

// Direction returns the current heading
func (s *Swarm) Direction() Direction {
	return s.direction
}

// Interval returns the current movement timer duration
func (s *Swarm) Interval() time.Duration {
	return s.timer.Duration
}

// Draw implements core.Drawable; the glyph alternates with the movement timer
func (s *Swarm) Draw(f *core.Frame) {
	g := core.GlyphInvaderB
	if s.timer.Progress() > 0.5 {
		g = core.GlyphInvaderA
	}
	for _, inv := range s.invaders {
		f[inv.X][inv.Y] = g
	}
}
