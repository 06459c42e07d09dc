package entity

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// PlayerConfig holds the shot cap and the timing of fired shots
type PlayerConfig struct {
	MaxShots int
	Shot     ShotConfig
}

// DefaultPlayerConfig returns the stock player settings
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MaxShots: constants.MaxShots,
		Shot:     DefaultShotConfig(),
	}
}

// Player is the ship on the bottom row; it owns its shots in firing order
type Player struct {
	x, y  int
	shots []*Shot
	cfg   PlayerConfig
}

// NewPlayer places the ship mid-screen on the last row
func NewPlayer(cfg PlayerConfig) *Player {
	return &Player{
		x:   constants.Cols / 2,
		y:   constants.Rows - 1,
		cfg: cfg,
	}
}

// MoveLeft moves one column left, clamped at the edge
func (p *Player) MoveLeft() {
	if p.x > 0 {
		p.x--
	}
}

// MoveRight moves one column right, clamped at the edge
func (p *Player) MoveRight() {
	if p.x < constants.Cols-1 {
		p.x++
	}
}

// Shoot fires a shot from the row above the ship if under the cap
func (p *Player) Shoot() bool {
	if len(p.shots) >= p.cfg.MaxShots {
		return false
	}
	p.shots = append(p.shots, NewShot(p.x, p.y-1, p.cfg.Shot))
	return true
}

// Update advances every shot and drops the dead ones
func (p *Player) Update(delta time.Duration) {
	alive := p.shots[:0]
	for _, s := range p.shots {
		s.Update(delta)
		if !s.Dead() {
			alive = append(alive, s)
		}
	}
	for i := len(alive); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = alive
}

// DetectHits explodes every flying shot that lands on an invader, reporting any hit
func (p *Player) DetectHits(s *Swarm) bool {
	hit := false
	for _, shot := range p.shots {
		if shot.Exploding {
			continue
		}
		if s.KillInvaderAt(shot.X, shot.Y) {
			shot.Explode()
			hit = true
		}
	}
	return hit
}

// Position returns the ship coordinates
func (p *Player) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// Shots returns a snapshot of the owned shots
func (p *Player) Shots() []Shot {
	out := make([]Shot, len(p.shots))
	for i, s := range p.shots {
		out[i] = *s
	}
	return out
}

// Draw implements core.Drawable, painting the ship and its shots
func (p *Player) Draw(f *core.Frame) {
	f[p.x][p.y] = core.GlyphShip
	for _, s := range p.shots {
		s.Draw(f)
	}
}
