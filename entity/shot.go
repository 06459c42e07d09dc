package entity

import (
	"time"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// ShotConfig holds shot timing
type ShotConfig struct {
	Interval  time.Duration // Flight step period
	Explosion time.Duration // Explosion display countdown
}

// DefaultShotConfig returns the stock shot timing
func DefaultShotConfig() ShotConfig {
	return ShotConfig{
		Interval:  constants.ShotInterval,
		Explosion: constants.ExplosionDuration,
	}
}

// Shot is a projectile climbing one row per timer period.
// Lifecycle: flying -> exploding -> dead, or flying -> dead when it reaches row 0.
type Shot struct {
	X, Y      int
	Exploding bool

	timer     core.Timer
	explosion time.Duration
}

// NewShot creates a flying shot at (x, y)
func NewShot(x, y int, cfg ShotConfig) *Shot {
	return &Shot{
		X:         x,
		Y:         y,
		timer:     core.NewTimer(cfg.Interval),
		explosion: cfg.Explosion,
	}
}

// Update advances the shot timer; a flying shot climbs when it fires
func (s *Shot) Update(delta time.Duration) {
	s.timer.Update(delta)
	if s.Exploding || !s.timer.Ready {
		return
	}
	if s.Y > 0 {
		s.Y--
	}
	s.timer.Reset()
}

// Explode freezes the shot and swaps in the explosion countdown
func (s *Shot) Explode() {
	s.Exploding = true
	s.timer = core.NewTimer(s.explosion)
}

// Dead reports whether the shot should be removed
func (s *Shot) Dead() bool {
	if s.Exploding {
		return s.timer.Ready
	}
	return s.Y == 0
}

// Draw implements core.Drawable
func (s *Shot) Draw(f *core.Frame) {
	if s.Exploding {
		f[s.X][s.Y] = core.GlyphExplosion
		return
	}
	f[s.X][s.Y] = core.GlyphProjectile
}
