package constants

import "time"

// Swarm Movement & Escalation
const (
	// SwarmInitialInterval is the movement timer duration at game start
	SwarmInitialInterval = 2000 * time.Millisecond

	// SwarmIntervalDecrement is subtracted from the movement timer on every bounce
	SwarmIntervalDecrement = 250 * time.Millisecond

	// SwarmIntervalFloor is the fastest the swarm can move
	SwarmIntervalFloor = 250 * time.Millisecond
)

// Swarm Formation
const (
	// FormationMarginX keeps invaders off the left and right edges (x > 1, x < Cols-2)
	FormationMarginX = 2

	// FormationDepth is the exclusive row bound of the initial formation
	FormationDepth = 9

	// FormationSpacing is the stride between invaders on both axes
	FormationSpacing = 2
)

// Shots
const (
	// ShotInterval is how long a flying shot waits before climbing one row
	ShotInterval = 50 * time.Millisecond

	// ExplosionDuration is how long an exploding shot stays on screen
	ExplosionDuration = 250 * time.Millisecond

	// MaxShots is the number of concurrent shots a player may own
	MaxShots = 2
)
