package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/entity"
	"github.com/lixenwraith/invaders/input"
)

// Outcome is the terminal state of a game
type Outcome int

const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWon                 // Swarm destroyed
	OutcomeLost                // Swarm reached the bottom row
	OutcomeQuit                // Player quit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "playing"
	}
}

// Game exclusively owns the swarm and the player for the simulation's lifetime.
// It is driven from a single goroutine.
type Game struct {
	swarm  *entity.Swarm
	player *entity.Player
	sounds audio.Player

	outcome Outcome
	ticks   int
	hits    int
	bounces int
}

// NewGame builds the starting formation and ship from cfg
func NewGame(cfg *config.Config, sounds audio.Player) *Game {
	return NewGameWith(
		entity.NewSwarm(cfg.SwarmConfig()),
		entity.NewPlayer(cfg.PlayerConfig()),
		sounds,
	)
}

// NewGameWith wraps existing entities
func NewGameWith(swarm *entity.Swarm, player *entity.Player, sounds audio.Player) *Game {
	if sounds == nil {
		sounds = audio.Nop{}
	}
	return &Game{
		swarm:  swarm,
		player: player,
		sounds: sounds,
	}
}

// Tick advances the simulation by delta after applying this tick's intents, and returns
// the composed frame along with the outcome (OutcomeNone while playing)
func (g *Game) Tick(delta time.Duration, intents []input.IntentType) (core.Frame, Outcome) {
	if g.outcome != OutcomeNone {
		return g.compose(), g.outcome
	}
	g.ticks++

	// 1. Apply player intents in arrival order
	for _, intent := range intents {
		switch intent {
		case input.IntentMoveLeft:
			g.player.MoveLeft()
		case input.IntentMoveRight:
			g.player.MoveRight()
		case input.IntentFire:
			if g.player.Shoot() {
				g.sounds.Play(core.CuePew)
			}
		case input.IntentQuit:
			// Quit skips the rest of the tick
			return g.compose(), g.Quit()
		}
	}

	// 2. Advance shots, then the swarm
	g.player.Update(delta)
	if g.swarm.Update(delta) == entity.StepDescend {
		g.bounces++
		g.sounds.Play(core.CueMove)
		log.Printf("swarm bounce %d: heading %v, interval %v", g.bounces, g.swarm.Direction(), g.swarm.Interval())
	}
	// 3. Collisions use post-move positions of both
	if g.player.DetectHits(g.swarm) {
		g.hits++
		g.sounds.Play(core.CueExplode)
	}

	// 4. Compose before win/lose so the final frame shows the last hit
	frame := g.compose()

	// 5. End conditions
	switch {
	case g.swarm.AllKilled():
		g.finish(OutcomeWon, core.CueWin)
	case g.swarm.ReachedBottom():
		g.finish(OutcomeLost, core.CueLose)
	}
	return frame, g.outcome
}

// Quit ends the game as a loss by the player's choice
func (g *Game) Quit() Outcome {
	if g.outcome == OutcomeNone {
		g.finish(OutcomeQuit, core.CueLose)
	}
	return g.outcome
}

func (g *Game) finish(o Outcome, cue core.Cue) {
	g.outcome = o
	g.sounds.Play(cue)
	log.Printf("game %v after %d ticks: %d hits, %d bounces, %d invaders left",
		o, g.ticks, g.hits, g.bounces, g.swarm.Len())
}

// compose paints a fresh frame: player (with its shots) then swarm
func (g *Game) compose() core.Frame {
	f := core.NewFrame()
	g.player.Draw(&f)
	g.swarm.Draw(&f)
	return f
}

// Outcome returns the current game state
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Ticks returns how many simulation ticks ran
func (g *Game) Ticks() int {
	return g.ticks
}
