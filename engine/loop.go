package engine

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// IntentSource yields the intents decoded since the last call without blocking
type IntentSource interface {
	Poll() []input.IntentType
}

// Options configures the simulation/render pipeline
type Options struct {
	TickInterval time.Duration // Sleep between ticks
	QueueSize    int           // Frame hand-off buffer
	Input        IntentSource  // Nil means no input
}

// Result summarizes a finished run
type Result struct {
	Outcome Outcome
	Ticks   int
	Frames  int // Frames rendered
	Cells   int // Cells written across all frames
	Dropped int // Frames produced after the renderer exited
}

// Run drives game on the calling goroutine and renders on a second one.
// Each tick's frame is handed off through an ordered buffer; the renderer diffs it against
// the frame it drew last. Run returns once the game ends or ctx is cancelled, after the
// renderer has drained every queued frame.
func Run(ctx context.Context, game *Game, sink render.Sink, opts Options) Result {
	if opts.QueueSize < 1 {
		opts.QueueSize = constants.FrameQueueSize
	}

	frames := make(chan core.Frame, opts.QueueSize)
	renderDone := make(chan struct{})
	renderer := render.NewRenderer(sink)

	var g errgroup.Group
	core.GoErr(&g, func() error {
		defer close(renderDone)

		// First frame repaints the whole screen, the rest are diffs
		force := true
		for f := range frames {
			renderer.Draw(f, force)
			force = false
		}
		return nil
	})

	outcome, dropped := simulate(ctx, game, opts, frames, renderDone)

	// Renderer drains what is queued, then exits on the closed channel
	close(frames)
	if err := g.Wait(); err != nil {
		log.Printf("renderer stopped: %v", err)
	}

	res := Result{Outcome: outcome, Ticks: game.Ticks(), Dropped: dropped}
	res.Frames, res.Cells = renderer.Stats()
	log.Printf("pipeline stopped: %d ticks, %d frames, %d cells written, %d frames dropped",
		res.Ticks, res.Frames, res.Cells, res.Dropped)
	return res
}

// simulate ticks the game until it ends, handing every frame to the renderer.
// It returns the outcome and the number of frames the renderer was gone for.
func simulate(ctx context.Context, game *Game, opts Options, frames chan<- core.Frame, renderDone <-chan struct{}) (Outcome, int) {
	dropped := 0
	last := time.Now()
	for {
		if ctx.Err() != nil {
			return game.Quit(), dropped
		}

		var intents []input.IntentType
		if opts.Input != nil {
			intents = opts.Input.Poll()
		}

		now := time.Now()
		frame, outcome := game.Tick(now.Sub(last), intents)
		last = now

		if !handoff(frames, renderDone, frame) {
			dropped++
		}
		if outcome != OutcomeNone {
			return outcome, dropped
		}

		if opts.TickInterval > 0 {
			time.Sleep(opts.TickInterval)
		}
	}
}

// handoff queues a frame, blocking only while the renderer is alive and behind.
// A renderer that already exited is not an error; the frame is dropped.
func handoff(frames chan<- core.Frame, renderDone <-chan struct{}, f core.Frame) bool {
	select {
	case frames <- f:
		return true
	case <-renderDone:
		return false
	}
}
