package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// ErrNotTerminal is returned when stdout is not attached to a terminal
var ErrNotTerminal = errors.New("stdout is not a terminal")

const inputBuffer = 64

var (
	configFlag = flag.String("config", "", "Path to a YAML tuning file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/invaders.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	assetsFlag = flag.String("assets", "", "Directory with <cue>.wav overrides")
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before os.Exit
func realMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer core.Recover()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	outcome, err := run()
	if err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		return 1
	}
	fmt.Printf("Game over: %v\n", outcome)
	return 0
}

// signalContext is cancelled on the signals that would otherwise kill the process
// with the terminal still in raw mode
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

func run() (engine.Outcome, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return engine.OutcomeNone, err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return engine.OutcomeNone, ErrNotTerminal
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	if *assetsFlag != "" {
		cfg.Audio.Assets = *assetsFlag
	}
	log.Printf("config: tick %v, swarm %v (-%v, floor %v), max shots %d, muted %v",
		cfg.TickInterval, cfg.Swarm.InitialInterval, cfg.Swarm.Decrement, cfg.Swarm.Floor,
		cfg.Player.MaxShots, cfg.Audio.Muted)

	sounds, closeAudio := audio.Open(cfg.AudioConfig())
	defer closeAudio()
	sounds.Play(core.CueStartup)

	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.OutcomeNone, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return engine.OutcomeNone, fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signalContext(context.Background())
	defer stop()

	result, err := play(ctx, screen, &cfg, sounds)
	return result.Outcome, err
}

// play runs one game on an initialized screen and finalizes the screen before returning.
// Cancelling ctx ends the game as a quit.
func play(ctx context.Context, screen tcell.Screen, cfg *config.Config, sounds audio.Player) (engine.Result, error) {
	closeScreen := sync.OnceFunc(screen.Fini)
	defer closeScreen()
	core.SetResetHook(closeScreen)
	defer core.SetResetHook(nil)

	screen.HideCursor()

	poller := input.NewPoller(screen, nil, inputBuffer)
	game := engine.NewGame(cfg, sounds)

	var result engine.Result
	g, gctx := errgroup.WithContext(ctx)

	// PollEvent only returns on an event or Fini; wake it so the poller sees the cancel
	core.Go(func() {
		<-gctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	core.GoErr(g, func() error {
		return poller.Run(gctx)
	})
	core.GoErr(g, func() error {
		result = engine.Run(gctx, game, render.NewScreenSink(screen), engine.Options{
			TickInterval: cfg.TickInterval,
			QueueSize:    cfg.Render.QueueSize,
			Input:        poller,
		})
		// Let the final cue finish before the terminal is torn down
		sounds.Wait()
		// Fini unblocks PollEvent, which stops the poller
		closeScreen()
		return nil
	})

	err := g.Wait()
	if ctx.Err() != nil {
		log.Printf("run interrupted: %v", context.Cause(ctx))
	}
	log.Printf("run finished: %v, %d intents dropped", result.Outcome, poller.Dropped())
	return result, err
}
