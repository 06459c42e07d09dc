//go:build unix

package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/lixenwraith/invaders/engine"
)

func TestSignalContextCancelsOnSignal(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGHUP, syscall.SIGTERM} {
		ctx, stop := signalContext(context.Background())

		if err := syscall.Kill(os.Getpid(), sig); err != nil {
			stop()
			t.Fatalf("Failed to send %v: %v", sig, err)
		}

		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
			t.Errorf("Context not cancelled by %v", sig)
		}
		stop()
	}
}

func TestSignalEndsPlayAsQuit(t *testing.T) {
	screen := newTestScreen(t)

	ctx, stop := signalContext(context.Background())
	defer stop()

	go func() {
		time.Sleep(30 * time.Millisecond)
		syscall.Kill(os.Getpid(), syscall.SIGTERM)
	}()

	res := playAsync(t, ctx, screen)
	if res.Outcome != engine.OutcomeQuit {
		t.Errorf("Expected OutcomeQuit, got %v", res.Outcome)
	}
}
