package core

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// stubExit replaces the process exit for the duration of a test
func stubExit(t *testing.T) *atomic.Int32 {
	t.Helper()
	var code atomic.Int32
	code.Store(-1)
	saved := exit
	exit = func(c int) { code.Store(int32(c)) }
	t.Cleanup(func() {
		exit = saved
		SetResetHook(nil)
	})
	return &code
}

func TestGoErrReturnsError(t *testing.T) {
	want := errors.New("render failed")

	var g errgroup.Group
	GoErr(&g, func() error { return want })
	GoErr(&g, func() error { return nil })

	if err := g.Wait(); !errors.Is(err, want) {
		t.Errorf("Expected %v from Wait, got %v", want, err)
	}
}

func TestGoErrPanicResetsTerminal(t *testing.T) {
	code := stubExit(t)
	var reset atomic.Bool
	SetResetHook(func() { reset.Store(true) })

	var g errgroup.Group
	GoErr(&g, func() error { panic("boom") })
	g.Wait()

	if !reset.Load() {
		t.Error("Expected reset hook to run before the crash report")
	}
	if c := code.Load(); c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
}

func TestGoPanicResetsTerminal(t *testing.T) {
	code := stubExit(t)
	done := make(chan struct{})
	SetResetHook(func() { close(done) })

	Go(func() { panic("boom") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Reset hook did not run after a goroutine panic")
	}
	// exit runs right after the report; give it a moment
	deadline := time.Now().Add(time.Second)
	for code.Load() != 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if c := code.Load(); c != 1 {
		t.Errorf("Expected exit code 1, got %d", c)
	}
}

func TestHandleCrashNil(t *testing.T) {
	code := stubExit(t)
	SetResetHook(func() { t.Error("Reset hook ran without a panic") })

	HandleCrash(nil)

	if c := code.Load(); c != -1 {
		t.Errorf("Expected no exit, got code %d", c)
	}
}
