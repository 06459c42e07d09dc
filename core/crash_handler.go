package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	resetMu   sync.Mutex
	resetHook func()

	// exit is swapped in tests
	exit = os.Exit
)

// SetResetHook registers the terminal restore function run before a crash report
func SetResetHook(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	hook := resetHook
	resetMu.Unlock()
	if hook != nil {
		hook()
	}

	// \r\n survives a terminal still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Recover must be deferred directly: defer core.Recover()
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}

// GoErr is Go for an errgroup member; fn's error is reported through g.Wait
func GoErr(g *errgroup.Group, fn func() error) {
	g.Go(func() error {
		defer Recover()
		return fn()
	})
}
