package input

import (
	"context"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// EventSource is the blocking half of a tcell screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller decodes terminal events on its own goroutine and exposes them
// through a non-blocking Poll
type Poller struct {
	src     EventSource
	table   *KeyTable
	intents chan IntentType
	dropped atomic.Uint64
}

// NewPoller creates a poller buffering up to size undelivered intents
func NewPoller(src EventSource, table *KeyTable, size int) *Poller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Poller{
		src:     src,
		table:   table,
		intents: make(chan IntentType, size),
	}
}

// Run pumps events until the source is finalized (PollEvent returns nil) or ctx ends.
// A cancelled ctx is only observed between events.
func (p *Poller) Run(ctx context.Context) error {
	for {
		ev := p.src.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		intent := p.table.Decode(ev)
		if intent == IntentNone {
			continue
		}

		select {
		case p.intents <- intent:
		default:
			// Simulation stalled; stale key presses are worthless
			p.dropped.Add(1)
		}
	}
}

// Poll drains every intent decoded since the last call without blocking
func (p *Poller) Poll() []IntentType {
	var out []IntentType
	for {
		select {
		case it := <-p.intents:
			out = append(out, it)
		default:
			return out
		}
	}
}

// Dropped returns how many intents were discarded on a full buffer
func (p *Poller) Dropped() uint64 {
	return p.dropped.Load()
}
