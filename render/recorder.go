package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
)

// Op identifies a sink command
type Op int

const (
	OpBackground Op = iota
	OpForeground
	OpClear
	OpMoveTo
	OpPrint
	OpFlush
)

// Command is one recorded sink call
type Command struct {
	Op    Op
	X, Y  int
	Glyph core.Glyph
	Color tcell.Color
}

// Recorder is a Sink that keeps every command, for tests and headless runs
type Recorder struct {
	Commands []Command
}

// SetBackground records OpBackground
func (r *Recorder) SetBackground(c tcell.Color) {
	r.Commands = append(r.Commands, Command{Op: OpBackground, Color: c})
}

// SetForeground records OpForeground
func (r *Recorder) SetForeground(c tcell.Color) {
	r.Commands = append(r.Commands, Command{Op: OpForeground, Color: c})
}

// Clear records OpClear
func (r *Recorder) Clear() {
	r.Commands = append(r.Commands, Command{Op: OpClear})
}

// MoveTo records OpMoveTo with the target cell
func (r *Recorder) MoveTo(x, y int) {
	r.Commands = append(r.Commands, Command{Op: OpMoveTo, X: x, Y: y})
}

// Print records OpPrint with the glyph
func (r *Recorder) Print(g core.Glyph) {
	r.Commands = append(r.Commands, Command{Op: OpPrint, Glyph: g})
}

// Flush records OpFlush
func (r *Recorder) Flush() {
	r.Commands = append(r.Commands, Command{Op: OpFlush})
}

// Count returns how many commands of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops recorded commands
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
