package render

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// Render emits the cells of curr that differ from prev, or every cell when force is set.
// A forced render first clears the screen to a known background. The sink is flushed
// exactly once. Returns the number of cells written.
func Render(sink Sink, prev, curr *core.Frame, force bool) int {
	// Forced: clear everything, then switch to the grid palette for the cell pass
	if force {
		sink.SetBackground(constants.ClearBackground)
		sink.Clear()
		sink.SetBackground(constants.GridBackground)
		sink.SetForeground(constants.GridForeground)
	}

	// Cell pass; MoveTo before every write since changed cells are rarely adjacent
	written := 0
	for x := range curr {
		for y, g := range curr[x] {
			if force || g != prev[x][y] {
				sink.MoveTo(x, y)
				sink.Print(g)
				written++
			}
		}
	}

	// Single flush per frame, even when nothing changed
	sink.Flush()
	return written
}

// Renderer keeps the last rendered frame as the baseline for the next diff
type Renderer struct {
	sink Sink
	last core.Frame

	frames int
	cells  int
}

// NewRenderer starts from an all-blank baseline
func NewRenderer(sink Sink) *Renderer {
	return &Renderer{
		sink: sink,
		last: core.NewFrame(),
	}
}

// Draw renders curr against the previous frame and adopts it as the new baseline
func (r *Renderer) Draw(curr core.Frame, force bool) {
	r.cells += Render(r.sink, &r.last, &curr, force)
	r.frames++
	r.last = curr
}

// Stats returns frames rendered and cells written so far
func (r *Renderer) Stats() (frames, cells int) {
	return r.frames, r.cells
}
