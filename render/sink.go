package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/core"
)

// Sink is an append-then-flush terminal command queue.
// Commands are buffered by the implementation and made visible only on Flush.
type Sink interface {
	SetBackground(c tcell.Color)
	SetForeground(c tcell.Color)
	Clear()
	MoveTo(x, y int)
	Print(g core.Glyph)
	Flush()
}

// ScreenSink queues commands onto a tcell screen; Show is the flush
type ScreenSink struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewScreenSink wraps an initialized screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// SetBackground sets the background for subsequent clears and writes
func (s *ScreenSink) SetBackground(c tcell.Color) {
	s.style = s.style.Background(c)
}

// SetForeground sets the glyph color for subsequent writes
func (s *ScreenSink) SetForeground(c tcell.Color) {
	s.style = s.style.Foreground(c)
}

// Clear fills the whole screen with blanks in the current style
func (s *ScreenSink) Clear() {
	s.screen.Fill(' ', s.style)
}

// MoveTo repositions the write cursor
func (s *ScreenSink) MoveTo(x, y int) {
	s.x, s.y = x, y
}

// Print writes one glyph at the cursor and advances it
func (s *ScreenSink) Print(g core.Glyph) {
	s.screen.SetContent(s.x, s.y, g.Rune(), nil, s.style)
	s.x++
}

// Flush pushes queued content to the terminal
func (s *ScreenSink) Flush() {
	s.screen.Show()
}
