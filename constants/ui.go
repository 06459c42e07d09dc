package constants

import "github.com/gdamore/tcell/v2"

// Screen colors used by the force-redraw sequence
var (
	// ClearBackground is the color the whole screen is cleared to
	ClearBackground = tcell.ColorBlue

	// GridBackground is the background of every glyph written inside the grid
	GridBackground = tcell.ColorBlack

	// GridForeground is the glyph color
	GridForeground = tcell.ColorWhite
)
