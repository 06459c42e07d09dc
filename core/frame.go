package core

import "github.com/lixenwraith/invaders/constants"

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Glyph is the single character held by a frame cell
type Glyph rune

// Glyph alphabet
const (
	GlyphBlank      Glyph = ' '
	GlyphShip       Glyph = 'A'
	GlyphInvaderA   Glyph = 'x'
	GlyphInvaderB   Glyph = '+'
	GlyphProjectile Glyph = '|'
	GlyphExplosion  Glyph = '*'
)

// IsBlank reports whether g paints nothing; the zero Glyph counts as blank so a
// zero-value Frame reads as empty
func (g Glyph) IsBlank() bool {
	return g == GlyphBlank || g == 0
}

// Rune returns the character to print for g
func (g Glyph) Rune() rune {
	if g == 0 {
		return rune(GlyphBlank)
	}
	return rune(g)
}

// Frame is one renderable snapshot, indexed [x][y] (columns of rows).
// It is a value type: assigning or sending a Frame copies it, so the simulation and
// render goroutines never share cell storage. NewFrame fills it with GlyphBlank; the
// zero value is also usable and renders as blank.
type Frame [constants.Cols][constants.Rows]Glyph

// NewFrame returns an all-blank frame
func NewFrame() Frame {
	var f Frame
	for x := range f {
		for y := range f[x] {
			f[x][y] = GlyphBlank
		}
	}
	return f
}

// Count returns the number of non-blank cells
func (f *Frame) Count() int {
	n := 0
	for x := range f {
		for y := range f[x] {
			if !f[x][y].IsBlank() {
				n++
			}
		}
	}
	return n
}

// Drawable is anything that can paint itself onto a frame.
// Draw must be idempotent: calling it twice in one tick leaves the same frame.
type Drawable interface {
	Draw(f *Frame)
}
