package tcellstyle

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tcss"
)

// ContentSetter is the part of tcell.Screen that DrawBox needs.
type ContentSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// DrawBox draws the outline of a w x h box with its top-left corner at
// (x, y) using the given glyphs. Boxes smaller than 2x2 and the empty
// glyph set draw nothing.
func DrawBox(dst ContentSetter, x, y, w, h int, glyphs tcss.BorderGlyphs, style tcell.Style) {
	if w < 2 || h < 2 || glyphs.IsZero() {
		return
	}

	right := x + w - 1
	bottom := y + h - 1

	// Corners
	dst.SetContent(x, y, glyphs.TopLeft, nil, style)
	dst.SetContent(right, y, glyphs.TopRight, nil, style)
	dst.SetContent(x, bottom, glyphs.BottomLeft, nil, style)
	dst.SetContent(right, bottom, glyphs.BottomRight, nil, style)

	// Horizontal edges
	for cx := x + 1; cx < right; cx++ {
		dst.SetContent(cx, y, glyphs.Horizontal, nil, style)
		dst.SetContent(cx, bottom, glyphs.Horizontal, nil, style)
	}

	// Vertical edges
	for cy := y + 1; cy < bottom; cy++ {
		dst.SetContent(x, cy, glyphs.Vertical, nil, style)
		dst.SetContent(right, cy, glyphs.Vertical, nil, style)
	}
}

// DrawBorder draws the border declared by s around the w x h box at
// (x, y). Nothing is drawn when s declares no border or a none border.
func DrawBorder(dst ContentSetter, x, y, w, h int, s tcss.Style, caps tcss.Capabilities) {
	b, ok := s.Border.Get()
	if !ok || b.IsNone() {
		return
	}
	DrawBox(dst, x, y, w, h, caps.BorderGlyphs(b.Style), BorderStyle(caps.DegradeStyle(s)))
}
