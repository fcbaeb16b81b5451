// Package tcellstyle converts resolved tcss styles to tcell values.
package tcellstyle

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tcss"
)

// Color converts c to a tcell color. Named and Indexed colors map to
// palette entries and RGB to a true color. None and Inherit map to
// tcell.ColorDefault, the terminal's own color; resolve inheritance with
// tcss.Inherit before converting.
func Color(c tcss.Color) tcell.Color {
	switch c.Kind() {
	case tcss.ColorKindNamed:
		n, _ := c.AsNamed()
		return tcell.PaletteColor(int(n.ANSIIndex()))
	case tcss.ColorKindIndexed:
		i, _ := c.AsIndex()
		return tcell.PaletteColor(int(i))
	case tcss.ColorKindRGB:
		r, g, b, _ := c.AsRGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// WithFont returns base with the modifiers of f turned on.
func WithFont(base tcell.Style, f tcss.FontStyle) tcell.Style {
	if f.Has(tcss.Bold) {
		base = base.Bold(true)
	}
	if f.Has(tcss.Italic) {
		base = base.Italic(true)
	}
	if f.Has(tcss.Underline) {
		base = base.Underline(true)
	}
	if f.Has(tcss.Blink) {
		base = base.Blink(true)
	}
	if f.Has(tcss.Strikethrough) {
		base = base.StrikeThrough(true)
	}
	if f.Has(tcss.Dim) {
		base = base.Dim(true)
	}
	return base
}

// Style converts the text properties of s (color, background, font style)
// to a tcell.Style. Absent properties keep tcell's defaults.
func Style(s tcss.Style) tcell.Style {
	st := tcell.StyleDefault
	if c, ok := s.Color.Get(); ok {
		st = st.Foreground(Color(c))
	}
	if c, ok := s.Background.Get(); ok {
		st = st.Background(Color(c))
	}
	if f, ok := s.FontStyle.Get(); ok {
		st = WithFont(st, f)
	}
	return st
}

// StyleFor degrades the colors of s to what caps can show, then converts it.
func StyleFor(s tcss.Style, caps tcss.Capabilities) tcell.Style {
	return Style(caps.DegradeStyle(s))
}

// BorderStyle returns the style used to draw the border of s: the border
// color override when declared, otherwise the text color, on the
// element's background. Font modifiers are not applied to borders.
func BorderStyle(s tcss.Style) tcell.Style {
	st := tcell.StyleDefault
	if c, ok := s.Background.Get(); ok {
		st = st.Background(Color(c))
	}
	fg := s.Color
	if b, ok := s.Border.Get(); ok {
		fg = b.Color.Or(fg)
	}
	if c, ok := fg.Get(); ok {
		st = st.Foreground(Color(c))
	}
	return st
}
