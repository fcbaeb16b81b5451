// Package lipglossstyle converts resolved tcss styles to lipgloss styles.
//
// lipgloss renders strings rather than laying out a tree, so only the
// properties with a direct lipgloss counterpart carry over: colors, font
// modifiers, borders, text alignment, and sizes or spacing declared in
// cells. Percent, fill and auto sizes are left to lipgloss's own sizing.
package lipglossstyle

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/tcss"
)

// dashedBorder has no lipgloss preset.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// Color converts c to a lipgloss color. Named and Indexed colors become
// ANSI index strings, RGB a hex string. None and Inherit become
// lipgloss.NoColor, which leaves the terminal default in place.
func Color(c tcss.Color) lipgloss.TerminalColor {
	switch c.Kind() {
	case tcss.ColorKindNamed:
		n, _ := c.AsNamed()
		return lipgloss.Color(strconv.Itoa(int(n.ANSIIndex())))
	case tcss.ColorKindIndexed:
		i, _ := c.AsIndex()
		return lipgloss.Color(strconv.Itoa(int(i)))
	case tcss.ColorKindRGB:
		return lipgloss.Color(c.String())
	default:
		return lipgloss.NoColor{}
	}
}

// Border returns the lipgloss border drawn for style, and false for
// BorderNone.
func Border(style tcss.BorderStyle) (lipgloss.Border, bool) {
	switch style {
	case tcss.BorderSolid:
		return lipgloss.NormalBorder(), true
	case tcss.BorderRounded:
		return lipgloss.RoundedBorder(), true
	case tcss.BorderDouble:
		return lipgloss.DoubleBorder(), true
	case tcss.BorderThick:
		return lipgloss.ThickBorder(), true
	case tcss.BorderDashed:
		return dashedBorder, true
	}
	return lipgloss.Border{}, false
}

// Position converts a text alignment to a lipgloss horizontal position.
func Position(a tcss.TextAlign) lipgloss.Position {
	switch a {
	case tcss.TextAlignCenter:
		return lipgloss.Center
	case tcss.TextAlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Style converts s to a lipgloss.Style. Absent properties are not set.
func Style(s tcss.Style) lipgloss.Style {
	return Apply(lipgloss.NewStyle(), s)
}

// StyleFor degrades the colors of s to what caps can show, then converts it.
func StyleFor(s tcss.Style, caps tcss.Capabilities) lipgloss.Style {
	return Style(caps.DegradeStyle(s))
}

// Apply sets the declared properties of s on base and returns the result.
func Apply(base lipgloss.Style, s tcss.Style) lipgloss.Style {
	st := base

	if c, ok := s.Color.Get(); ok {
		st = st.Foreground(Color(c))
	}
	if c, ok := s.Background.Get(); ok {
		st = st.Background(Color(c))
	}
	if f, ok := s.FontStyle.Get(); ok {
		st = st.
			Bold(f.Has(tcss.Bold)).
			Italic(f.Has(tcss.Italic)).
			Underline(f.Has(tcss.Underline)).
			Blink(f.Has(tcss.Blink)).
			Strikethrough(f.Has(tcss.Strikethrough)).
			Faint(f.Has(tcss.Dim))
	}
	if b, ok := s.Border.Get(); ok {
		if border, drawn := Border(b.Style); drawn {
			st = st.Border(border)
			if c, ok := b.Color.Get(); ok {
				st = st.BorderForeground(Color(c))
			}
		} else {
			st = st.UnsetBorderStyle().BorderTop(false).BorderRight(false).BorderBottom(false).BorderLeft(false)
		}
	}
	if a, ok := s.TextAlign.Get(); ok {
		st = st.AlignHorizontal(Position(a))
	}

	if n, ok := cells(s.Width); ok {
		st = st.Width(n)
	}
	if n, ok := cells(s.Height); ok {
		st = st.Height(n)
	}
	if n, ok := cells(s.MaxWidth); ok {
		st = st.MaxWidth(n)
	}
	if n, ok := cells(s.MaxHeight); ok {
		st = st.MaxHeight(n)
	}

	if e, ok := s.Padding.Get(); ok {
		st = padding(st, e)
	}
	if e, ok := s.Margin.Get(); ok {
		st = margin(st, e)
	}
	return st
}

// cells returns a declared, non-negative cell count.
func cells(o tcss.Option[tcss.Unit]) (int, bool) {
	u, ok := o.Get()
	if !ok {
		return 0, false
	}
	return side(u)
}

func side(u tcss.Unit) (int, bool) {
	n, ok := u.AsCells()
	if !ok || n < 0 {
		return 0, false
	}
	return int(n), true
}

// padding sets each padding side declared in cells.
func padding(st lipgloss.Style, e tcss.Edges[tcss.Unit]) lipgloss.Style {
	if n, ok := side(e.Top); ok {
		st = st.PaddingTop(n)
	}
	if n, ok := side(e.Right); ok {
		st = st.PaddingRight(n)
	}
	if n, ok := side(e.Bottom); ok {
		st = st.PaddingBottom(n)
	}
	if n, ok := side(e.Left); ok {
		st = st.PaddingLeft(n)
	}
	return st
}

// margin sets each margin side declared in cells.
func margin(st lipgloss.Style, e tcss.Edges[tcss.Unit]) lipgloss.Style {
	if n, ok := side(e.Top); ok {
		st = st.MarginTop(n)
	}
	if n, ok := side(e.Right); ok {
		st = st.MarginRight(n)
	}
	if n, ok := side(e.Bottom); ok {
		st = st.MarginBottom(n)
	}
	if n, ok := side(e.Left); ok {
		st = st.MarginLeft(n)
	}
	return st
}
