// Package border declares box borders: a line style plus an optional color.
package border

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grindlemire/tcss/internal/color"
	"github.com/grindlemire/tcss/internal/option"
)

// ErrInvalidBorder is returned by Parse for an unrecognized border declaration.
var ErrInvalidBorder = errors.New("invalid border")

// BorderStyle represents different styles of box borders.
type BorderStyle uint8

const (
	// None draws no border. It is the zero value.
	None BorderStyle = iota
	// Solid uses single-line box-drawing characters (─, │, ┌, etc.)
	Solid
	// Rounded uses single lines with rounded corners (╭, ╮, ╰, ╯)
	Rounded
	// Double uses double-line box-drawing characters (═, ║, ╔, etc.)
	Double
	// Thick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	Thick
	// Dashed uses dashed edges with single-line corners (╌, ╎, ┌, etc.)
	Dashed
)

var styleNames = [...]string{"none", "solid", "rounded", "double", "thick", "dashed"}

func (b BorderStyle) String() string {
	if int(b) < len(styleNames) {
		return styleNames[b]
	}
	return fmt.Sprintf("BorderStyle(%d)", uint8(b))
}

// ParseStyle parses a border style keyword. "single" is accepted for solid
// and "heavy" for thick.
func ParseStyle(s string) (BorderStyle, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "single":
		return Solid, nil
	case "heavy":
		return Thick, nil
	}
	for i, name := range styleNames {
		if name == t {
			return BorderStyle(i), nil
		}
	}
	return None, fmt.Errorf("%w: unknown style %q", ErrInvalidBorder, s)
}

// Glyphs holds the characters used to draw a box border.
// The zero value (all runes 0) means nothing is drawn.
type Glyphs struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// IsZero returns true for the empty glyph set of None.
func (g Glyphs) IsZero() bool {
	return g == Glyphs{}
}

// String returns the glyphs in table order: horizontal, vertical, then the
// corners clockwise from top-left, with bottom-left before bottom-right.
func (g Glyphs) String() string {
	if g.IsZero() {
		return ""
	}
	return string([]rune{g.Horizontal, g.Vertical, g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight})
}

// Glyphs returns the box-drawing characters for this border style.
func (b BorderStyle) Glyphs() Glyphs {
	switch b {
	case Solid:
		return Glyphs{Horizontal: '─', Vertical: '│', TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘'}
	case Rounded:
		return Glyphs{Horizontal: '─', Vertical: '│', TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯'}
	case Double:
		return Glyphs{Horizontal: '═', Vertical: '║', TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝'}
	case Thick:
		return Glyphs{Horizontal: '━', Vertical: '┃', TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛'}
	case Dashed:
		return Glyphs{Horizontal: '╌', Vertical: '╎', TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘'}
	default:
		return Glyphs{}
	}
}

// Border is a line style plus an optional color override. Without a color
// the border is drawn in the element's foreground color.
type Border struct {
	Style BorderStyle
	Color option.Option[color.Color]
}

// Common borders with no color override.
var (
	NoBorder      = Border{Style: None}
	SolidBorder   = Border{Style: Solid}
	RoundedBorder = Border{Style: Rounded}
	DoubleBorder  = Border{Style: Double}
	ThickBorder   = Border{Style: Thick}
	DashedBorder  = Border{Style: Dashed}
)

// WithColor returns b with its color override set to c.
func (b Border) WithColor(c color.Color) Border {
	b.Color = option.Some(c)
	return b
}

// IsNone returns true if the border is not drawn. Only the style is checked.
func (b Border) IsNone() bool {
	return b.Style == None
}

// String renders the border in the syntax accepted by Parse.
func (b Border) String() string {
	if c, ok := b.Color.Get(); ok {
		return b.Style.String() + " " + c.String()
	}
	return b.Style.String()
}

// Parse reads "<style>" or "<style> <color>", e.g. "rounded #ff00ff".
func Parse(s string) (Border, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1, 2:
	default:
		return Border{}, fmt.Errorf("%w %q: want \"<style> [color]\"", ErrInvalidBorder, s)
	}

	style, err := ParseStyle(fields[0])
	if err != nil {
		return Border{}, err
	}
	b := Border{Style: style}
	if len(fields) == 2 {
		c, err := color.ParseColor(fields[1])
		if err != nil {
			return Border{}, fmt.Errorf("%w %q: %w", ErrInvalidBorder, s, err)
		}
		b = b.WithColor(c)
	}
	return b, nil
}
