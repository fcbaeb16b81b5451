// Package color models terminal colors in three palette tiers (16 named
// ANSI colors, the xterm 256-color index, 24-bit RGB) plus the abstract
// values inherit and none.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes between color representations.
type Kind uint8

const (
	// KindNone is no color: the terminal default shows through. It is the zero value.
	KindNone Kind = iota
	// KindInherit adopts the nearest ancestor's resolved color.
	KindInherit
	// KindNamed is one of the 16 standard ANSI colors.
	KindNamed
	// KindIndexed is an entry of the xterm 256-color palette.
	KindIndexed
	// KindRGB is a 24-bit true color.
	KindRGB
)

// ErrInvalidColor is returned by ParseColor for text that names no color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a terminal color value. The zero value is None.
type Color struct {
	kind Kind
	// For Named and Indexed: r holds the palette index.
	// For RGB: r, g, b hold the channels.
	r, g, b uint8
}

// None returns the color that leaves the terminal default in place.
func None() Color {
	return Color{}
}

// Inherit returns the color that adopts the nearest ancestor's resolved value.
func Inherit() Color {
	return Color{kind: KindInherit}
}

// Named returns one of the 16 ANSI colors. Values of 16 and above are
// outside the named range and yield Indexed(n) instead.
func Named(n NamedColor) Color {
	if n > BrightWhite {
		return Indexed(uint8(n))
	}
	return Color{kind: KindNamed, r: uint8(n)}
}

// Indexed returns an xterm 256-palette color. 0-15 mirror the named
// colors, 16-231 are a 6x6x6 cube and 232-255 a greyscale ramp.
func Indexed(i uint8) Color {
	return Color{kind: KindIndexed, r: i}
}

// RGB returns a true color (24-bit RGB) Color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind returns the representation of this color.
func (c Color) Kind() Kind {
	return c.kind
}

// IsAbstract returns true for Inherit and None, which carry no concrete color.
func (c Color) IsAbstract() bool {
	return c.kind == KindNone || c.kind == KindInherit
}

// IsNone returns true for the None color.
func (c Color) IsNone() bool {
	return c.kind == KindNone
}

// IsInherit returns true for the Inherit color.
func (c Color) IsInherit() bool {
	return c.kind == KindInherit
}

// AsNamed returns the ANSI color of a Named color.
func (c Color) AsNamed() (NamedColor, bool) {
	if c.kind != KindNamed {
		return 0, false
	}
	return NamedColor(c.r), true
}

// AsIndex returns the palette index of an Indexed color.
func (c Color) AsIndex() (uint8, bool) {
	if c.kind != KindIndexed {
		return 0, false
	}
	return c.r, true
}

// AsRGB returns the channels of an RGB color.
func (c Color) AsRGB() (r, g, b uint8, ok bool) {
	if c.kind != KindRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

// String renders the color in the syntax accepted by ParseColor.
func (c Color) String() string {
	switch c.kind {
	case KindInherit:
		return "inherit"
	case KindNamed:
		return NamedColor(c.r).String()
	case KindIndexed:
		return strconv.Itoa(int(c.r))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "none"
	}
}

// FromHexBytes decodes exactly "#RRGGBB" (7 ASCII bytes, hex digits in
// either case). Any other input yields false. It never panics and never
// allocates, so it is safe for package-level initializers.
func FromHexBytes(b []byte) (Color, bool) {
	return decodeHex(b)
}

// Hex is FromHexBytes for a string.
func Hex(s string) (Color, bool) {
	return decodeHex(s)
}

func decodeHex[S ~string | ~[]byte](s S) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	r, ok1 := hexByte(s[1], s[2])
	g, ok2 := hexByte(s[3], s[4])
	b, ok3 := hexByte(s[5], s[6])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	return RGB(r, g, b), true
}

// hexByte combines two hex characters into a byte.
func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}

// hexNibble parses a single hex character into a nibble (0-15).
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ParseColor parses "#rrggbb", a named color ("red", "bright-blue"),
// "inherit", "none" (or its aliases "default" and "transparent"), or a
// palette index 0-255.
func ParseColor(s string) (Color, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(t, "#") {
		if c, ok := Hex(t); ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("%w %q: expected #rrggbb", ErrInvalidColor, s)
	}
	switch t {
	case "inherit":
		return Inherit(), nil
	case "none", "default", "transparent":
		return None(), nil
	}
	if n, ok := LookupNamed(t); ok {
		return Named(n), nil
	}
	if i, err := strconv.ParseUint(t, 10, 8); err == nil {
		return Indexed(uint8(i)), nil
	}
	return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
}
