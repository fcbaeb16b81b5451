// Package font provides the text modifier bit set (bold, italic, underline...).
package font

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFontStyle is returned by ParseFontStyle for an unrecognized modifier name.
var ErrUnknownFontStyle = errors.New("unknown font style")

// FontStyle is a set of text modifiers packed into one byte.
// Six bits are used; the top two are reserved and always zero.
// The zero value is Normal (plain text).
type FontStyle uint8

const (
	// Normal is plain, unmodified text.
	Normal FontStyle = 0
	// Bold increases weight (SGR 1). Some terminals also brighten the foreground.
	Bold FontStyle = 1 << 0
	// Italic slants text (SGR 3). Fonts without italics may substitute a color.
	Italic FontStyle = 1 << 1
	// Underline underlines text (SGR 4).
	Underline FontStyle = 1 << 2
	// Blink makes text blink (SGR 5). Often disabled by terminals.
	Blink FontStyle = 1 << 3
	// Strikethrough draws a line through text (SGR 9).
	Strikethrough FontStyle = 1 << 4
	// Dim reduces intensity (SGR 2).
	Dim FontStyle = 1 << 5

	validMask FontStyle = 0x3f
)

// flagNames lists the modifiers in bit order.
var flagNames = [...]struct {
	flag FontStyle
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
	{Blink, "blink"},
	{Strikethrough, "strikethrough"},
	{Dim, "dim"},
}

// FromBits builds a FontStyle from a raw byte, clearing the reserved bits.
func FromBits(b uint8) FontStyle {
	return FontStyle(b) & validMask
}

// Bits returns the raw byte.
func (f FontStyle) Bits() uint8 {
	return uint8(f)
}

// With returns f with the flags of other added.
func (f FontStyle) With(other FontStyle) FontStyle {
	return f | other
}

// Without returns f with the flags of other removed.
func (f FontStyle) Without(other FontStyle) FontStyle {
	return f &^ other
}

// Intersect returns the flags set in both f and other.
func (f FontStyle) Intersect(other FontStyle) FontStyle {
	return f & other
}

// Has returns true if all flags in other are set in f.
func (f FontStyle) Has(other FontStyle) bool {
	return f&other == other
}

// HasAny returns true if any flag in other is set in f.
func (f FontStyle) HasAny(other FontStyle) bool {
	return f&other != 0
}

// IsNormal returns true if no flags are set.
func (f FontStyle) IsNormal() bool {
	return f == Normal
}

// String joins the set modifier names with "|", e.g. "bold|italic".
// The empty set renders as "normal".
func (f FontStyle) String() string {
	if f.IsNormal() {
		return "normal"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ validMask; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Parse reads modifier names separated by spaces, commas or "|".
// "normal" and the empty string yield Normal. "strike" and "faint" are
// accepted as aliases for strikethrough and dim.
func Parse(s string) (FontStyle, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t'
	})

	var f FontStyle
	for _, field := range fields {
		flag, ok := lookup(field)
		if !ok {
			return Normal, fmt.Errorf("%w %q", ErrUnknownFontStyle, field)
		}
		f |= flag
	}
	return f, nil
}

func lookup(name string) (FontStyle, bool) {
	switch name {
	case "normal", "none":
		return Normal, true
	case "strike", "line-through":
		return Strikethrough, true
	case "faint":
		return Dim, true
	}
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return Normal, false
}
