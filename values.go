// values.go re-exports the value types from internal packages.
// Any changes to those types must be mirrored here.
package tcss

import (
	"github.com/grindlemire/tcss/internal/border"
	"github.com/grindlemire/tcss/internal/color"
	"github.com/grindlemire/tcss/internal/font"
	"github.com/grindlemire/tcss/internal/layout"
	"github.com/grindlemire/tcss/internal/number"
	"github.com/grindlemire/tcss/internal/option"
	"github.com/grindlemire/tcss/internal/text"
)

// Option holds either a declared value or nothing.
type Option[T comparable] = option.Option[T]

// Some returns a present Option holding v.
func Some[T comparable](v T) Option[T] {
	return option.Some(v)
}

// Absent returns an Option holding nothing.
func Absent[T comparable]() Option[T] {
	return option.None[T]()
}

// Int is an integer style scalar.
type Int = number.Int

// Float is a float style scalar compared by bit pattern.
type Float = number.Float

// NumberParseError describes a failed integer or float parse.
type NumberParseError = number.ParseError

const (
	IntZero = number.IntZero
	IntOne  = number.IntOne
)

var (
	FloatZero = number.FloatZero
	FloatOne  = number.FloatOne
	FloatHalf = number.FloatHalf

	ErrInvalidRadix = number.ErrInvalidRadix
	ErrMalformed    = number.ErrMalformed
)

// NewInt returns v as an Int.
func NewInt(v int32) Int { return number.NewInt(v) }

// NewFloat returns v as a Float.
func NewFloat(v float32) Float { return number.NewFloat(v) }

// ParseInt parses a decimal or 0b/0o/0x prefixed integer literal.
func ParseInt(s string) (Int, error) { return number.ParseInt(s) }

// ParseIntRadix parses s in the given radix (2-36).
func ParseIntRadix(s string, radix int) (Int, error) { return number.ParseIntRadix(s, radix) }

// ParseFloat parses a finite decimal float literal.
func ParseFloat(s string) (Float, error) { return number.ParseFloat(s) }

// Str is an immutable text value.
type Str = text.Str

// StaticStr wraps s without copying it.
func StaticStr(s string) Str { return text.Static(s) }

// OwnedStr copies s into a new Str.
func OwnedStr(s string) Str { return text.Owned(s) }

// Unit is a dimensional value: cells, percent, fill weight, auto or unset.
type Unit = layout.Unit

// UnitKind specifies how a Unit is interpreted.
type UnitKind = layout.UnitKind

const (
	UnitUnset   = layout.UnitUnset
	UnitCells   = layout.UnitCells
	UnitPercent = layout.UnitPercent
	UnitFill    = layout.UnitFill
	UnitAuto    = layout.UnitAuto
)

var (
	Full    = layout.Full
	Half    = layout.Half
	Zero    = layout.Zero
	FillOne = layout.FillOne
)

// Cells returns an absolute size in terminal cells.
func Cells(n int32) Unit { return layout.Cells(n) }

// Percent returns a size relative to the parent's inner size.
func Percent(p uint8) Unit { return layout.Percent(p) }

// Fill returns a weighted share of leftover space.
func Fill(w uint16) Unit { return layout.Fill(w) }

// Auto returns a content-sized Unit.
func Auto() Unit { return layout.Auto() }

// Unset returns the explicitly absent Unit.
func Unset() Unit { return layout.Unset() }

// ParseUnit parses "12", "50%", "2fr", "auto" or "unset".
func ParseUnit(s string) (Unit, error) { return layout.ParseUnit(s) }

// Edges holds one value per side: top, right, bottom, left.
type Edges[T any] = layout.Edges[T]

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll[T any](v T) Edges[T] { return layout.EdgeAll(v) }

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric[T any](vertical, horizontal T) Edges[T] {
	return layout.EdgeSymmetric(vertical, horizontal)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL[T any](t, r, b, l T) Edges[T] { return layout.EdgeTRBL(t, r, b, l) }

// ParseEdges parses CSS 1-4 value shorthand such as "1 2" or "1 50% 1 auto".
func ParseEdges(s string) (Edges[Unit], error) { return layout.ParseEdges(s) }

// Display specifies how an element lays out its children.
type Display = layout.Display

const (
	DisplayBlock = layout.DisplayBlock
	DisplayFlex  = layout.DisplayFlex
	DisplayNone  = layout.DisplayNone
)

// FlexDirection specifies the main axis of a flex container.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStretch  = layout.AlignStretch
	AlignStart    = layout.AlignStart
	AlignCenter   = layout.AlignCenter
	AlignEnd      = layout.AlignEnd
	AlignBaseline = layout.AlignBaseline
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// TextAlign specifies horizontal text alignment.
type TextAlign = layout.TextAlign

const (
	TextAlignLeft   = layout.TextAlignLeft
	TextAlignCenter = layout.TextAlignCenter
	TextAlignRight  = layout.TextAlignRight
)

// Overflow specifies what happens to content that exceeds the element bounds.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Color is a terminal color value.
type Color = color.Color

// ColorKind distinguishes between color representations.
type ColorKind = color.Kind

// NamedColor is one of the 16 standard ANSI colors.
type NamedColor = color.NamedColor

const (
	ColorKindNone    = color.KindNone
	ColorKindInherit = color.KindInherit
	ColorKindNamed   = color.KindNamed
	ColorKindIndexed = color.KindIndexed
	ColorKindRGB     = color.KindRGB
)

// The 16 ANSI colors as Color values.
var (
	Black   = color.Named(color.Black)
	Red     = color.Named(color.Red)
	Green   = color.Named(color.Green)
	Yellow  = color.Named(color.Yellow)
	Blue    = color.Named(color.Blue)
	Magenta = color.Named(color.Magenta)
	Cyan    = color.Named(color.Cyan)
	White   = color.Named(color.White)

	BrightBlack   = color.Named(color.BrightBlack)
	BrightRed     = color.Named(color.BrightRed)
	BrightGreen   = color.Named(color.BrightGreen)
	BrightYellow  = color.Named(color.BrightYellow)
	BrightBlue    = color.Named(color.BrightBlue)
	BrightMagenta = color.Named(color.BrightMagenta)
	BrightCyan    = color.Named(color.BrightCyan)
	BrightWhite   = color.Named(color.BrightWhite)
)

// ErrInvalidColor is returned by ParseColor for text that names no color.
var ErrInvalidColor = color.ErrInvalidColor

// NoColor returns the color that leaves the terminal default in place.
func NoColor() Color { return color.None() }

// InheritColor returns the color that adopts the parent's resolved color.
func InheritColor() Color { return color.Inherit() }

// Named returns one of the 16 ANSI colors. Values of 16 and above
// yield the matching xterm palette index.
func Named(n NamedColor) Color { return color.Named(n) }

// Indexed returns an xterm 256-palette color.
func Indexed(i uint8) Color { return color.Indexed(i) }

// RGB returns a true color.
func RGB(r, g, b uint8) Color { return color.RGB(r, g, b) }

// Hex decodes "#rrggbb". It reports false for anything else and never panics.
func Hex(s string) (Color, bool) { return color.Hex(s) }

// HexBytes is Hex for a byte slice.
func HexBytes(b []byte) (Color, bool) { return color.FromHexBytes(b) }

// ParseColor parses "#rrggbb", a color name, "inherit", "none" or an index 0-255.
func ParseColor(s string) (Color, error) { return color.ParseColor(s) }

// FontStyle is a set of text modifiers.
type FontStyle = font.FontStyle

const (
	FontNormal    = font.Normal
	Bold          = font.Bold
	Italic        = font.Italic
	Underline     = font.Underline
	Blink         = font.Blink
	Strikethrough = font.Strikethrough
	Dim           = font.Dim
)

// FontStyleFromBits builds a FontStyle from a raw byte, clearing the reserved bits.
func FontStyleFromBits(b uint8) FontStyle { return font.FromBits(b) }

// ParseFontStyle parses modifier names such as "bold|italic".
func ParseFontStyle(s string) (FontStyle, error) { return font.Parse(s) }

// BorderStyle represents different styles of box borders.
type BorderStyle = border.BorderStyle

// BorderGlyphs holds the characters used to draw a box border.
type BorderGlyphs = border.Glyphs

// Border is a line style plus an optional color override.
type Border = border.Border

const (
	BorderNone    = border.None
	BorderSolid   = border.Solid
	BorderRounded = border.Rounded
	BorderDouble  = border.Double
	BorderThick   = border.Thick
	BorderDashed  = border.Dashed
)

var (
	NoBorder      = border.NoBorder
	SolidBorder   = border.SolidBorder
	RoundedBorder = border.RoundedBorder
	DoubleBorder  = border.DoubleBorder
	ThickBorder   = border.ThickBorder
	DashedBorder  = border.DashedBorder
)

// ParseBorder parses "<style>" or "<style> <color>".
func ParseBorder(s string) (Border, error) { return border.Parse(s) }
