package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKeyword is returned when a keyword names no enumeration value.
var ErrUnknownKeyword = errors.New("unknown keyword")

// Display specifies how an element lays out its children.
type Display uint8

const (
	DisplayBlock Display = iota // Stack children vertically (zero value)
	DisplayFlex                 // Flexible box layout
	DisplayNone                 // Removed from layout; takes no space
)

// FlexDirection specifies the main axis of a flex container.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Left-to-right (zero value)
	Column                             // Top-to-bottom
	RowReverse                         // Right-to-left
	ColumnReverse                      // Bottom-to-top
)

// IsHorizontal returns true for Row and RowReverse.
func (d FlexDirection) IsHorizontal() bool {
	return d == Row || d == RowReverse
}

// IsVertical returns true for Column and ColumnReverse.
func (d FlexDirection) IsVertical() bool {
	return d == Column || d == ColumnReverse
}

// IsReversed returns true if children are placed in reverse order.
func (d FlexDirection) IsReversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStretch  Align = iota // Stretch to fill cross axis (zero value)
	AlignStart                 // Align to start of cross axis
	AlignCenter                // Center on cross axis
	AlignEnd                   // Align to end of cross axis
	AlignBaseline              // Align on text baseline; same as start when all cells share a height
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start (zero value)
	JustifyCenter                      // Center children
	JustifyEnd                         // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// TextAlign specifies horizontal text alignment within an element.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // Left edge (zero value)
	TextAlignCenter                  // Centered in the element width
	TextAlignRight                   // Right edge
)

// Overflow specifies what happens to content that exceeds the element bounds.
type Overflow uint8

const (
	OverflowVisible Overflow = iota // Paint outside bounds (zero value)
	OverflowHidden                  // Clip at the boundary
	OverflowScroll                  // Clip and show a scrollbar
)

var (
	displayNames   = []string{"block", "flex", "none"}
	directionNames = []string{"row", "column", "row-reverse", "column-reverse"}
	alignNames     = []string{"stretch", "start", "center", "end", "baseline"}
	justifyNames   = []string{"start", "center", "end", "space-between", "space-around", "space-evenly"}
	textAlignNames = []string{"left", "center", "right"}
	overflowNames  = []string{"visible", "hidden", "scroll"}
)

func (d Display) String() string       { return keywordName(displayNames, d) }
func (d FlexDirection) String() string { return keywordName(directionNames, d) }
func (a Align) String() string         { return keywordName(alignNames, a) }
func (j Justify) String() string       { return keywordName(justifyNames, j) }
func (a TextAlign) String() string     { return keywordName(textAlignNames, a) }
func (o Overflow) String() string      { return keywordName(overflowNames, o) }

// ParseDisplay parses a CSS display keyword.
func ParseDisplay(s string) (Display, error) { return parseKeyword[Display]("display", displayNames, s) }

// ParseFlexDirection parses a CSS flex-direction keyword.
func ParseFlexDirection(s string) (FlexDirection, error) {
	return parseKeyword[FlexDirection]("flex-direction", directionNames, s)
}

// ParseAlign parses a CSS align-items keyword. "flex-start" and "flex-end"
// are accepted as aliases.
func ParseAlign(s string) (Align, error) {
	return parseKeyword[Align]("align-items", alignNames, stripFlexPrefix(s))
}

// ParseJustify parses a CSS justify-content keyword. "flex-start" and
// "flex-end" are accepted as aliases.
func ParseJustify(s string) (Justify, error) {
	return parseKeyword[Justify]("justify-content", justifyNames, stripFlexPrefix(s))
}

// ParseTextAlign parses a CSS text-align keyword.
func ParseTextAlign(s string) (TextAlign, error) {
	return parseKeyword[TextAlign]("text-align", textAlignNames, s)
}

// ParseOverflow parses a CSS overflow keyword.
func ParseOverflow(s string) (Overflow, error) {
	return parseKeyword[Overflow]("overflow", overflowNames, s)
}

func stripFlexPrefix(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "flex-start" || t == "flex-end" {
		return strings.TrimPrefix(t, "flex-")
	}
	return t
}

func keywordName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%T(%d)", v, uint8(v))
}

func parseKeyword[T ~uint8](property string, names []string, s string) (T, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == t {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q for %s (want one of %s)", ErrUnknownKeyword, s, property, strings.Join(names, ", "))
}
