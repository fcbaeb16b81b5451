package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// UnitKind specifies how a Unit is interpreted.
type UnitKind uint8

const (
	UnitUnset   UnitKind = iota // Explicitly absent; the zero value
	UnitCells                   // Absolute terminal cells
	UnitPercent                 // Percentage of the parent's inner size
	UnitFill                    // Weighted share of leftover space
	UnitAuto                    // Sized to content
)

// ErrInvalidUnit is returned by ParseUnit for text that is not a unit.
var ErrInvalidUnit = errors.New("invalid unit")

// Unit is a dimensional value: width, height, gap, one side of padding...
//
// The zero value is Unset, never zero cells. An Edges[Unit] that only
// declares some sides therefore leaves the others absent, which keeps
// cascading correct.
//
// Percent is relative to the parent's inner size after its own padding is
// subtracted (border-box semantics). Fill weights share the space left
// after definite siblings are placed; Fill(1) next to Fill(2) gets one
// third. Fill(0) behaves as Auto.
type Unit struct {
	kind UnitKind
	n    int32
}

var (
	// Full is 100% of the parent dimension.
	Full = Percent(100)
	// Half is 50% of the parent dimension.
	Half = Percent(50)
	// Zero is 0 cells.
	Zero = Cells(0)
	// FillOne takes all remaining space when it has no fill siblings.
	FillOne = Fill(1)
)

// Cells returns an absolute size in terminal cells. Negative values are
// meaningful for offsets such as margins, not for width or height.
func Cells(n int32) Unit {
	return Unit{kind: UnitCells, n: n}
}

// Percent returns a percentage of the parent's inner size. Values are
// conventionally 0-100; larger values are kept and overflow the parent.
func Percent(p uint8) Unit {
	return Unit{kind: UnitPercent, n: int32(p)}
}

// Fill returns a proportional share of leftover space with weight w.
func Fill(w uint16) Unit {
	return Unit{kind: UnitFill, n: int32(w)}
}

// Auto returns a Unit sized to the element's content.
func Auto() Unit {
	return Unit{kind: UnitAuto}
}

// Unset returns the absent Unit. It equals the zero value.
func Unset() Unit {
	return Unit{}
}

// Kind returns how the Unit is interpreted.
func (u Unit) Kind() UnitKind {
	return u.kind
}

// IsDefinite returns true for Cells and Percent: values resolvable without
// layout context.
func (u Unit) IsDefinite() bool {
	return u.kind == UnitCells || u.kind == UnitPercent
}

// IsIntrinsic returns true for Fill and Auto: values that need layout-time
// information to resolve.
func (u Unit) IsIntrinsic() bool {
	return u.kind == UnitFill || u.kind == UnitAuto
}

// IsUnset returns true if the Unit is logically absent.
func (u Unit) IsUnset() bool {
	return u.kind == UnitUnset
}

// IsAuto returns true for Auto and for the equivalent Fill(0).
func (u Unit) IsAuto() bool {
	return u.kind == UnitAuto || (u.kind == UnitFill && u.n == 0)
}

// AsCells returns the cell count of a Cells unit.
func (u Unit) AsCells() (int32, bool) {
	if u.kind != UnitCells {
		return 0, false
	}
	return u.n, true
}

// AsPercent returns the percentage of a Percent unit.
func (u Unit) AsPercent() (uint8, bool) {
	if u.kind != UnitPercent {
		return 0, false
	}
	return uint8(u.n), true
}

// AsFill returns the weight of a Fill unit.
func (u Unit) AsFill() (uint16, bool) {
	if u.kind != UnitFill {
		return 0, false
	}
	return uint16(u.n), true
}

// Normalize rewrites Fill(0) as Auto and returns every other Unit unchanged.
func (u Unit) Normalize() Unit {
	if u.kind == UnitFill && u.n == 0 {
		return Auto()
	}
	return u
}

// String renders the Unit in the syntax accepted by ParseUnit.
func (u Unit) String() string {
	switch u.kind {
	case UnitCells:
		return strconv.FormatInt(int64(u.n), 10)
	case UnitPercent:
		return strconv.FormatInt(int64(u.n), 10) + "%"
	case UnitFill:
		return strconv.FormatInt(int64(u.n), 10) + "fr"
	case UnitAuto:
		return "auto"
	default:
		return "unset"
	}
}

// ParseUnit parses "12" or "-1" (cells), "50%" (percent), "2fr" (fill),
// "auto" and "unset". Keywords are case-insensitive.
func ParseUnit(s string) (Unit, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case t == "auto":
		return Auto(), nil
	case t == "unset":
		return Unset(), nil
	case strings.HasSuffix(t, "%"):
		p, err := strconv.ParseUint(strings.TrimSuffix(t, "%"), 10, 8)
		if err != nil {
			return Unit{}, fmt.Errorf("%w %q: percent must be 0-255", ErrInvalidUnit, s)
		}
		return Percent(uint8(p)), nil
	case strings.HasSuffix(t, "fr"):
		w, err := strconv.ParseUint(strings.TrimSuffix(t, "fr"), 10, 16)
		if err != nil {
			return Unit{}, fmt.Errorf("%w %q: fill weight must be 0-65535", ErrInvalidUnit, s)
		}
		return Fill(uint16(w)), nil
	}
	n, err := strconv.ParseInt(t, 10, 32)
	if err != nil {
		return Unit{}, fmt.Errorf("%w %q", ErrInvalidUnit, s)
	}
	return Cells(int32(n)), nil
}
