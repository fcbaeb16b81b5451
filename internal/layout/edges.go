package layout

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Edges holds one value per side of a box, in CSS order.
// T is usually Unit (padding, margin) but may be any small value type,
// e.g. Color for per-side border colors.
type Edges[T any] struct {
	Top, Right, Bottom, Left T
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll[T any](v T) Edges[T] {
	return Edges[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric[T any](vertical, horizontal T) Edges[T] {
	return Edges[T]{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL[T any](t, r, b, l T) Edges[T] {
	return Edges[T]{Top: t, Right: r, Bottom: b, Left: l}
}

// Map applies f to every side, preserving shape.
func (e Edges[T]) Map(f func(T) T) Edges[T] {
	return Edges[T]{Top: f(e.Top), Right: f(e.Right), Bottom: f(e.Bottom), Left: f(e.Left)}
}

// MapEdges applies f to every side, producing Edges of another type.
func MapEdges[T, U any](e Edges[T], f func(T) U) Edges[U] {
	return Edges[U]{Top: f(e.Top), Right: f(e.Right), Bottom: f(e.Bottom), Left: f(e.Left)}
}

// AllSatisfy returns true if every side satisfies pred.
func (e Edges[T]) AllSatisfy(pred func(T) bool) bool {
	return pred(e.Top) && pred(e.Right) && pred(e.Bottom) && pred(e.Left)
}

// String renders the sides in CSS order separated by spaces.
func (e Edges[T]) String() string {
	return fmt.Sprintf("%v %v %v %v", e.Top, e.Right, e.Bottom, e.Left)
}

// HorizontalSum returns Left + Right.
func HorizontalSum[T constraints.Integer](e Edges[T]) int {
	return int(e.Left) + int(e.Right)
}

// VerticalSum returns Top + Bottom.
func VerticalSum[T constraints.Integer](e Edges[T]) int {
	return int(e.Top) + int(e.Bottom)
}

// CellEdges converts Edges[Unit] to cell counts when every side is a Cells
// unit, for consumers that can only place absolute spacing.
func CellEdges(e Edges[Unit]) (Edges[int32], bool) {
	if !e.AllSatisfy(func(u Unit) bool { return u.Kind() == UnitCells }) {
		return Edges[int32]{}, false
	}
	return MapEdges(e, func(u Unit) int32 {
		n, _ := u.AsCells()
		return n
	}), true
}

// ParseEdges parses the CSS shorthand for four sides:
//
//	"1"        all sides
//	"1 2"      vertical horizontal
//	"1 2 3"    top horizontal bottom
//	"1 2 3 4"  top right bottom left
func ParseEdges(s string) (Edges[Unit], error) {
	fields := strings.Fields(s)
	units := make([]Unit, len(fields))
	for i, f := range fields {
		u, err := ParseUnit(f)
		if err != nil {
			return Edges[Unit]{}, err
		}
		units[i] = u
	}

	switch len(units) {
	case 1:
		return EdgeAll(units[0]), nil
	case 2:
		return EdgeSymmetric(units[0], units[1]), nil
	case 3:
		return EdgeTRBL(units[0], units[1], units[2], units[1]), nil
	case 4:
		return EdgeTRBL(units[0], units[1], units[2], units[3]), nil
	default:
		return Edges[Unit]{}, fmt.Errorf("%w %q: expected 1 to 4 values, got %d", ErrInvalidUnit, s, len(units))
	}
}
