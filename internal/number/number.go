// Package number implements the scalar values used by style properties:
// a 32-bit integer for whole-number properties and a 32-bit float whose
// equality is defined over its bit pattern.
package number

import (
	"math"
	"strconv"
)

// Int is an integer style scalar (z-index, order, column count...).
type Int int32

const (
	// IntZero is 0.
	IntZero Int = 0
	// IntOne is 1.
	IntOne Int = 1
)

// NewInt returns v as an Int.
func NewInt(v int32) Int {
	return Int(v)
}

// Get returns the underlying int32.
func (i Int) Get() int32 {
	return int32(i)
}

// IsZero returns true if the value is zero.
func (i Int) IsZero() bool {
	return i == 0
}

// IsNegative returns true if the value is below zero.
func (i Int) IsNegative() bool {
	return i < 0
}

// Add returns i + o. Overflow wraps, as int32 arithmetic does.
func (i Int) Add(o Int) Int {
	return i + o
}

// Sub returns i - o.
func (i Int) Sub(o Int) Int {
	return i - o
}

// Neg returns -i.
func (i Int) Neg() Int {
	return -i
}

// Compare returns -1, 0 or +1 depending on whether i is less than, equal
// to, or greater than o.
func (i Int) Compare(o Int) int {
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	}
	return 0
}

// String formats the value in decimal.
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float is a floating-point style scalar (opacity, flex-grow, flex-shrink).
//
// Float stores the IEEE 754 bit pattern, so == and Compare work on bits
// rather than numeric value, and a Style holding one can be a map key:
//   - NaN equals itself when the payload matches.
//   - +0 and -0 are unequal because their bits differ.
type Float struct {
	bits uint32
}

var (
	// FloatZero is 0.0.
	FloatZero = NewFloat(0)
	// FloatOne is 1.0.
	FloatOne = NewFloat(1)
	// FloatHalf is 0.5.
	FloatHalf = NewFloat(0.5)
)

// NewFloat returns v as a Float.
func NewFloat(v float32) Float {
	return Float{bits: math.Float32bits(v)}
}

// FloatFromBits returns the Float with the given IEEE 754 bit pattern.
func FloatFromBits(b uint32) Float {
	return Float{bits: b}
}

// Get returns the underlying float32.
func (f Float) Get() float32 {
	return math.Float32frombits(f.bits)
}

// Bits returns the IEEE 754 bit pattern. Equal Floats have equal Bits.
func (f Float) Bits() uint32 {
	return f.bits
}

// IsZero returns true for +0 and -0.
func (f Float) IsZero() bool {
	return f.Get() == 0
}

// Add returns f + o.
func (f Float) Add(o Float) Float {
	return NewFloat(f.Get() + o.Get())
}

// Mul returns f * o.
func (f Float) Mul(o Float) Float {
	return NewFloat(f.Get() * o.Get())
}

// ClampUnit clamps the value to [0, 1]. NaN is returned unchanged.
func (f Float) ClampUnit() Float {
	v := f.Get()
	switch {
	case v < 0:
		return FloatZero
	case v > 1:
		return FloatOne
	}
	return f
}

// Compare orders Floats by bit pattern under the IEEE 754 totalOrder
// predicate: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN.
// Compare returns 0 exactly when the bits are equal.
func (f Float) Compare(o Float) int {
	a, b := orderKey(f.bits), orderKey(o.bits)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// orderKey maps a sign-magnitude float pattern onto an unsigned key that
// sorts in totalOrder.
func orderKey(b uint32) uint32 {
	if b&(1<<31) != 0 {
		return ^b
	}
	return b | 1<<31
}

// String formats the value with the shortest representation that
// round-trips through ParseFloat.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f.Get()), 'g', -1, 32)
}
