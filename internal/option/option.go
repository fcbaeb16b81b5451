// Package option provides a present/absent wrapper for style declarations.
//
// A zero Option is absent. Absence is distinct from "present and equal to
// the zero value of T", which is what lets a cascade skip undeclared
// properties instead of resetting them.
package option

import "fmt"

// Option holds either a value of T or nothing.
// It is a plain value: copying it never allocates.
type Option[T comparable] struct {
	value T
	set   bool
}

// Some returns a present Option holding v.
func Some[T comparable](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an absent Option.
func None[T comparable]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet returns true if a value is present.
func (o Option[T]) IsSet() bool {
	return o.set
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.set
}

// OrElse returns the held value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Or returns o when present and fallback otherwise.
// overlay.Or(base) is one right-biased cascade step for a single field.
func (o Option[T]) Or(fallback Option[T]) Option[T] {
	if o.set {
		return o
	}
	return fallback
}

// String renders the value with %v, or "<none>" when absent.
func (o Option[T]) String() string {
	if !o.set {
		return "<none>"
	}
	return fmt.Sprintf("%v", o.value)
}
