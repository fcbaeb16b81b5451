// Package text provides Str, the immutable text value used by textual
// style properties (font family, generated content, identifiers).
package text

import "strings"

// Str is immutable text. Values built with Static share the caller's
// backing bytes and never allocate. Values built with Owned copy the
// content onto the heap, detaching it from any buffer the caller may reuse.
//
// Equality is by content only: Static("a") == Owned("a").
type Str struct {
	s string
}

// Static wraps s without copying. Use it for literals and other strings
// whose backing memory lives for the whole program.
func Static(s string) Str {
	return Str{s: s}
}

// Owned returns a Str holding its own copy of s.
func Owned(s string) Str {
	return Str{s: strings.Clone(s)}
}

// FromBytes returns a Str holding a copy of b.
func FromBytes(b []byte) Str {
	return Str{s: string(b)}
}

// String returns the text.
func (s Str) String() string {
	return s.s
}

// Len returns the length in bytes.
func (s Str) Len() int {
	return len(s.s)
}

// IsEmpty returns true for the empty text.
func (s Str) IsEmpty() bool {
	return s.s == ""
}

// Equal reports whether both values hold the same text.
func (s Str) Equal(other Str) bool {
	return s.s == other.s
}
