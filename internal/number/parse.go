package number

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Failure kinds reported by the parsers. Match them with errors.Is.
var (
	// ErrInvalidRadix means the requested radix is outside [2, 36].
	ErrInvalidRadix = errors.New("invalid radix")
	// ErrMalformed means the text is not a valid numeral in the radix.
	ErrMalformed = errors.New("malformed number")
)

const (
	minRadix = 2
	maxRadix = 36
)

// ParseError describes a failed parse. Pos and Digit locate the offending
// byte when there is one; otherwise Pos is -1.
type ParseError struct {
	Input  string
	Radix  int
	Pos    int
	Digit  rune
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "parse %q", e.Input)
	if e.Radix != 0 {
		fmt.Fprintf(&sb, " (radix %d)", e.Radix)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Pos >= 0 {
		fmt.Fprintf(&sb, " %q at offset %d", e.Digit, e.Pos)
	}
	return sb.String()
}

// Unwrap returns the failure kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseInt parses a decimal integer with an optional leading sign, or a
// radix-prefixed literal: 0b (binary), 0o (octal), 0x (hex). Prefixes are
// case-insensitive and follow the sign: "-0x1F" is -31.
func ParseInt(s string) (Int, error) {
	body, neg := splitSign(s)
	radix := 10
	offset := len(s) - len(body)
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'b', 'B':
			radix = 2
		case 'o', 'O':
			radix = 8
		case 'x', 'X':
			radix = 16
		}
		if radix != 10 {
			body = body[2:]
			offset += 2
		}
	}
	return parseDigits(s, body, offset, radix, neg)
}

// ParseIntRadix parses s in the given radix, which must be within [2, 36].
// s may carry a leading sign but no prefix. Digits above 9 are the letters
// a-z in either case.
func ParseIntRadix(s string, radix int) (Int, error) {
	if radix < minRadix || radix > maxRadix {
		return 0, &ParseError{
			Input:  s,
			Radix:  radix,
			Pos:    -1,
			Reason: "radix must be within [2, 36]",
			Err:    ErrInvalidRadix,
		}
	}
	body, neg := splitSign(s)
	return parseDigits(s, body, len(s)-len(body), radix, neg)
}

func splitSign(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	switch s[0] {
	case '-':
		return s[1:], true
	case '+':
		return s[1:], false
	}
	return s, false
}

// parseDigits accumulates body in the given radix. offset is the index of
// body[0] within input, used for error positions.
func parseDigits(input, body string, offset, radix int, neg bool) (Int, error) {
	if body == "" {
		return 0, &ParseError{Input: input, Radix: radix, Pos: -1, Reason: "no digits", Err: ErrMalformed}
	}

	limit := uint64(1<<31 - 1)
	if neg {
		limit = 1 << 31
	}

	var acc uint64
	for i := 0; i < len(body); i++ {
		d, ok := digitValue(body[i])
		if !ok || d >= radix {
			return 0, &ParseError{
				Input:  input,
				Radix:  radix,
				Pos:    offset + i,
				Digit:  rune(body[i]),
				Reason: "invalid digit",
				Err:    ErrMalformed,
			}
		}
		acc = acc*uint64(radix) + uint64(d)
		if acc > limit {
			return 0, &ParseError{
				Input:  input,
				Radix:  radix,
				Pos:    offset + i,
				Digit:  rune(body[i]),
				Reason: "value out of 32-bit range",
				Err:    ErrMalformed,
			}
		}
	}

	if neg {
		return Int(-int64(acc)), nil
	}
	return Int(acc), nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ParseFloat parses a decimal or exponent-form float literal.
// NaN and infinities are rejected because they are never valid declarations.
func ParseFloat(s string) (Float, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return Float{}, &ParseError{Input: s, Pos: -1, Reason: "not a float literal", Err: ErrMalformed}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}, &ParseError{Input: s, Pos: -1, Reason: "not a finite value", Err: ErrMalformed}
	}
	return NewFloat(float32(v)), nil
}

// FormatBinary renders i with a 0b prefix, e.g. "0b1010" or "-0b1010".
func FormatBinary(i Int) string {
	return formatPrefixed(i, 2, "0b")
}

// FormatOctal renders i with a 0o prefix.
func FormatOctal(i Int) string {
	return formatPrefixed(i, 8, "0o")
}

// FormatHex renders i with a 0x prefix and lowercase digits.
func FormatHex(i Int) string {
	return formatPrefixed(i, 16, "0x")
}

func formatPrefixed(i Int, radix int, prefix string) string {
	v := int64(i)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + prefix + strconv.FormatInt(v, radix)
}
