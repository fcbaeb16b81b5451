package theme

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSheet means the document is not a well-formed theme sheet.
	ErrInvalidSheet = errors.New("invalid theme sheet")
	// ErrUnknownTheme means an extends chain names a theme that is not registered.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrExtendsCycle means an extends chain refers back to itself.
	ErrExtendsCycle = errors.New("theme extends cycle")
)

// Error describes one problem found while loading a sheet. Selector and
// Property locate it when known.
type Error struct {
	Theme    string
	Selector string
	Property string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Theme != "" {
		sb.WriteString("theme ")
		sb.WriteString(e.Theme)
	} else {
		sb.WriteString("theme")
	}
	if e.Selector != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Selector)
	}
	if e.Property != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Property)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorList collects every error found in a sheet.
type ErrorList struct {
	errors []*Error
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	parts := make([]string, len(el.errors))
	for i, err := range el.errors {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, len(el.errors))
	for i, err := range el.errors {
		errs[i] = err
	}
	return errs
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}
