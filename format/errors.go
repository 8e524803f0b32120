package format

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Format. Parse and compile errors are wrapped in a
// *FormatError; errors.Is works through it.
var (
	ErrFormatAlreadySet = errors.New("format already set")
	ErrNoFormat         = errors.New("no format set")
	ErrFrozen           = errors.New("properties cannot be changed after parsing started")

	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrContentEnded    = errors.New("content ended unexpectedly")
	ErrSurplusContent  = errors.New("surplus content")
	ErrMissingData     = errors.New("missing data")
	ErrTooManyElements = errors.New("too many elements")
	ErrTooManyRows     = errors.New("too many rows")
	ErrTooManyColumns  = errors.New("too many columns")

	ErrBadDigits   = errors.New("illegal digit run")
	ErrUnknownType = errors.New("unknown type character")
	ErrBadHeader   = errors.New("malformed array or matrix header")
)

// FormatError locates an error in the pattern. Column is the 1-based
// column of the pattern token in charge, Field the 1-based index of the
// value field (0 for literals and compile errors). Text holds the offending
// token, digit run or character, if any.
type FormatError struct {
	Column int
	Field  int
	Text   string
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Column > 0 {
		fmt.Fprintf(&b, " at column %d", e.Column)
	}
	if e.Field > 0 {
		fmt.Fprintf(&b, ", field %d", e.Field)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, ": %q", e.Text)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
