// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed is returned when the input does not match the layout of
	// the pattern, or the pattern cannot describe a complete date.
	ErrMalformed = errors.New("malformed date")
	// ErrOutOfRange is returned when a numeric field is outside of the
	// range allowed for it, eg. month 13 or day 32.
	ErrOutOfRange = errors.New("date field out of range")
	// ErrInvalidDate is returned for fields that are individually in range
	// but do not form a date in the calendar, eg. Feb 29 in a non-leap year.
	ErrInvalidDate = errors.New("invalid calendar date")
)

// ParseError is the single error type returned by this package. Use
// errors.Is with ErrMalformed, ErrOutOfRange or ErrInvalidDate to
// determine the kind of failure.
type ParseError struct {
	Input   string // The text being parsed, if any.
	Pattern string // The pattern in use, if any.
	Field   string // The field that failed, eg. "month".
	Detail  string
	Err     error
}

func (e *ParseError) Error() string {
	var out strings.Builder
	if len(e.Input) > 0 || len(e.Pattern) > 0 {
		fmt.Fprintf(&out, "parsing %q as %q: ", e.Input, e.Pattern)
	}
	out.WriteString(e.Err.Error())
	if len(e.Field) > 0 {
		fmt.Fprintf(&out, ": %s", e.Field)
	}
	if len(e.Detail) > 0 {
		fmt.Fprintf(&out, ": %s", e.Detail)
	}
	return out.String()
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(kind error, field, format string, args ...any) *ParseError {
	return &ParseError{
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
		Err:    kind,
	}
}

func withInput(err error, input, pattern string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		cpy := *pe
		cpy.Input, cpy.Pattern = input, pattern
		return &cpy
	}
	return err
}
