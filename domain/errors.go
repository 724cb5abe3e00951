package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Concrete errors wrap one of these so callers can test with errors.Is.
var (
	ErrSchema          = errors.New("schema error")
	ErrParse           = errors.New("parse error")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("io error")
)

// SchemaError reports a required column that is absent from the input table.
type SchemaError struct {
	Column    string
	Available []string
}

func (e *SchemaError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q not found (have: %s)", e.Column, strings.Join(e.Available, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ParseError reports a malformed value. Row is the 1-based sheet row, or 0
// when the value did not come from a sheet.
type ParseError struct {
	Row   int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: parse %q: %v", e.Row, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
