package timeseries

import (
	"errors"
	"fmt"
)

// Error kinds shared by every package of the module. Callers match them with
// errors.Is.
var (
	ErrParse           = errors.New("parse error")
	ErrKeyNotFound     = errors.New("key not found")
	ErrEmptySeries     = errors.New("empty series")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ParseError describes a cell that could not be read during loading.
type ParseError struct {
	Row    int // 1-based data row; 0 when the error is not tied to a row
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
