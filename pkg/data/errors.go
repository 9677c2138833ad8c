package data

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every failure surfaced by the pipeline wraps exactly one of them.
var (
	ErrIO   = errors.New("io error")
	ErrData = errors.New("data error")
)

// Error reports which stage failed and on which column.
type Error struct {
	Kind   error
	Stage  string
	Column string
	Err    error
}

func (e *Error) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: %v: %v", e.Stage, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: column %q: %v: %v", e.Stage, e.Column, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IOError wraps err as an ErrIO failure of stage.
func IOError(stage, column string, err error) error {
	return &Error{Kind: ErrIO, Stage: stage, Column: column, Err: err}
}

// DataError builds an ErrData failure of stage on column.
func DataError(stage, column, format string, args ...any) error {
	return &Error{Kind: ErrData, Stage: stage, Column: column, Err: errors.Errorf(format, args...)}
}
