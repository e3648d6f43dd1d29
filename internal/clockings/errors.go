package clockings

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the clockings file holds no classified events,
// leaving no month to report on.
var ErrEmptyInput = errors.New("no clocking events found in input")

// ParseError reports a classified line whose timestamp could not be read.
type ParseError struct {
	Line  int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid timestamp %q: %v", e.Line, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
