package graphicsstate

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is matched by every fatal interpretation error.
	ErrMalformedInput = errors.New("graphicsstate: malformed input")

	// ErrStackUnderflow is returned when Q has no matching q.
	ErrStackUnderflow = fmt.Errorf("%w: transform stack underflow", ErrMalformedInput)

	// ErrUnclosedPath is returned when h appears before any m.
	ErrUnclosedPath = fmt.Errorf("%w: closepath before first moveto", ErrMalformedInput)
)

// SyntaxError reports the operator and source line a conversion failed on.
type SyntaxError struct {
	Line     int
	Operator string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Operator, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Is makes every SyntaxError match ErrMalformedInput.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedInput
}

// Warning describes input the resolver tolerated but did not understand.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}
