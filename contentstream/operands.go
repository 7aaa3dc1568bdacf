package contentstream

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOperands is returned when an operator finds fewer operands
	// on the stack than its arity.
	ErrMissingOperands = errors.New("contentstream: not enough operands")
	// ErrNotNumeric is returned when an operand an operator needs is not a
	// number.
	ErrNotNumeric = errors.New("contentstream: operand is not a number")
)

// OperandStack holds the tokens seen since the last operator that cleared
// it. Operators read their operands from the top.
type OperandStack struct {
	items []Token
}

// Push appends a token.
func (s *OperandStack) Push(t Token) {
	s.items = append(s.items, t)
}

// Take returns the n topmost tokens, oldest first, parsed as numbers. The
// stack is not modified. The returned slice is owned by the caller.
func (s *OperandStack) Take(n int) ([]float64, error) {
	if n > len(s.items) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrMissingOperands, n, len(s.items))
	}

	values := make([]float64, n)
	for i, t := range s.items[len(s.items)-n:] {
		v, ok := t.Number()
		if !ok {
			return nil, fmt.Errorf("%w: %q on line %d", ErrNotNumeric, t.Text, t.Line)
		}
		values[i] = v
	}
	return values, nil
}

// Clear discards every pending token.
func (s *OperandStack) Clear() {
	s.items = s.items[:0]
}
