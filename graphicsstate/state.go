package graphicsstate

import (
	"github.com/tsawler/cutstudio/model"
)

// TransformStack holds one matrix per open graphics state scope.
type TransformStack struct {
	stack []model.Matrix

	// effective caches the composed matrix until the stack changes
	effective model.Matrix
	valid     bool
}

// NewTransformStack creates a stack holding a single identity matrix.
func NewTransformStack() *TransformStack {
	return &TransformStack{
		stack: []model.Matrix{model.Identity()},
	}
}

// PushIdentity opens a new scope (q operator).
func (ts *TransformStack) PushIdentity() {
	ts.Push(model.Identity())
}

// Push opens a new scope starting from m.
func (ts *TransformStack) Push(m model.Matrix) {
	ts.stack = append(ts.stack, m)
	ts.valid = false
}

// Concat multiplies m into the innermost scope (cm operator).
func (ts *TransformStack) Concat(m model.Matrix) {
	top := len(ts.stack) - 1
	ts.stack[top] = ts.stack[top].Multiply(m)
	ts.valid = false
}

// Pop closes the innermost scope (Q operator). The base entry is never
// removed.
func (ts *TransformStack) Pop() error {
	if len(ts.stack) <= 1 {
		return ErrStackUnderflow
	}
	ts.stack = ts.stack[:len(ts.stack)-1]
	ts.valid = false
	return nil
}

// Depth returns the number of entries, base included.
func (ts *TransformStack) Depth() int {
	return len(ts.stack)
}

// Effective returns the composition of every entry, innermost first.
func (ts *TransformStack) Effective() model.Matrix {
	if ts.valid {
		return ts.effective
	}

	m := ts.stack[len(ts.stack)-1]
	for i := len(ts.stack) - 2; i >= 0; i-- {
		m = m.Multiply(ts.stack[i])
	}

	ts.effective = m
	ts.valid = true
	return m
}

// Apply maps a point through the effective transform.
func (ts *TransformStack) Apply(x, y float64) (float64, float64) {
	p := ts.Effective().Transform(model.Point{X: x, Y: y})
	return p.X, p.Y
}
