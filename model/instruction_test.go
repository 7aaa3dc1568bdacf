package model

import "testing"

func TestOpOperator(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{MoveTo, "m"},
		{LineTo, "l"},
		{CurveTo, "c"},
		{Op(42), ""},
	}
	for _, tt := range tests {
		if got := tt.op.Operator(); got != tt.want {
			t.Errorf("%v.Operator() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestInstructionEnd(t *testing.T) {
	in := Instruction{Op: CurveTo, Points: []Point{{1, 1}, {2, 2}, {3, 4}}}
	if got := in.End(); got != (Point{3, 4}) {
		t.Errorf("End() = %v, want (3, 4)", got)
	}
	if got := (Instruction{}).End(); got != (Point{}) {
		t.Errorf("empty End() = %v, want zero point", got)
	}
}

func TestProgramBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if _, ok := Program(nil).Bounds(); ok {
			t.Error("expected ok=false for empty program")
		}
	})

	t.Run("includes control points", func(t *testing.T) {
		p := Program{
			{Op: MoveTo, Points: []Point{{0, 0}}},
			{Op: CurveTo, Points: []Point{{-5, 10}, {20, 30}, {10, 0}}},
		}
		box, ok := p.Bounds()
		if !ok {
			t.Fatal("expected ok=true")
		}
		expected := BBox{X: -5, Y: 0, Width: 25, Height: 30}
		if box != expected {
			t.Errorf("Bounds() = %v, want %v", box, expected)
		}
	})
}
