package model

import "testing"

func TestBBoxExtend(t *testing.T) {
	b := BBox{X: 0, Y: 0}
	b = b.Extend(Point{10, -5})
	b = b.Extend(Point{-2, 7})

	expected := BBox{X: -2, Y: -5, Width: 12, Height: 12}
	if b != expected {
		t.Errorf("Extend() = %v, want %v", b, expected)
	}
	if b.Top() != 7 {
		t.Errorf("Top() = %v, want 7", b.Top())
	}

	// points inside leave the box alone
	if got := b.Extend(Point{0, 0}); got != b {
		t.Errorf("Extend(inside) = %v, want %v", got, b)
	}
}

func TestBBoxExpand(t *testing.T) {
	b := BBox{X: 10, Y: 10, Width: 20, Height: 20}.Expand(5)
	expected := BBox{X: 5, Y: 5, Width: 30, Height: 30}
	if b != expected {
		t.Errorf("Expand(5) = %v, want %v", b, expected)
	}
}

// ============================================================================
// Matrix Tests
// ============================================================================

func TestIdentity(t *testing.T) {
	m := Identity()
	expected := Matrix{1, 0, 0, 1, 0, 0}
	if m != expected {
		t.Errorf("Identity() = %v, want %v", m, expected)
	}
	if p := m.Transform(Point{3, -4}); p != (Point{3, -4}) {
		t.Errorf("Identity().Transform = %v, want (3, -4)", p)
	}
}

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(1, 2, 3, 4, 5, 6)
	expected := Matrix{1, 2, 3, 4, 5, 6}
	if m != expected {
		t.Errorf("NewMatrix() = %v, want %v", m, expected)
	}
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Point{10, 20}, Point{10, 20}},
		{"translation", Translate(100, 50), Point{10, 20}, Point{110, 70}},
		{"scale", Scale(2, 3), Point{10, 20}, Point{20, 60}},
		{"mirror", MirrorX(), Point{10, 20}, Point{-10, 20}},
		{"skew", NewMatrix(1, 0, 1, 1, 0, 0), Point{2, 3}, Point{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Transform(tt.p); got != tt.want {
				t.Errorf("Transform(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiply(t *testing.T) {
	// translate.Multiply(scale) applies translate first, then scale
	combined := Translate(10, 20).Multiply(Scale(2, 2))

	result := combined.Transform(Point{5, 5})
	expected := Point{30, 50}
	if result != expected {
		t.Errorf("Combined transform = %v, want %v", result, expected)
	}
}
