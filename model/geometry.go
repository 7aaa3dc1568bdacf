package model

import "math"

// Point is a position in points, y up.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned box with its origin at the lower-left corner.
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom
	Width  float64
	Height float64
}

// Top returns the y coordinate of the upper edge.
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Extend returns the smallest box containing b and p.
func (b BBox) Extend(p Point) BBox {
	left := math.Min(b.X, p.X)
	bottom := math.Min(b.Y, p.Y)
	right := math.Max(b.X+b.Width, p.X)
	top := math.Max(b.Top(), p.Y)
	return BBox{X: left, Y: bottom, Width: right - left, Height: top - bottom}
}

// Expand grows the box by margin on every side.
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X:      b.X - margin,
		Y:      b.Y - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// Matrix is a 2D affine transform in PostScript's a b c d e f layout.
type Matrix [6]float64

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// NewMatrix builds a matrix from the six operands of a cm operator.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, b, c, d, e, f}
}

// Transform applies the matrix to a point treated as the row vector [x y 1].
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m × other. The result maps a point through m first and
// then through other.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate moves points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale stretches points away from the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// MirrorX flips the x axis about the origin.
func MirrorX() Matrix {
	return Scale(-1, 1)
}
