// Package model provides the geometry and instruction types shared by the
// converter packages.
//
// Coordinates are PostScript points (1/72 inch) with the y axis pointing up.
//
// # Matrices
//
// [Matrix] stores an affine transform as the six values a b c d e f that
// PostScript's concat operator takes. They describe the 3×3 matrix
//
//	| a b 0 |
//	| c d 0 |
//	| e f 1 |
//
// applied to row vectors [x y 1], so m1.Multiply(m2) maps a point through m1
// first and m2 second.
//
// # Programs
//
// A [Program] is the flat list of resolved [Instruction] values produced by
// the interpreter: absolute moveto, lineto and curveto operations in output
// space.
package model
