// Package graphicsstate resolves EPS drawing code into absolute cutter
// instructions.
//
// # Transform Stack
//
// [TransformStack] mirrors the nesting of graphics state scopes. Each q
// operator opens a scope with an identity matrix, each cm operator is
// multiplied into the innermost scope, and Q closes it again:
//
//	ts := graphicsstate.NewTransformStack()
//	ts.PushIdentity()                  // q
//	ts.Concat(model.Scale(2, 2))       // 2 0 0 2 0 0 cm
//	x, y := ts.Apply(10, 20)           // (20, 40)
//	err := ts.Pop()                    // Q
//
// A point is mapped through the innermost scope first and the base entry
// last. Within one scope, cm operators apply in source order.
//
// # Resolver
//
// [Resolver] runs the tokens produced by the contentstream package against
// the stack and records the result as a [model.Program]:
//   - m, l, c emit transformed moveto, lineto, curveto instructions
//   - h emits a lineto back to the last moveto
//   - re expands into a closed five point rectangle
//   - cm, q, Q update the transform stack
//
// Every other token is left on the operand stack and ignored.
package graphicsstate
