package graphicsstate

import (
	"fmt"
	"sort"

	"github.com/tsawler/cutstudio/contentstream"
	"github.com/tsawler/cutstudio/model"
)

// ResolverOptions configures the transforms applied on top of the source.
type ResolverOptions struct {
	// Mirror flips the output horizontally.
	Mirror bool

	// Offset, when set, translates the output by the given amount in points
	// after every other transform.
	Offset *model.Point
}

// Resolver turns a token stream into a flat program of absolute
// instructions. A Resolver is used for a single conversion.
type Resolver struct {
	stack    *TransformStack
	operands contentstream.OperandStack
	cursor   PathCursor

	// open source scopes, so setup transforms are never popped
	depth int

	program  model.Program
	warnings []Warning

	unsupported map[string]int
	firstSeen   map[string]int
}

// NewResolver creates a resolver. Setup transforms are pushed below a fresh
// identity scope, so they apply after everything the source does.
func NewResolver(opts ResolverOptions) *Resolver {
	ts := NewTransformStack()
	if opts.Offset != nil {
		ts.Push(model.Translate(opts.Offset.X, opts.Offset.Y))
	}
	if opts.Mirror {
		ts.Push(model.MirrorX())
	}
	ts.PushIdentity()

	return &Resolver{
		stack:       ts,
		program:     make(model.Program, 0),
		unsupported: make(map[string]int),
		firstSeen:   make(map[string]int),
	}
}

// Resolve interprets tokens in order and returns the resolved program.
func (r *Resolver) Resolve(tokens []contentstream.Token) (model.Program, error) {
	for _, tok := range tokens {
		if err := r.processToken(tok); err != nil {
			return nil, err
		}
	}
	r.finish()
	return r.program, nil
}

// Warnings returns what the last Resolve tolerated.
func (r *Resolver) Warnings() []Warning {
	return r.warnings
}

// processToken fires a recognized operator or pushes the token
func (r *Resolver) processToken(tok contentstream.Token) error {
	var err error

	switch tok.Text {
	case "m":
		err = r.moveTo()
	case "l":
		err = r.lineTo()
	case "c":
		err = r.curveTo()
	case "h":
		err = r.closePath()
	case "re":
		err = r.rectangle()
	case "cm":
		err = r.concat()
	case "q":
		r.stack.PushIdentity()
		r.depth++
	case "Q":
		if r.depth == 0 {
			err = ErrStackUnderflow
			break
		}
		err = r.stack.Pop()
		r.depth--
	default:
		if !tok.IsNumber() {
			r.noteUnsupported(tok)
		}
		r.operands.Push(tok)
	}

	if err != nil {
		return &SyntaxError{Line: tok.Line, Operator: tok.Text, Err: err}
	}
	return nil
}

// moveTo handles the m operator
func (r *Resolver) moveTo() error {
	v, err := r.operands.Take(2)
	if err != nil {
		return err
	}
	r.cursor.MoveTo(v[0], v[1])
	r.emit(model.MoveTo, v...)
	r.operands.Clear()
	return nil
}

// lineTo handles the l operator
func (r *Resolver) lineTo() error {
	v, err := r.operands.Take(2)
	if err != nil {
		return err
	}
	r.emit(model.LineTo, v...)
	r.operands.Clear()
	return nil
}

// curveTo handles the c operator. The curve is transformed point by point
// and otherwise passed through.
func (r *Resolver) curveTo() error {
	v, err := r.operands.Take(6)
	if err != nil {
		return err
	}
	r.emit(model.CurveTo, v...)
	r.operands.Clear()
	return nil
}

// closePath handles the h operator by drawing back to the subpath start
func (r *Resolver) closePath() error {
	start, ok := r.cursor.Start()
	if !ok {
		return ErrUnclosedPath
	}
	r.emit(model.LineTo, start.X, start.Y)
	return nil
}

// rectangle handles the re operator
func (r *Resolver) rectangle() error {
	v, err := r.operands.Take(4)
	if err != nil {
		return err
	}
	for i, p := range rectangle(v[0], v[1], v[2], v[3]) {
		op := model.LineTo
		if i == 0 {
			op = model.MoveTo
		}
		r.emit(op, p.X, p.Y)
	}
	r.operands.Clear()
	return nil
}

// concat handles the cm operator
func (r *Resolver) concat() error {
	v, err := r.operands.Take(6)
	if err != nil {
		return err
	}
	r.stack.Concat(model.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5]))
	r.operands.Clear()
	return nil
}

// emit transforms coordinate pairs and appends an instruction
func (r *Resolver) emit(op model.Op, coords ...float64) {
	points := make([]model.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		x, y := r.stack.Apply(coords[i], coords[i+1])
		points = append(points, model.Point{X: x, Y: y})
	}
	r.program = append(r.program, model.Instruction{Op: op, Points: points})
}

// noteUnsupported counts an operator the resolver does not understand
func (r *Resolver) noteUnsupported(tok contentstream.Token) {
	if _, seen := r.unsupported[tok.Text]; !seen {
		r.firstSeen[tok.Text] = tok.Line
	}
	r.unsupported[tok.Text]++
}

// finish turns the collected observations into warnings
func (r *Resolver) finish() {
	names := make([]string, 0, len(r.unsupported))
	for name := range r.unsupported {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r.warnings = append(r.warnings, Warning{
			Line:    r.firstSeen[name],
			Message: fmt.Sprintf("ignored unsupported operator %q (%d occurrences)", name, r.unsupported[name]),
		})
	}

	if r.depth > 0 {
		r.warnings = append(r.warnings, Warning{
			Message: fmt.Sprintf("%d graphics state scopes left open at end of input", r.depth),
		})
	}
}
