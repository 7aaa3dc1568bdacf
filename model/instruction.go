package model

// Op identifies a resolved drawing instruction.
type Op int

const (
	// MoveTo starts a new subpath (m)
	MoveTo Op = iota
	// LineTo draws a straight segment (l)
	LineTo
	// CurveTo draws a cubic Bézier curve (c)
	CurveTo
)

// Operator returns the output dialect mnemonic for the op.
func (o Op) Operator() string {
	switch o {
	case MoveTo:
		return "m"
	case LineTo:
		return "l"
	case CurveTo:
		return "c"
	default:
		return ""
	}
}

// String returns a readable name for the op.
func (o Op) String() string {
	switch o {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	default:
		return "Unknown"
	}
}

// Instruction is one resolved drawing operation in output coordinates.
// MoveTo and LineTo carry one point; CurveTo carries two control points
// followed by the end point.
type Instruction struct {
	Op     Op
	Points []Point
}

// End returns the point the pen rests on after the instruction.
func (in Instruction) End() Point {
	if len(in.Points) == 0 {
		return Point{}
	}
	return in.Points[len(in.Points)-1]
}

// Program is an ordered list of resolved instructions.
type Program []Instruction

// Bounds returns the bounding box of every point in the program, control
// points included. ok is false for an empty program.
func (p Program) Bounds() (box BBox, ok bool) {
	for _, in := range p {
		for _, pt := range in.Points {
			if !ok {
				box = BBox{X: pt.X, Y: pt.Y}
				ok = true
				continue
			}
			box = box.Extend(pt)
		}
	}
	return box, ok
}
