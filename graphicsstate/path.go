package graphicsstate

import (
	"github.com/tsawler/cutstudio/model"
)

// PathCursor remembers where the current subpath started, in source
// coordinates, so h can draw back to it.
type PathCursor struct {
	start model.Point
	set   bool
}

// MoveTo records the start of a new subpath (m operator).
func (c *PathCursor) MoveTo(x, y float64) {
	c.start = model.Point{X: x, Y: y}
	c.set = true
}

// Start returns the last moveto point. ok is false before the first moveto.
func (c *PathCursor) Start() (p model.Point, ok bool) {
	return c.start, c.set
}

// rectangle returns the five corners the re operator expands into, closing
// back on the first corner.
func rectangle(x, y, width, height float64) [5]model.Point {
	return [5]model.Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
		{X: x, Y: y},
	}
}
