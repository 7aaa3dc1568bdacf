// Package preview renders a resolved program to an image, so a cut can be
// checked before it is sent to the cutter.
//
// Lines and curves are stroked with rasterx. Output space has the y axis
// pointing up, so the image is flipped vertically.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/cutstudio/model"
)

var (
	// ErrEmptyProgram is returned when there is nothing to draw.
	ErrEmptyProgram = errors.New("preview: program has no points")
	// ErrTooLarge is returned when the image would exceed MaxDimension.
	ErrTooLarge = errors.New("preview: image too large")
)

// Options controls rendering.
type Options struct {
	Scale        float64 // pixels per point
	Margin       int     // pixels around the drawing
	StrokeWidth  float64 // pixels
	MaxDimension int     // largest allowed width or height in pixels
	Background   color.Color
	Stroke       color.Color
}

// DefaultOptions returns the options used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Scale:        2,
		Margin:       10,
		StrokeWidth:  1,
		MaxDimension: 8192,
		Background:   color.White,
		Stroke:       color.Black,
	}
}

// Render strokes every instruction of p onto a new image.
func Render(p model.Program, opts Options) (*image.RGBA, error) {
	box, ok := p.Bounds()
	if !ok {
		return nil, ErrEmptyProgram
	}
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("preview: scale must be positive, got %v", opts.Scale)
	}

	box = box.Expand(float64(opts.Margin) / opts.Scale)

	// sizes stay float until they are known to fit an int
	w := math.Ceil(box.Width*opts.Scale) + 1
	h := math.Ceil(box.Height*opts.Scale) + 1
	limit := float64(opts.MaxDimension)
	if opts.MaxDimension <= 0 {
		limit = math.MaxInt32
	}
	if !(w <= limit && h <= limit) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrTooLarge, w, h)
	}
	width, height := int(w), int(h)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	dasher.SetStroke(fixed.Int26_6(opts.StrokeWidth*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(opts.Stroke)

	pen := &pen{
		dasher: dasher,
		toPixel: func(pt model.Point) fixed.Point26_6 {
			x := (pt.X - box.X) * opts.Scale
			y := (box.Top() - pt.Y) * opts.Scale
			return rasterx.ToFixedP(x, y)
		},
	}
	for _, in := range p {
		pen.draw(in)
	}
	pen.stop()
	dasher.Draw()

	return img, nil
}

// pen tracks the open subpath while feeding the dasher.
type pen struct {
	dasher  *rasterx.Dasher
	toPixel func(model.Point) fixed.Point26_6
	current fixed.Point26_6
	started bool
}

func (p *pen) draw(in model.Instruction) {
	if len(in.Points) == 0 {
		return
	}

	switch in.Op {
	case model.MoveTo:
		p.stop()
		p.current = p.toPixel(in.Points[0])
	case model.LineTo:
		p.start()
		p.current = p.toPixel(in.End())
		p.dasher.Line(p.current)
	case model.CurveTo:
		if len(in.Points) != 3 {
			return
		}
		p.start()
		c1, c2 := p.toPixel(in.Points[0]), p.toPixel(in.Points[1])
		p.current = p.toPixel(in.End())
		p.dasher.CubeBezier(c1, c2, p.current)
	}
}

func (p *pen) start() {
	if !p.started {
		p.dasher.Start(p.current)
		p.started = true
	}
}

func (p *pen) stop() {
	if p.started {
		p.dasher.Stop(false)
		p.started = false
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encoding png: %w", err)
	}
	return nil
}
