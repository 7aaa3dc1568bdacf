package calibration

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tsawler/cutstudio/model"
)

// ErrInvalidLayout is returned when the margins leave no room for the marks.
var ErrInvalidLayout = errors.New("calibration: marks do not fit on the page")

// MarkType selects how many registration marks are printed.
type MarkType string

const (
	// ThreeMarks prints marks in three corners.
	ThreeMarks MarkType = "three"
	// FourMarks prints marks in all four corners, pushed inwards by the
	// manual alignment marks.
	FourMarks MarkType = "four"
)

// manualMarkSize is the size of the L-shaped manual alignment marks.
const manualMarkSize = 5.0

// Margins are the unprintable borders of a machine, in millimetres.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// PageSize is a page in millimetres.
type PageSize struct {
	Width, Height float64
}

// MachineMargins holds the margin presets per machine.
var MachineMargins = map[string]Margins{
	"gx_24_gs_24": {Top: 60, Bottom: 20, Left: 15, Right: 15},
	"gr_g":        {Top: 30, Bottom: 45, Left: 10, Right: 10},
	"sv_series":   {Top: 6, Bottom: 30, Left: 23, Right: 23},
	"sv_8":        {Top: 6, Bottom: 30, Left: 23, Right: 23},
}

// PageSizes holds the supported page presets.
var PageSizes = map[string]PageSize{
	"A1": {Width: 594, Height: 841},
	"A2": {Width: 420, Height: 594},
	"A3": {Width: 297, Height: 420},
	"A4": {Width: 210, Height: 297},
}

// LayoutOptions describes the page and marks to lay out.
type LayoutOptions struct {
	Page     PageSize
	Margins  Margins
	MarkType MarkType
}

// Preset builds layout options from a machine and page preset name.
func Preset(machine, page string, markType MarkType) (LayoutOptions, error) {
	margins, ok := MachineMargins[machine]
	if !ok {
		return LayoutOptions{}, fmt.Errorf("calibration: unknown machine preset %q (known: %v)", machine, presetNames(MachineMargins))
	}
	size, ok := PageSizes[page]
	if !ok {
		return LayoutOptions{}, fmt.Errorf("calibration: unknown page size %q (known: %v)", page, presetNames(PageSizes))
	}
	return LayoutOptions{Page: size, Margins: margins, MarkType: markType}, nil
}

func presetNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mark is a registration mark centre, in millimetres from the lower-left
// page corner.
type Mark struct {
	Name   string
	Center model.Point
}

// Layout is the computed mark placement.
type Layout struct {
	Settings    Settings
	Marks       []Mark
	CuttingArea model.BBox
}

// ComputeLayout places the marks inside the machine margins. The first mark
// is the reference mark the settings offset points at.
func ComputeLayout(opts LayoutOptions) (Layout, error) {
	inset := MarkRadiusMM
	switch opts.MarkType {
	case ThreeMarks:
	case FourMarks:
		inset += manualMarkSize
	default:
		return Layout{}, fmt.Errorf("calibration: unknown mark type %q", opts.MarkType)
	}

	left := opts.Margins.Left + inset
	right := opts.Page.Width - opts.Margins.Right - inset
	bottom := opts.Margins.Bottom + inset
	top := opts.Page.Height - opts.Margins.Top - inset

	width := right - left
	height := top - bottom
	if width <= 2*MarkRadiusMM || height <= 2*MarkRadiusMM {
		return Layout{}, fmt.Errorf("%w: spacing %.1f x %.1f mm", ErrInvalidLayout, width, height)
	}

	marks := []Mark{
		{Name: "Bottom Left Cropmark", Center: model.Point{X: left, Y: bottom}},
		{Name: "Top Left Cropmark", Center: model.Point{X: left, Y: top}},
		{Name: "Bottom Right Cropmark", Center: model.Point{X: right, Y: bottom}},
	}
	if opts.MarkType == FourMarks {
		marks = append(marks, Mark{Name: "Top Right Cropmark", Center: model.Point{X: right, Y: top}})
	}

	return Layout{
		Settings: Settings{
			Version: SupportedVersion,
			PageW:   opts.Page.Width,
			PageH:   opts.Page.Height,
			DX:      left,
			DY:      bottom,
			W:       width,
			H:       height,
		},
		Marks: marks,
		CuttingArea: model.BBox{
			X:      left + MarkRadiusMM,
			Y:      bottom + MarkRadiusMM,
			Width:  width - 2*MarkRadiusMM,
			Height: height - 2*MarkRadiusMM,
		},
	}, nil
}
