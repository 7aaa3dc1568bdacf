// Package cutstudio converts Inkscape EPS exports into the restricted EPS
// dialect that Roland CutStudio imports.
//
// Basic usage:
//
//	out, warnings, err := cutstudio.Open("drawing.eps").Convert()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", cutstudio.FormatWarnings(warnings))
//	}
//
// With options:
//
//	warnings, err := cutstudio.Open("drawing.eps").
//	    DetectCalibration().
//	    WriteFile("drawing.cutstudio.eps")
//
// The lower-level packages (contentstream, graphicsstate, calibration,
// writer) can be used directly for finer control.
package cutstudio

import (
	"strings"

	"github.com/tsawler/cutstudio/graphicsstate"
)

// Warning describes input that was tolerated but not understood.
type Warning = graphicsstate.Warning

// Open returns a Converter that reads filename when a terminal operation
// runs.
//
// Example:
//
//	out, _, err := cutstudio.Open("drawing.eps").Mirror().Convert()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns a Converter over EPS data already in memory.
// The data is not copied and must not be modified while in use.
//
// Example:
//
//	out, _, err := cutstudio.FromBytes(data).Convert()
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:       data,
		dataLoaded: true,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	prog := cutstudio.Must(cutstudio.Open("drawing.eps").Program())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a call to Convert() and panics if the
// error is non-nil. It discards warnings and returns just the output.
//
// Example:
//
//	out := cutstudio.MustConvert(cutstudio.FromBytes(data).Convert())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings joins warnings into one line per warning.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
