package cutstudio

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/cutstudio/calibration"
	"github.com/tsawler/cutstudio/contentstream"
	"github.com/tsawler/cutstudio/format"
	"github.com/tsawler/cutstudio/graphicsstate"
	"github.com/tsawler/cutstudio/internal/filters"
	"github.com/tsawler/cutstudio/model"
	"github.com/tsawler/cutstudio/writer"
)

var (
	// ErrConfigurationConflict is returned when mirroring is combined with
	// calibration. Cropmark positions assume an unmirrored page.
	ErrConfigurationConflict = errors.New("cutstudio: mirror cannot be combined with calibration")

	// ErrUnsupportedFormat is returned for input that is recognisably not
	// EPS, such as an SVG that has not been exported yet.
	ErrUnsupportedFormat = errors.New("cutstudio: unsupported input format")
)

// Converter provides a fluent interface for converting EPS input.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename   string
	data       []byte
	dataLoaded bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// conversion is the result of interpreting the source once.
type conversion struct {
	program  model.Program
	settings *calibration.Settings
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:   c.filename,
		data:       c.data,
		dataLoaded: c.dataLoaded,
		options:    c.options.clone(),
		err:        c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Mirror flips the output horizontally, for cutting from the back of
// the material.
//
// Example:
//
//	out, _, err := cutstudio.Open("drawing.eps").Mirror().Convert()
func (c *Converter) Mirror() *Converter {
	newConv := c.clone()
	newConv.options.mirror = true
	return newConv
}

// Calibration aligns the output to the registration marks described by s
// and adds the cropmark header. A nil s clears any earlier calibration.
//
// Example:
//
//	s, _ := calibration.Parse(svgText)
//	out, _, err := cutstudio.Open("drawing.eps").Calibration(s).Convert()
func (c *Converter) Calibration(s *calibration.Settings) *Converter {
	newConv := c.clone()
	newConv.options.settings = nil
	if s != nil {
		copied := *s
		newConv.options.settings = &copied
	}
	return newConv
}

// DetectCalibration reads calibration settings from a marker in the source
// itself. Settings passed to Calibration take precedence.
//
// Example:
//
//	out, _, err := cutstudio.Open("drawing.eps").DetectCalibration().Convert()
func (c *Converter) DetectCalibration() *Converter {
	newConv := c.clone()
	newConv.options.detectSettings = true
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Program returns the resolved instructions without the surrounding
// document.
func (c *Converter) Program() (model.Program, error) {
	conv, err := c.run()
	if err != nil {
		return nil, err
	}
	return conv.program, nil
}

// Convert returns the complete output document, along with any warnings
// about input that was ignored. Output is deterministic: converting the
// same input with the same options always yields identical bytes.
//
// Example:
//
//	out, warnings, err := cutstudio.Open("drawing.eps").Convert()
func (c *Converter) Convert() ([]byte, []Warning, error) {
	conv, err := c.run()
	if err != nil {
		return nil, nil, err
	}

	body := writer.FormatProgram(conv.program)
	header := calibration.FormatHeader(conv.settings)
	return writer.Assemble(body, header), conv.warnings, nil
}

// WriteFile converts and writes the output to dst. Nothing is written when
// conversion fails.
func (c *Converter) WriteFile(dst string) ([]Warning, error) {
	out, warnings, err := c.Convert()
	if err != nil {
		return nil, err
	}
	if err := writer.WriteFile(dst, out); err != nil {
		return nil, err
	}
	return warnings, nil
}

// ============================================================================
// Internals
// ============================================================================

// run loads the source, settles the options and interprets the tokens.
func (c *Converter) run() (*conversion, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.options.mirror && c.options.settings != nil {
		return nil, ErrConfigurationConflict
	}

	text, err := c.sourceText()
	if err != nil {
		return nil, err
	}

	settings, err := c.resolveSettings(text)
	if err != nil {
		return nil, err
	}
	if c.options.mirror && settings != nil {
		return nil, ErrConfigurationConflict
	}

	opts := graphicsstate.ResolverOptions{Mirror: c.options.mirror}
	if settings != nil {
		offset := settings.Offset()
		opts.Offset = &offset
	}

	tokens := contentstream.NewParser(text).Parse()
	resolver := graphicsstate.NewResolver(opts)
	program, err := resolver.Resolve(tokens)
	if err != nil {
		return nil, err
	}

	return &conversion{
		program:  program,
		settings: settings,
		warnings: resolver.Warnings(),
	}, nil
}

// sourceText reads and decodes the input.
func (c *Converter) sourceText() (string, error) {
	data := c.data
	if !c.dataLoaded {
		if c.filename == "" {
			return "", fmt.Errorf("no filename specified")
		}
		var err error
		data, err = os.ReadFile(c.filename)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	if f := format.DetectFile(c.filename, data); f != format.EPS && f != format.Unknown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	ps, err := filters.ExtractPostScript(data)
	if err != nil {
		return "", err
	}
	return filters.DecodeText(ps)
}

// resolveSettings picks the calibration to apply, if any.
func (c *Converter) resolveSettings(text string) (*calibration.Settings, error) {
	if c.options.settings != nil {
		// zero means the caller left it unset
		if v := c.options.settings.Version; v != 0 && v != calibration.SupportedVersion {
			return nil, &calibration.UnsupportedVersionError{Version: v}
		}
		return c.options.settings, nil
	}
	if !c.options.detectSettings {
		return nil, nil
	}

	s, err := calibration.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("reading calibration marker: %w", err)
	}
	return s, nil
}
