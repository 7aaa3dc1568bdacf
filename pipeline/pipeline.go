package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/srwiley/oksvg"

	"github.com/tsawler/cutstudio"
	"github.com/tsawler/cutstudio/calibration"
	"github.com/tsawler/cutstudio/format"
	"github.com/tsawler/cutstudio/internal/filters"
	"github.com/tsawler/cutstudio/preview"
)

// File name suffixes appended to the source drawing's path.
const (
	SuffixOriginal  = ".orig.svg"
	SuffixPlain     = ".plain.svg"
	SuffixInkscape  = ".inkscape.eps"
	SuffixCutStudio = ".cutstudio.eps"
	SuffixPreview   = ".preview.png"
)

// ErrNotDrawing is returned when the input file is not an SVG document.
var ErrNotDrawing = errors.New("pipeline: input is not an SVG drawing")

// Config controls a pipeline run.
type Config struct {
	// Mirror flips the output. It cannot be used on calibrated drawings.
	Mirror bool

	// Preview writes a PNG rendering next to the output.
	Preview        bool
	PreviewOptions preview.Options

	// Launch opens the output in CutStudio when done.
	Launch bool

	// KeepIntermediates leaves the copied and exported files in place.
	KeepIntermediates bool

	// PageTolerance is how far, in millimetres, the SVG page may differ
	// from the calibrated page size before a warning is logged.
	PageTolerance float64
}

// DefaultConfig returns the configuration used by the command line tool.
func DefaultConfig() Config {
	return Config{
		PreviewOptions:    preview.DefaultOptions(),
		Launch:            true,
		KeepIntermediates: true,
		PageTolerance:     0.5,
	}
}

// Result describes the files a run produced.
type Result struct {
	Output        string
	Preview       string
	Intermediates []string
	Settings      *calibration.Settings
	Warnings      []cutstudio.Warning
}

// Pipeline runs the export for one drawing at a time.
type Pipeline struct {
	exporter Exporter
	launcher Launcher
	config   Config
	log      logrus.FieldLogger
}

// New creates a pipeline. launcher may be nil when Config.Launch is false.
// A nil log uses the logrus standard logger.
func New(exporter Exporter, launcher Launcher, config Config, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		exporter: exporter,
		launcher: launcher,
		config:   config,
		log:      log,
	}
}

// Run exports svgPath and writes svgPath+SuffixCutStudio.
func (p *Pipeline) Run(ctx context.Context, svgPath string) (Result, error) {
	var res Result
	log := p.log.WithField("file", svgPath)

	orig := svgPath + SuffixOriginal
	plain := svgPath + SuffixPlain
	eps := svgPath + SuffixInkscape
	res.Intermediates = []string{orig, plain, eps}

	if !p.config.KeepIntermediates {
		defer p.cleanup(log, res.Intermediates)
	}

	log.WithField("stage", "copy").Debug("copying drawing")
	if err := copyFile(svgPath, orig); err != nil {
		return res, err
	}

	log.WithField("stage", "plain-svg").Debug("exporting plain SVG")
	if err := p.exporter.ExportPlainSVG(ctx, orig, plain); err != nil {
		return res, err
	}

	settings, err := p.readCalibration(log, plain)
	if err != nil {
		return res, err
	}
	res.Settings = settings

	log.WithField("stage", "eps").Debug("exporting EPS")
	if err := p.exporter.ExportEPS(ctx, plain, eps); err != nil {
		return res, err
	}

	conv := cutstudio.Open(eps).Calibration(settings)
	if p.config.Mirror {
		conv = conv.Mirror()
	}

	res.Output = svgPath + SuffixCutStudio
	log.WithFields(logrus.Fields{"stage": "convert", "output": res.Output}).Debug("converting")
	warnings, err := conv.WriteFile(res.Output)
	if err != nil {
		res.Output = ""
		return res, fmt.Errorf("converting %s: %w", eps, err)
	}
	res.Warnings = warnings
	for _, w := range warnings {
		log.WithField("stage", "convert").Warn(w.String())
	}

	if p.config.Preview {
		res.Preview = svgPath + SuffixPreview
		if err := p.writePreview(conv, res.Preview); err != nil {
			// the output itself is fine
			log.WithField("stage", "preview").WithError(err).Warn("preview not written")
			res.Preview = ""
		}
	}

	if p.config.Launch {
		if p.launcher == nil {
			return res, fmt.Errorf("pipeline: launch requested without a launcher")
		}
		log.WithField("stage", "launch").Info("opening in CutStudio")
		if err := p.launcher.Launch(ctx, res.Output); err != nil {
			return res, err
		}
	}

	log.WithField("output", res.Output).Info("conversion complete")
	return res, nil
}

// readCalibration parses the settings marker from the plain SVG and checks
// the page box against them.
func (p *Pipeline) readCalibration(log logrus.FieldLogger, plain string) (*calibration.Settings, error) {
	data, err := os.ReadFile(plain)
	if err != nil {
		return nil, fmt.Errorf("reading plain SVG: %w", err)
	}
	text, err := filters.DecodeText(data)
	if err != nil {
		return nil, err
	}

	settings, err := calibration.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("reading calibration marker: %w", err)
	}
	if settings == nil {
		log.WithField("stage", "calibration").Debug("no calibration marker")
		return nil, nil
	}

	log.WithFields(logrus.Fields{
		"stage": "calibration",
		"dx":    settings.DX,
		"dy":    settings.DY,
	}).Info("found calibration marker")
	p.checkPageBox(log, data, settings)
	return settings, nil
}

// checkPageBox logs a warning when the drawing's view box does not match
// the page the marks were laid out on.
func (p *Pipeline) checkPageBox(log logrus.FieldLogger, svg []byte, s *calibration.Settings) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		log.WithField("stage", "calibration").WithError(err).Warn("cannot read SVG page box")
		return
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if math.Abs(w-s.PageW) > p.config.PageTolerance || math.Abs(h-s.PageH) > p.config.PageTolerance {
		log.WithFields(logrus.Fields{
			"stage":       "calibration",
			"page_width":  w,
			"page_height": h,
			"mark_width":  s.PageW,
			"mark_height": s.PageH,
		}).Warn("page size differs from calibration page size")
	}
}

func (p *Pipeline) writePreview(conv *cutstudio.Converter, path string) error {
	prog, err := conv.Program()
	if err != nil {
		return err
	}
	img, err := preview.Render(prog, p.config.PreviewOptions)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (p *Pipeline) cleanup(log logrus.FieldLogger, paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.WithError(err).Warnf("cannot remove %s", path)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening drawing: %w", err)
	}
	defer in.Close()

	f, err := format.DetectFromReader(in)
	if err != nil {
		return fmt.Errorf("reading drawing: %w", err)
	}
	if f != format.SVG {
		return fmt.Errorf("%w: %s looks like %s", ErrNotDrawing, src, f)
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding drawing: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating copy: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying drawing: %w", err)
	}
	return out.Close()
}
