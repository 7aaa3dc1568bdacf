// Command cutstudio converts Inkscape drawings for Roland CutStudio.
//
// Usage:
//
//	cutstudio convert [-mirror] [-detect] [-calibration drawing.svg] [-o out.eps] [-preview out.png] input.eps
//	cutstudio run [-mirror] [-preview] [-no-launch] [-clean] drawing.svg
//	cutstudio marker [-machine gx_24_gs_24] [-page A4] [-marks four]
//
// The run command looks for Inkscape and CutStudio on PATH unless
// CUTSTUDIO_INKSCAPE or CUTSTUDIO_BIN name them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/cutstudio"
	"github.com/tsawler/cutstudio/calibration"
	"github.com/tsawler/cutstudio/internal/filters"
	"github.com/tsawler/cutstudio/pipeline"
	"github.com/tsawler/cutstudio/preview"
	"github.com/tsawler/cutstudio/writer"
)

// errUsage signals a usage problem already reported to the user.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		if !errors.Is(err, errUsage) {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, log *logrus.Logger) error {
	if len(args) == 0 {
		fmt.Fprintln(log.Out, "usage: cutstudio <convert|run|marker> [flags] [file]")
		return errUsage
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:], stdout, log)
	case "run":
		return runPipeline(ctx, args[1:], log)
	case "marker":
		return runMarker(args[1:], stdout, log)
	default:
		fmt.Fprintf(log.Out, "unknown command %q\n", args[0])
		return errUsage
	}
}

// newFlagSet returns a FlagSet sharing the -log-level flag.
func newFlagSet(name string, log *logrus.Logger) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(log.Out)
	level := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	return fs, level
}

func parseFlags(fs *flag.FlagSet, level *string, args []string, log *logrus.Logger) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func runConvert(args []string, stdout io.Writer, log *logrus.Logger) error {
	fs, level := newFlagSet("convert", log)
	mirror := fs.Bool("mirror", false, "mirror the output horizontally")
	detect := fs.Bool("detect", false, "read calibration settings from the input")
	calFrom := fs.String("calibration", "", "read calibration settings from this file")
	output := fs.String("o", "", "output file (default <input>"+pipeline.SuffixCutStudio+", - for stdout)")
	previewPath := fs.String("preview", "", "also write a PNG preview to this file")
	if err := parseFlags(fs, level, args, log); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(log.Out, "usage: cutstudio convert [flags] input.eps")
		fs.PrintDefaults()
		return errUsage
	}
	input := fs.Arg(0)

	conv := cutstudio.Open(input)
	if *mirror {
		conv = conv.Mirror()
	}
	if *detect {
		conv = conv.DetectCalibration()
	}
	if *calFrom != "" {
		s, err := readSettings(*calFrom)
		if err != nil {
			return err
		}
		if s == nil {
			log.WithField("file", *calFrom).Warn("no calibration marker found")
		}
		conv = conv.Calibration(s)
	}

	out, warnings, err := conv.Convert()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.WithField("file", input).Warn(w.String())
	}

	dst := *output
	if dst == "" {
		dst = input + pipeline.SuffixCutStudio
	}
	if dst == "-" {
		if _, err := stdout.Write(out); err != nil {
			return err
		}
	} else {
		if err := writer.WriteFile(dst, out); err != nil {
			return err
		}
		log.WithField("output", dst).Info("written")
	}

	if *previewPath != "" {
		return writePreview(conv, *previewPath)
	}
	return nil
}

func readSettings(path string) (*calibration.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := filters.DecodeText(data)
	if err != nil {
		return nil, err
	}
	return calibration.Parse(text)
}

func writePreview(conv *cutstudio.Converter, path string) error {
	prog, err := conv.Program()
	if err != nil {
		return err
	}
	img, err := preview.Render(prog, preview.DefaultOptions())
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

func runPipeline(ctx context.Context, args []string, log *logrus.Logger) error {
	fs, level := newFlagSet("run", log)
	mirror := fs.Bool("mirror", false, "mirror the output horizontally")
	withPreview := fs.Bool("preview", false, "write a PNG preview next to the output")
	noLaunch := fs.Bool("no-launch", false, "do not open the result in CutStudio")
	clean := fs.Bool("clean", false, "remove intermediate files")
	if err := parseFlags(fs, level, args, log); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(log.Out, "usage: cutstudio run [flags] drawing.svg")
		fs.PrintDefaults()
		return errUsage
	}

	inkscape, err := findBinary("CUTSTUDIO_INKSCAPE", inkscapeProgram())
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.Mirror = *mirror
	cfg.Preview = *withPreview
	cfg.Launch = !*noLaunch
	cfg.KeepIntermediates = !*clean

	var launcher pipeline.Launcher
	if cfg.Launch {
		bin, err := findBinary("CUTSTUDIO_BIN", cutStudioProgram())
		if err != nil {
			return err
		}
		launcher = pipeline.CutStudio{Bin: bin}
	}

	p := pipeline.New(pipeline.Inkscape{Bin: inkscape}, launcher, cfg, log)
	_, err = p.Run(ctx, fs.Arg(0))
	return err
}

// findBinary prefers the environment variable over a PATH search.
func findBinary(env, program string) (string, error) {
	if bin := os.Getenv(env); bin != "" {
		return bin, nil
	}
	bin, err := pipeline.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("%w (set %s)", err, env)
	}
	return bin, nil
}

func inkscapeProgram() string {
	if runtime.GOOS == "windows" {
		return `Inkscape\inkscape.exe`
	}
	return "inkscape"
}

func cutStudioProgram() string {
	if runtime.GOOS == "windows" {
		return `CutStudio\CutStudio.exe`
	}
	return "CutStudio"
}

func runMarker(args []string, stdout io.Writer, log *logrus.Logger) error {
	fs, level := newFlagSet("marker", log)
	machine := fs.String("machine", "gx_24_gs_24", "machine margin preset")
	page := fs.String("page", "A4", "page size preset")
	marks := fs.String("marks", string(calibration.FourMarks), "mark type (three, four)")
	if err := parseFlags(fs, level, args, log); err != nil {
		return err
	}

	opts, err := calibration.Preset(*machine, *page, calibration.MarkType(*marks))
	if err != nil {
		return err
	}
	layout, err := calibration.ComputeLayout(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, layout.Settings.String())
	for _, m := range layout.Marks {
		fmt.Fprintf(stdout, "%s %.3f %.3f\n", m.Name, m.Center.X, m.Center.Y)
	}
	return nil
}
