package pipeline

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Exporter converts drawings between formats.
type Exporter interface {
	// ExportPlainSVG writes src as plain SVG to dst.
	ExportPlainSVG(ctx context.Context, src, dst string) error
	// ExportEPS writes src as EPS to dst.
	ExportEPS(ctx context.Context, src, dst string) error
}

// Launcher opens a converted file in the cutter software.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Inkscape exports through the Inkscape command line.
type Inkscape struct {
	Bin string
}

// ExportPlainSVG implements Exporter.
func (ink Inkscape) ExportPlainSVG(ctx context.Context, src, dst string) error {
	return ink.run(ctx, "plain-SVG export", "-z", src, "-T", "--export-plain-svg="+dst)
}

// ExportEPS implements Exporter.
func (ink Inkscape) ExportEPS(ctx context.Context, src, dst string) error {
	return ink.run(ctx, "EPS export", "-z", src, "-T", "--export-eps="+dst)
}

func (ink Inkscape) run(ctx context.Context, what string, args ...string) error {
	cmd := exec.CommandContext(ctx, ink.Bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("inkscape %s failed: %w", what, err)
		}
		return fmt.Errorf("inkscape %s failed: %w: %s", what, err, msg)
	}
	return nil
}

// CutStudio starts CutStudio with a file to import. The process is not
// waited for.
type CutStudio struct {
	Bin string
}

// Launch implements Launcher.
func (cs CutStudio) Launch(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(cs.Bin, "/import", path)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting CutStudio: %w", err)
	}
	return cmd.Process.Release()
}
