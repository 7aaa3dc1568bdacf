package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/cutstudio/calibration"
)

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	return log, &buf
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertToStdout(t *testing.T) {
	input := writeInput(t, "in.eps", "%!PS-Adobe-3.0\n5 7 m\n")
	log, _ := testLogger()
	var stdout bytes.Buffer

	if err := run(context.Background(), []string{"convert", "-mirror", "-o", "-", input}, &stdout, log); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "\n-5 7 m\n") {
		t.Errorf("expected mirrored moveto in output:\n%s", stdout.String())
	}
}

func TestConvertDefaultOutput(t *testing.T) {
	input := writeInput(t, "in.eps", "%!PS-Adobe-3.0\n0 0 m\n10 10 l\n")
	log, _ := testLogger()

	previewPath := filepath.Join(filepath.Dir(input), "in.png")
	if err := run(context.Background(), []string{"convert", "-preview", previewPath, input}, &bytes.Buffer{}, log); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(input + ".cutstudio.eps"); err != nil {
		t.Errorf("output not written: %v", err)
	}
	if _, err := os.Stat(previewPath); err != nil {
		t.Errorf("preview not written: %v", err)
	}
}

func TestConvertCalibrationFrom(t *testing.T) {
	s := calibration.Settings{Version: 1, PageW: 210, PageH: 297, DX: 0, DY: 0, W: 170, H: 120}
	svg := writeInput(t, "drawing.svg", "<svg><desc>"+calibration.FormatMarker(s)+"</desc></svg>")
	input := writeInput(t, "in.eps", "%!PS-Adobe-3.0\n0 0 m\n")
	log, _ := testLogger()
	var stdout bytes.Buffer

	if err := run(context.Background(), []string{"convert", "-calibration", svg, "-o", "-", input}, &stdout, log); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), calibration.FormatHeader(&s)) {
		t.Error("expected cropmark header")
	}

	err := run(context.Background(), []string{"convert", "-mirror", "-calibration", svg, "-o", "-", input}, &bytes.Buffer{}, log)
	if err == nil {
		t.Error("expected conflict error for mirror with calibration")
	}
}

func TestConvertWarningsLogged(t *testing.T) {
	input := writeInput(t, "in.eps", "%!PS-Adobe-3.0\n0 0 m\n1 w\n")
	log, logs := testLogger()

	if err := run(context.Background(), []string{"convert", "-o", "-", input}, &bytes.Buffer{}, log); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(logs.String(), "unsupported operator") {
		t.Errorf("expected warning in log output:\n%s", logs.String())
	}
}

func TestMarker(t *testing.T) {
	log, _ := testLogger()
	var stdout bytes.Buffer

	if err := run(context.Background(), []string{"marker", "-page", "A4", "-marks", "three"}, &stdout, log); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), stdout.String())
	}

	s, err := calibration.Parse(lines[0])
	if err != nil || s == nil {
		t.Fatalf("first line is not a marker: %q (%v)", lines[0], err)
	}
	if s.DX != 20 || s.DY != 25 {
		t.Errorf("offset = (%v, %v), want (20, 25)", s.DX, s.DY)
	}
	if lines[1] != "Bottom Left Cropmark 20.000 25.000" {
		t.Errorf("first mark = %q", lines[1])
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"convert without input", []string{"convert"}},
		{"bad flag", []string{"convert", "-nope", "x.eps"}},
		{"run without input", []string{"run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := testLogger()
			err := run(context.Background(), tt.args, &bytes.Buffer{}, log)
			if !errors.Is(err, errUsage) {
				t.Errorf("expected usage error, got %v", err)
			}
		})
	}
}

func TestMarkerUnknownPreset(t *testing.T) {
	log, _ := testLogger()
	if err := run(context.Background(), []string{"marker", "-machine", "nope"}, &bytes.Buffer{}, log); err == nil {
		t.Error("expected error for unknown machine")
	}
}

func TestFindBinaryFromEnv(t *testing.T) {
	t.Setenv("CUTSTUDIO_TEST_BIN", "/opt/tool")
	got, err := findBinary("CUTSTUDIO_TEST_BIN", "definitely-not-installed")
	if err != nil || got != "/opt/tool" {
		t.Errorf("findBinary = %q, %v", got, err)
	}

	t.Setenv("CUTSTUDIO_TEST_BIN", "")
	if _, err := findBinary("CUTSTUDIO_TEST_BIN", "definitely-not-installed"); err == nil {
		t.Error("expected error when binary is missing")
	}
}
