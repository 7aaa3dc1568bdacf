package calibration

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const knownMarker = `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":210,"pageH":297,"dx":20,"dy":25,"W":170,"H":120}`

var knownSettings = Settings{Version: 1, PageW: 210, PageH: 297, DX: 20, DY: 25, W: 170, H: 120}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", knownMarker},
		{"entity escaped", strings.ReplaceAll(knownMarker, `"`, "&quot;")},
		{"numeric entity", strings.ReplaceAll(knownMarker, `"`, "&#34;")},
		{"inside svg text", `<text id="cropmark_settings"><tspan>` + strings.ReplaceAll(knownMarker, `"`, "&quot;") + `</tspan></text>`},
		{"editor spacing", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1, "pageW":210.0, "pageH":297.0, "dx":20.0, "dy":25.0, "W":170.0, "H":120.0}`},
		{"extra fields", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":210,"pageH":297,"dx":20,"dy":25,"W":170,"H":120,"machine":"gx_24"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if s == nil {
				t.Fatal("expected settings, got nil")
			}
			if *s != knownSettings {
				t.Errorf("Parse() = %+v, want %+v", *s, knownSettings)
			}
		})
	}
}

func TestParseAbsent(t *testing.T) {
	s, err := Parse("%!PS-Adobe-3.0\n0 0 m\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil settings, got %+v", s)
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	text := strings.Replace(knownMarker, `"version":1`, `"version":2`, 1)

	_, err := Parse(text)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}

	var verErr *UnsupportedVersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("expected *UnsupportedVersionError, got %T", err)
	}
	if verErr.Version != 2 {
		t.Errorf("expected version 2, got %v", verErr.Version)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing equals", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS {"version":1}`},
		{"unterminated", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":210`},
		{"missing field", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":210,"pageH":297,"dx":20,"dy":25,"W":170}`},
		{"missing version", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"pageW":210,"pageH":297,"dx":20,"dy":25,"W":170,"H":120}`},
		{"not json", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={version:1}`},
		{"string value", `INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":"wide","pageH":297,"dx":20,"dy":25,"W":170,"H":120}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestFormatMarkerRoundTrip(t *testing.T) {
	text := FormatMarker(knownSettings)
	if text != knownMarker {
		t.Errorf("FormatMarker() = %q, want %q", text, knownMarker)
	}

	s := Settings{PageW: 297, PageH: 420, DX: 25.5, DY: 30.25, W: 246, H: 323.75}
	parsed, err := Parse("junk " + s.String() + " junk")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s.Version = SupportedVersion
	if *parsed != s {
		t.Errorf("round trip = %+v, want %+v", *parsed, s)
	}
}

func TestOffset(t *testing.T) {
	s := Settings{DX: 25.4, DY: 50.8}
	off := s.Offset()
	if math.Abs(off.X+72) > 1e-9 || math.Abs(off.Y+144) > 1e-9 {
		t.Errorf("Offset() = %v, want (-72, -144)", off)
	}
}
