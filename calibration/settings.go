package calibration

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/cutstudio/model"
)

// Marker prefixes the settings object in a document.
const Marker = "INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS"

// SupportedVersion is the only settings schema version understood.
const SupportedVersion = 1

var (
	// ErrUnsupportedVersion is matched by *UnsupportedVersionError.
	ErrUnsupportedVersion = errors.New("calibration: unsupported settings version")
	// ErrInvalidSettings is returned when the marker is present but its
	// object cannot be read.
	ErrInvalidSettings = errors.New("calibration: invalid settings")
)

// UnsupportedVersionError carries the version found in the document.
type UnsupportedVersionError struct {
	Version float64
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("calibration: unsupported settings version %v (want %d)", e.Version, SupportedVersion)
}

// Is makes the error match ErrUnsupportedVersion.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// Settings describes the page and cropmark geometry, in millimetres.
type Settings struct {
	Version float64 `json:"version"`
	PageW   float64 `json:"pageW"`
	PageH   float64 `json:"pageH"`
	DX      float64 `json:"dx"`
	DY      float64 `json:"dy"`
	W       float64 `json:"W"`
	H       float64 `json:"H"`
}

// rawSettings detects missing fields.
type rawSettings struct {
	Version *float64 `json:"version"`
	PageW   *float64 `json:"pageW"`
	PageH   *float64 `json:"pageH"`
	DX      *float64 `json:"dx"`
	DY      *float64 `json:"dy"`
	W       *float64 `json:"W"`
	H       *float64 `json:"H"`
}

// Parse finds the settings marker in text. It returns nil, nil when the
// document carries no marker.
func Parse(text string) (*Settings, error) {
	idx := strings.Index(text, Marker)
	if idx < 0 {
		return nil, nil
	}

	rest := strings.TrimLeft(text[idx+len(Marker):], " \t")
	if !strings.HasPrefix(rest, "=") {
		return nil, fmt.Errorf("%w: expected '=' after %s", ErrInvalidSettings, Marker)
	}
	rest = strings.TrimLeft(rest[1:], " \t")

	obj, ok := objectLiteral(rest)
	if !ok {
		return nil, fmt.Errorf("%w: unterminated settings object", ErrInvalidSettings)
	}
	obj = html.UnescapeString(obj)

	var raw rawSettings
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if raw.Version == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidSettings, "version")
	}
	if *raw.Version != SupportedVersion {
		return nil, &UnsupportedVersionError{Version: *raw.Version}
	}

	fields := []struct {
		name string
		val  *float64
	}{
		{"pageW", raw.PageW},
		{"pageH", raw.PageH},
		{"dx", raw.DX},
		{"dy", raw.DY},
		{"W", raw.W},
		{"H", raw.H},
	}
	for _, f := range fields {
		if f.val == nil {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidSettings, f.name)
		}
	}

	return &Settings{
		Version: *raw.Version,
		PageW:   *raw.PageW,
		PageH:   *raw.PageH,
		DX:      *raw.DX,
		DY:      *raw.DY,
		W:       *raw.W,
		H:       *raw.H,
	}, nil
}

// objectLiteral returns the brace-balanced object at the start of s.
func objectLiteral(s string) (string, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// String returns the marker text that embeds s in a document.
func (s Settings) String() string {
	return FormatMarker(s)
}

// FormatMarker serializes settings as marker text. The version is always
// written as SupportedVersion.
func FormatMarker(s Settings) string {
	s.Version = SupportedVersion
	data, err := json.Marshal(s)
	if err != nil {
		// only float fields, which marshal unless NaN or Inf
		return Marker + "={}"
	}
	return Marker + "=" + string(data)
}

// Offset returns the translation, in points, that moves the reference mark
// to the origin.
func (s *Settings) Offset() model.Point {
	return model.Point{
		X: -MillimetresToPoints(s.DX),
		Y: -MillimetresToPoints(s.DY),
	}
}
