package calibration

import (
	"fmt"
)

const (
	// HeaderTag starts the cropmark line in the output header.
	HeaderTag = "%%CutStudioCropMarks:"

	// MarkRadiusMM is the radius of a printed registration mark.
	MarkRadiusMM = 5.0

	// deviceConstants are fixed values the cutter expects after the spacing.
	deviceConstants = "56.692913 56.692913"

	// deviceTrailer closes the cropmark line.
	deviceTrailer = "4"

	pointsPerInch = 72.0
	mmPerInch     = 25.4
)

// MillimetresToPoints converts millimetres to PostScript points.
func MillimetresToPoints(mm float64) float64 {
	return mm * pointsPerInch / mmPerInch
}

// FormatHeader returns the cropmark header line for s, without a trailing
// newline, or "" when s is nil.
func FormatHeader(s *Settings) string {
	if s == nil {
		return ""
	}

	r := MillimetresToPoints(MarkRadiusMM)
	return fmt.Sprintf("%s %.6f %.6f %.6f %.6f %s %s",
		HeaderTag,
		r, r,
		MillimetresToPoints(s.W),
		MillimetresToPoints(s.H),
		deviceConstants,
		deviceTrailer,
	)
}
