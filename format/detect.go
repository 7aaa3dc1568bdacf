// Package format provides input format detection for the converter.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// EPS indicates Encapsulated PostScript, plain or DOS binary.
	EPS
	// SVG indicates an SVG drawing that must be exported to EPS first.
	SVG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case EPS:
		return "EPS"
	case SVG:
		return "SVG"
	default:
		return "Unknown"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".eps", ".ps", ".epsf":
		return EPS
	case ".svg", ".svgz":
		return SVG
	default:
		return Unknown
	}
}

// magicSize is how much of a file DetectFromReader inspects.
const magicSize = 512

// DetectFromMagic checks leading bytes to determine format.
// This is more reliable than extension-based detection.
func DetectFromMagic(data []byte) Format {
	// DOS EPS binary header
	if len(data) >= 4 && data[0] == 0xC5 && data[1] == 0xD0 && data[2] == 0xD3 && data[3] == 0xC6 {
		return EPS
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) > magicSize {
		data = data[:magicSize]
	}

	if bytes.HasPrefix(data, []byte("%!PS")) {
		return EPS
	}

	if detectSVGMagic(data) {
		return SVG
	}

	return Unknown
}

// detectSVGMagic checks if the data looks like an SVG document.
func detectSVGMagic(data []byte) bool {
	lower := bytes.ToLower(data)
	if bytes.HasPrefix(lower, []byte("<svg")) {
		return true
	}
	// XML declaration, comments or doctype ahead of the root element
	if bytes.HasPrefix(lower, []byte("<?xml")) || bytes.HasPrefix(lower, []byte("<!--")) || bytes.HasPrefix(lower, []byte("<!doctype")) {
		return bytes.Contains(lower, []byte("<svg"))
	}
	return false
}

// DetectFromReader inspects the start of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, magicSize)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile combines content and extension detection. Content wins when
// it is conclusive.
func DetectFile(filename string, data []byte) Format {
	if f := DetectFromMagic(data); f != Unknown {
		return f
	}
	return Detect(filename)
}
