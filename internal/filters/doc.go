// Package filters normalizes source documents before tokenizing.
//
// # DOS EPS Binary Header
//
// Some exporters wrap the PostScript section of an EPS file in a binary
// header (magic C5 D0 D3 C6) followed by a TIFF or WMF preview:
//
//	ps, err := filters.ExtractPostScript(data)
//
// Plain EPS data is returned unchanged.
//
// # Text Decoding
//
// EPS exports are nominally ASCII, but text objects can carry Latin-1 or
// Windows-1252 bytes:
//
//	text, err := filters.DecodeText(data)
//
// A UTF-8 byte order mark is stripped, valid UTF-8 passes through, and
// anything else is decoded as Windows-1252.
package filters
