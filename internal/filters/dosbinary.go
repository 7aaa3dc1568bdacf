package filters

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// dosEPSMagic starts a DOS EPS binary file.
var dosEPSMagic = []byte{0xC5, 0xD0, 0xD3, 0xC6}

// dosEPSHeaderSize is the fixed size of the binary header.
const dosEPSHeaderSize = 30

// ErrTruncatedHeader is returned when a DOS EPS header points past the
// end of the data.
var ErrTruncatedHeader = errors.New("filters: truncated DOS EPS header")

// IsDOSEPS reports whether data starts with the DOS EPS binary magic.
func IsDOSEPS(data []byte) bool {
	if len(data) < len(dosEPSMagic) {
		return false
	}
	for i, b := range dosEPSMagic {
		if data[i] != b {
			return false
		}
	}
	return true
}

// ExtractPostScript returns the PostScript section of a DOS EPS binary
// file, or data itself when there is no binary header.
func ExtractPostScript(data []byte) ([]byte, error) {
	if !IsDOSEPS(data) {
		return data, nil
	}
	if len(data) < dosEPSHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}

	// Header: magic, PS offset, PS length, WMF offset/length,
	// TIFF offset/length, checksum. All little-endian.
	offset := binary.LittleEndian.Uint32(data[4:8])
	length := binary.LittleEndian.Uint32(data[8:12])

	end := uint64(offset) + uint64(length)
	if offset < dosEPSHeaderSize || end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: section %d+%d exceeds %d bytes", ErrTruncatedHeader, offset, length, len(data))
	}

	return data[offset:end], nil
}
