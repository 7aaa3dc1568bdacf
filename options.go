package cutstudio

import "github.com/tsawler/cutstudio/calibration"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	mirror bool

	// Explicit calibration wins over detection
	settings       *calibration.Settings
	detectSettings bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		mirror:         false,
		settings:       nil, // nil means no calibration
		detectSettings: false,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		mirror:         o.mirror,
		detectSettings: o.detectSettings,
	}

	if o.settings != nil {
		s := *o.settings
		newOpts.settings = &s
	}

	return newOpts
}
