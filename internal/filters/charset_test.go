package filters

import "testing"

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("0 0 m"), "0 0 m"},
		{"utf8 bom", []byte("\xEF\xBB\xBF0 0 m"), "0 0 m"},
		{"utf8", []byte("% Schriftzug Größe"), "% Schriftzug Größe"},
		{"windows-1252", []byte("% Gr\xF6\xDFe \x80"), "% Größe €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.data)
			if err != nil {
				t.Fatalf("DecodeText failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
