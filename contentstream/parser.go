package contentstream

import (
	"math"
	"strconv"
	"strings"
)

// Token is a single whitespace-separated word of the source.
type Token struct {
	Text string // The raw token (e.g., "10.5", "cm", "q")
	Line int    // 1-based source line
}

// Number parses the token as a finite decimal number. Hex floats,
// infinities and NaN are not numbers in PostScript.
func (t Token) Number() (float64, bool) {
	if strings.ContainsAny(t.Text, "xX") {
		return 0, false
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool {
	_, ok := t.Number()
	return ok
}

// clipSuffixes are the trailing tokens of a clip rectangle definition.
var clipSuffixes = [][]string{
	{"re", "W", "n"},
	{"re", "W*", "n"},
}

// Parser splits EPS drawing code into tokens.
type Parser struct {
	data string
}

// NewParser creates a parser for the given source text.
func NewParser(data string) *Parser {
	return &Parser{data: data}
}

// Parse returns every token of the source in order, leaving out comment
// lines and clip rectangle lines.
func (p *Parser) Parse() []Token {
	tokens := make([]Token, 0)

	for i, line := range strings.Split(p.data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isComment(line) {
			continue
		}

		fields := strings.Fields(line)
		if isClip(fields) {
			continue
		}

		for _, f := range fields {
			tokens = append(tokens, Token{Text: f, Line: i + 1})
		}
	}

	return tokens
}

// isComment reports whether a trimmed line is a comment or DSC line.
func isComment(line string) bool {
	return strings.HasPrefix(line, "%")
}

// isClip reports whether the line ends with a clip rectangle idiom.
func isClip(fields []string) bool {
	for _, suffix := range clipSuffixes {
		if hasSuffix(fields, suffix) {
			return true
		}
	}
	return false
}

func hasSuffix(fields, suffix []string) bool {
	if len(fields) < len(suffix) {
		return false
	}
	tail := fields[len(fields)-len(suffix):]
	for i := range suffix {
		if tail[i] != suffix[i] {
			return false
		}
	}
	return true
}
