// Package contentstream tokenizes the drawing section of a cairo/Inkscape
// EPS export.
//
// The exporter writes one or more operations per line, operands first:
//
//	q 1 0 0 -1 0 841.889764 cm
//	10 20 m 40 20 l
//	10 20 30 40 re W n
//
// Parsing is line oriented. Comment and DSC lines (starting with %) are
// dropped, as are lines ending in the clip idiom "re W n" (or "re W* n"),
// since the cutter dialect has no clip regions. Everything else is split on
// whitespace into [Token] values that keep their source line number.
//
//	parser := contentstream.NewParser(data)
//	tokens := parser.Parse()
//
// Tokens are consumed through an [OperandStack]: numbers and unknown
// mnemonics are pushed, and a recognized operator takes its operands from
// the top of the stack.
package contentstream
