// Package writer assembles the EPS document imported by Roland CutStudio.
//
// CutStudio only understands a crippled subset of PostScript, so the output
// is a fixed template with two slots: an optional cropmark header line in
// the comment section and the resolved drawing instructions in the body.
// The template text is a compatibility contract and must not be edited.
//
//	body := writer.FormatProgram(program)
//	data := writer.Assemble(body, calibration.FormatHeader(settings))
//	err := writer.WriteFile("out.cutstudio.eps", data)
package writer
