package writer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tsawler/cutstudio/model"
)

// prologHead runs up to the header slot.
const prologHead = `
%!PS-Adobe-3.0 EPSF-3.0
%%LanguageLevel: 2
%%BoundingBox -10000 -10000 10000 10000
`

// prologTail runs from the header slot to the body slot. The procedure
// definitions come from cairo's EPS output.
const prologTail = `%%EndComments
%%BeginSetup
%%EndSetup
%%BeginProlog
% This code (until EndProlog) is from an inkscape-exported EPS, copyright unknown, see cairo-library
save
50 dict begin
/q { gsave } bind def
/Q { grestore } bind def
/cm { 6 array astore concat } bind def
/w { setlinewidth } bind def
/J { setlinecap } bind def
/j { setlinejoin } bind def
/M { setmiterlimit } bind def
/d { setdash } bind def
/m { moveto } bind def
/l { lineto } bind def
/c { curveto } bind def
/h { closepath } bind def
/re { exch dup neg 3 1 roll 5 3 roll moveto 0 rlineto
      0 exch rlineto 0 rlineto closepath } bind def
/S { stroke } bind def
/f { fill } bind def
/f* { eofill } bind def
/n { newpath } bind def
/W { clip } bind def
/W* { eoclip } bind def
/BT { } bind def
/ET { } bind def
/pdfmark where { pop globaldict /?pdfmark /exec load put }
    { globaldict begin /?pdfmark /pop load def /pdfmark
    /cleartomark load def end } ifelse
/BDC { mark 3 1 roll /BDC pdfmark } bind def
/EMC { mark /EMC pdfmark } bind def
/cairo_store_point { /cairo_point_y exch def /cairo_point_x exch def } def
/Tj { show currentpoint cairo_store_point } bind def
/TJ {
  {
    dup
    type /stringtype eq
    { show } { -0.001 mul 0 cairo_font_matrix dtransform rmoveto } ifelse
  } forall
  currentpoint cairo_store_point
} bind def
/cairo_selectfont { cairo_font_matrix aload pop pop pop 0 0 6 array astore
    cairo_font exch selectfont cairo_point_x cairo_point_y moveto } bind def
/Tf { pop /cairo_font exch def /cairo_font_matrix where
      { pop cairo_selectfont } if } bind def
/Td { matrix translate cairo_font_matrix matrix concatmatrix dup
      /cairo_font_matrix exch def dup 4 get exch 5 get cairo_store_point
      /cairo_font where { pop cairo_selectfont } if } bind def
/Tm { 2 copy 8 2 roll 6 array astore /cairo_font_matrix exch def
      cairo_store_point /cairo_font where { pop cairo_selectfont } if } bind def
/g { setgray } bind def
/rg { setrgbcolor } bind def
/d1 { setcachedevice } bind def
%%EndProlog
%%Page: 1 1
%%BeginPageSetup
%%PageBoundingBox: -10000 -10000 10000 10000
%%EndPageSetup
% This is a severely crippled fucked-up pseudo-postscript for importing in Roland CutStudio
% Do not even try to open it with something else

% Inkscape header, not used by cutstudio
% Start
q -10000 -10000 10000 10000 rectclip q

0 g
0.286645 w
0 J
0 j
[] 0.0 d
4 M q
% Cutstudio Start
`

// Epilog closes the body. The trailing "0 0 m" keeps CutStudio from
// dropping the last real instruction.
const Epilog = `
% Cutstudio End

%this is necessary for CutStudio so that the last line isnt skipped:
0 0 m

% Inkscape footer
S Q
Q Q
showpage
%%Trailer
end restore
%%EOF
`

// Prolog returns the template text before the body with header placed in
// its slot. An empty header leaves the slot empty.
func Prolog(header string) string {
	if header == "" {
		return prologHead + prologTail
	}
	return prologHead + strings.TrimRight(header, "\n") + "\n" + prologTail
}

// Assemble places the header line and the instruction body into the
// template.
func Assemble(body, header string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(prologHead) + len(header) + len(prologTail) + len(body) + len(Epilog) + 1)

	buf.WriteString(Prolog(header))
	buf.WriteString(body)
	buf.WriteString(Epilog)

	return buf.Bytes()
}

// FormatProgram writes one instruction per line, operands first.
func FormatProgram(p model.Program) string {
	var sb strings.Builder
	for _, in := range p {
		FormatInstruction(&sb, in)
	}
	return sb.String()
}

// FormatInstruction appends a single instruction line to sb.
func FormatInstruction(sb *strings.Builder, in model.Instruction) {
	for _, pt := range in.Points {
		sb.WriteString(FormatNumber(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(pt.Y))
		sb.WriteByte(' ')
	}
	sb.WriteString(in.Op.Operator())
	sb.WriteByte('\n')
}

// significantDigits limits output precision so arithmetic noise from
// matrix products does not reach the cutter.
const significantDigits = 12

// FormatNumber rounds v to twelve significant digits and writes it without
// an exponent. Negative zero is written as 0.
func FormatNumber(v float64) string {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', significantDigits, 64), 64)
	if err == nil {
		v = rounded
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
