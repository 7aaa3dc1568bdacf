// Package calibration reads and writes the cropmark settings that let the
// cutter align a design with printed registration marks.
//
// The settings travel inside the drawing as a text object:
//
//	INKSCAPE_CUTSTUDIO_CROPMARK_SETTINGS={"version":1,"pageW":210,"pageH":297,"dx":20,"dy":25,"W":170,"H":120}
//
// All lengths are millimetres. dx and dy locate the reference mark from the
// lower-left page corner, W and H are the centre-to-centre spacing of the
// marks. Editors often store the text entity-escaped (&quot;), which
// [Parse] accepts.
//
// [FormatHeader] turns settings into the cropmark line the cutter software
// reads from the output header, and [ComputeLayout] derives settings for a
// page and machine preset.
package calibration
