// Package pipeline drives the full export: an Inkscape drawing is reduced
// to plain SVG, exported to EPS, converted for CutStudio and optionally
// handed to CutStudio itself.
//
// External programs are reached through the Exporter and Launcher
// interfaces so the pipeline can run without them in tests.
package pipeline
