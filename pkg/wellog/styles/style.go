// Package styles defines the visual appearance for well-log track rendering.
package styles

import "bytes"

// Style defines the drawing primitives for the SVG sink.
// Implementations control how bands, gridlines, curves, and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBand writes the SVG for a single lithology band.
	RenderBand(buf *bytes.Buffer, b Band)
	// RenderGridline writes the SVG for one horizontal depth tick and its label.
	RenderGridline(buf *bytes.Buffer, g Gridline)
	// RenderDivider writes the SVG for a vertical track divider.
	RenderDivider(buf *bytes.Buffer, d Divider)
	// RenderCurve writes the SVG for one curve polyline and its point markers.
	RenderCurve(buf *bytes.Buffer, c Curve)
	// RenderHeader writes the SVG for a track header label.
	RenderHeader(buf *bytes.Buffer, h Header)
	// RenderAxisLabel writes the SVG for a numeric track's min/max label.
	RenderAxisLabel(buf *bytes.Buffer, a AxisLabel)
	// RenderLegendEntry writes the SVG for one legend swatch and its label.
	RenderLegendEntry(buf *bytes.Buffer, e LegendEntry)
}

// Band contains all data needed to render a single lithology band.
type Band struct {
	Lithology  string  // Display text
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for the label)
	Color      string  // Fill color
	ShowLabel  bool    // Whether the band is tall enough for text
}

// Gridline contains positioning data for one horizontal depth tick.
type Gridline struct {
	X1, X2, Y float64 // Line extent
	Label     string  // Depth label text
	LabelX    float64 // Right edge of the label in the left margin
}

// Divider is a vertical line separating two tracks.
type Divider struct {
	X, Top, Bottom float64
}

// Point is one polyline vertex.
type Point struct {
	X, Y float64
}

// Curve contains the polyline and marker data for one numeric track.
type Curve struct {
	Name   string
	Color  string
	Points []Point
}

// Header is a track title centered above the track.
type Header struct {
	Text  string
	CX, Y float64
}

// AxisLabel is a min or max value label at a numeric track's extreme.
type AxisLabel struct {
	Text   string
	X, Y   float64
	Anchor string
}

// LegendEntry is one swatch plus label in the legend strip.
type LegendEntry struct {
	Label string
	Color string
	X, Y  float64
}
