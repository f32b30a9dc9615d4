package styles

import (
	"bytes"
	"fmt"
)

const (
	simpleFontFamily  = "Helvetica, Arial, sans-serif"
	simpleFontSize    = 11.0
	simpleMarkerR     = 2.5
	simpleGridColor   = "#D0D0D0"
	simpleFrameColor  = "#555555"
	simpleLabelColor  = "#333333"
	simpleBandStroke  = "#FFFFFF"
	simpleSwatchSize  = 10.0
	simpleCurveStroke = 1.5
)

// Simple renders plain flat-color tracks: solid bands, thin gridlines,
// unadorned polylines. It is the default style.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderBand draws the band rectangle and, when the band is tall enough,
// the lithology name centered inside it. Long names are truncated to the
// track width.
func (Simple) RenderBand(buf *bytes.Buffer, b Band) {
	fmt.Fprintf(buf,
		`  <rect class="band" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
		b.X, b.Y, b.W, b.H, b.Color, simpleBandStroke)

	if !b.ShowLabel {
		return
	}
	label := TruncateLabel(b.Lithology, b.W-4, simpleFontSize)
	fmt.Fprintf(buf,
		`  <text class="band-label" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		b.CX, b.CY, simpleFontFamily, simpleFontSize, simpleLabelColor, EscapeXML(label))
}

// RenderGridline draws the horizontal tick line and its depth label in the
// left margin.
func (Simple) RenderGridline(buf *bytes.Buffer, g Gridline) {
	fmt.Fprintf(buf,
		`  <line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5"/>`+"\n",
		g.X1, g.Y, g.X2, g.Y, simpleGridColor)
	fmt.Fprintf(buf,
		`  <text class="depth-label" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
		g.LabelX, g.Y, simpleFontFamily, simpleFontSize-1, simpleLabelColor, EscapeXML(g.Label))
}

// RenderDivider draws a vertical track separator.
func (Simple) RenderDivider(buf *bytes.Buffer, d Divider) {
	fmt.Fprintf(buf,
		`  <line class="divider" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
		d.X, d.Top, d.X, d.Bottom, simpleFrameColor)
}

// RenderCurve draws the connected polyline followed by one circular marker
// per point.
func (Simple) RenderCurve(buf *bytes.Buffer, c Curve) {
	if len(c.Points) == 0 {
		return
	}

	var pts bytes.Buffer
	for i, p := range c.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(buf,
		`  <polyline class="curve" points="%s" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
		pts.String(), c.Color, simpleCurveStroke)

	for _, p := range c.Points {
		fmt.Fprintf(buf,
			`  <circle class="marker" cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
			p.X, p.Y, simpleMarkerR, c.Color)
	}
}

// RenderHeader draws a track title centered on the track.
func (Simple) RenderHeader(buf *bytes.Buffer, h Header) {
	fmt.Fprintf(buf,
		`  <text class="header" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
		h.CX, h.Y, simpleFontFamily, simpleFontSize+1, simpleLabelColor, EscapeXML(h.Text))
}

// RenderAxisLabel draws a min/max value label at a track extreme.
func (Simple) RenderAxisLabel(buf *bytes.Buffer, a AxisLabel) {
	anchor := a.Anchor
	if anchor == "" {
		anchor = "middle"
	}
	fmt.Fprintf(buf,
		`  <text class="axis-label" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s">%s</text>`+"\n",
		a.X, a.Y, simpleFontFamily, simpleFontSize-2, simpleLabelColor, anchor, EscapeXML(a.Text))
}

// RenderLegendEntry draws one color swatch and its lithology name.
func (Simple) RenderLegendEntry(buf *bytes.Buffer, e LegendEntry) {
	fmt.Fprintf(buf,
		`  <rect class="legend-swatch" x="%.2f" y="%.2f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
		e.X, e.Y, simpleSwatchSize, simpleSwatchSize, e.Color, simpleFrameColor)
	fmt.Fprintf(buf,
		`  <text class="legend-label" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" dominant-baseline="middle">%s</text>`+"\n",
		e.X+simpleSwatchSize+4, e.Y+simpleSwatchSize/2, simpleFontFamily, simpleFontSize-1, simpleLabelColor, EscapeXML(e.Label))
}

// Ensure Simple implements Style.
var _ Style = Simple{}
