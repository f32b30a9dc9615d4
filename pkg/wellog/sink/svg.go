package sink

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"welltrack/pkg/wellog/band"
	"welltrack/pkg/wellog/layout"
	"welltrack/pkg/wellog/styles"
)

const (
	depthLabelGap  = 6.0  // gap between depth labels and the plot's left edge
	headerBaseline = 8.0  // header text baseline above the plot top
	axisLabelDrop  = 14.0 // axis labels this far below the plot bottom
	legendDrop     = 30.0 // legend swatches this far below the plot bottom
	legendGap      = 24.0 // horizontal gap between legend entries
	legendCharW    = 6.0  // estimated label advance per character
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle sets the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG assembles the layout into an SVG document. The output is
// deterministic: rendering the same layout twice yields identical bytes.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf)

	for _, b := range l.Bands {
		r.style.RenderBand(&buf, bandFor(b, l))
	}
	for _, g := range l.Gridlines {
		r.style.RenderGridline(&buf, styles.Gridline{
			X1: l.PlotLeft, X2: l.PlotRight, Y: g.Y,
			Label:  g.Label,
			LabelX: l.PlotLeft - depthLabelGap,
		})
	}

	renderFrame(&buf, &r, l)

	for _, c := range l.Curves {
		r.style.RenderCurve(&buf, curveFor(c))
	}

	renderText(&buf, &r, l)
	renderLegend(&buf, &r, l)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func bandFor(b band.Band, l layout.Layout) styles.Band {
	t := l.Tracks[layout.TrackLithology]
	return styles.Band{
		Lithology: b.Lithology,
		X:         t.Left, Y: b.Top,
		W: t.Width(), H: b.Height(),
		CX: (t.Left + t.Right) / 2, CY: (b.Top + b.Bottom) / 2,
		Color:     b.Color,
		ShowLabel: b.ShowLabel,
	}
}

func curveFor(c layout.Curve) styles.Curve {
	out := styles.Curve{Name: c.Name, Color: c.Color, Points: make([]styles.Point, len(c.Points))}
	for i, p := range c.Points {
		out.Points[i] = styles.Point{X: p.X, Y: p.Y}
	}
	return out
}

// renderFrame draws the two track dividers plus the outer plot border.
func renderFrame(buf *bytes.Buffer, r *svgRenderer, l layout.Layout) {
	for _, x := range []float64{l.PlotLeft, l.PlotRight} {
		r.style.RenderDivider(buf, styles.Divider{X: x, Top: l.PlotTop, Bottom: l.PlotBottom})
	}
	for _, x := range l.Dividers {
		r.style.RenderDivider(buf, styles.Divider{X: x, Top: l.PlotTop, Bottom: l.PlotBottom})
	}
}

// renderText draws the track headers and the numeric tracks' min/max labels.
func renderText(buf *bytes.Buffer, r *svgRenderer, l layout.Layout) {
	for _, t := range l.Tracks {
		r.style.RenderHeader(buf, styles.Header{
			Text: t.Name,
			CX:   (t.Left + t.Right) / 2,
			Y:    l.PlotTop - headerBaseline,
		})
		if t.MinLabel == "" && t.MaxLabel == "" {
			continue
		}
		r.style.RenderAxisLabel(buf, styles.AxisLabel{
			Text: t.MinLabel, X: t.Left, Y: l.PlotBottom + axisLabelDrop, Anchor: "start",
		})
		r.style.RenderAxisLabel(buf, styles.AxisLabel{
			Text: t.MaxLabel, X: t.Right, Y: l.PlotBottom + axisLabelDrop, Anchor: "end",
		})
	}
}

// renderLegend lays the legend entries out horizontally below the plot, in
// the assignment's first-seen order.
func renderLegend(buf *bytes.Buffer, r *svgRenderer, l layout.Layout) {
	x := l.PlotLeft
	y := l.PlotBottom + legendDrop
	for _, e := range l.Legend {
		r.style.RenderLegendEntry(buf, styles.LegendEntry{
			Label: e.Lithology,
			Color: e.Color,
			X:     x, Y: y,
		})
		x += legendCharW*float64(utf8.RuneCountInString(e.Lithology)) + legendGap
	}
}
