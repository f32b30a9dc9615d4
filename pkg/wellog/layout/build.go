package layout

import (
	"fmt"
	"math"

	"welltrack/pkg/wellog/band"
	"welltrack/pkg/wellog/measure"
	"welltrack/pkg/wellog/scale"
)

// Default frame dimensions and tick count.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 1000.0
	DefaultTicks  = 10
)

// Fixed margins around the plot area. Left holds depth labels, top holds
// track headers, bottom holds the legend strip.
const (
	marginLeft   = 60.0
	marginRight  = 12.0
	marginTop    = 28.0
	marginBottom = 56.0
)

// trackInsetFrac is the horizontal padding inside each numeric track,
// expressed as a fraction of the track width. It keeps curve markers off the
// track boundaries.
const trackInsetFrac = 0.10

// Curve line colors, distinct from the lithology palette hues.
const (
	gammaColor    = "#332288"
	porosityColor = "#CC3311"
)

// Option configures layout building.
type Option func(*builder)

type builder struct {
	width        float64
	height       float64
	ticks        int
	gammaName    string
	porosityName string
}

// WithSize sets the frame width and height in pixel units.
func WithSize(width, height float64) Option {
	return func(b *builder) { b.width = width; b.height = height }
}

// WithTicks sets the number of depth tick intervals N; the grid draws N+1
// evenly spaced gridlines across the depth range.
func WithTicks(n int) Option {
	return func(b *builder) { b.ticks = n }
}

// WithCurveNames overrides the header labels of the two numeric tracks.
func WithCurveNames(gamma, porosity string) Option {
	return func(b *builder) { b.gammaName = gamma; b.porosityName = porosity }
}

// Build composites a normalized dataset into a Layout: depth grid, track
// dividers, headers and axis labels, lithology bands, curve polylines, and
// the legend. It is a pure single-pass transform; rebuilding from the same
// dataset yields an identical layout.
func Build(ds measure.Dataset, opts ...Option) Layout {
	b := builder{
		width:        DefaultWidth,
		height:       DefaultHeight,
		ticks:        DefaultTicks,
		gammaName:    "Gamma Ray",
		porosityName: "Porosity",
	}
	for _, opt := range opts {
		opt(&b)
	}

	l := Layout{
		Width:      b.width,
		Height:     b.height,
		PlotTop:    marginTop,
		PlotBottom: b.height - marginBottom,
		PlotLeft:   marginLeft,
		PlotRight:  b.width - marginRight,
	}

	depthScale := scale.NewLinear(
		ds.DepthRange.Min, ds.DepthRange.Max,
		l.PlotTop, l.PlotHeight(),
	)

	trackWidth := (l.PlotRight - l.PlotLeft) / 3
	for i := range l.Tracks {
		l.Tracks[i].Left = l.PlotLeft + float64(i)*trackWidth
		l.Tracks[i].Right = l.Tracks[i].Left + trackWidth
	}
	l.Tracks[TrackLithology].Name = "Lithology"
	l.Tracks[TrackGammaRay].Name = b.gammaName
	l.Tracks[TrackGammaRay].MinLabel = formatValue(ds.GammaRange.Min)
	l.Tracks[TrackGammaRay].MaxLabel = formatValue(ds.GammaRange.Max)
	l.Tracks[TrackPorosity].Name = b.porosityName
	l.Tracks[TrackPorosity].MinLabel = formatValue(ds.PorosityRange.Min)
	l.Tracks[TrackPorosity].MaxLabel = formatValue(ds.PorosityRange.Max)

	// Two dividers separate the three equal-width tracks.
	l.Dividers = []float64{
		l.Tracks[TrackGammaRay].Left,
		l.Tracks[TrackPorosity].Left,
	}

	l.Gridlines = buildGridlines(ds.DepthRange, depthScale, b.ticks)

	colors := band.NewAssignment(ds.Lithologies())
	l.Bands = band.Build(ds, depthScale, colors)
	l.Legend = colors.Entries()

	l.Curves[0] = buildCurve(b.gammaName, gammaColor, ds, depthScale,
		valueScale(ds.GammaRange, l.Tracks[TrackGammaRay]),
		func(m measure.Measurement) float64 { return m.GammaRay })
	l.Curves[1] = buildCurve(b.porosityName, porosityColor, ds, depthScale,
		valueScale(ds.PorosityRange, l.Tracks[TrackPorosity]),
		func(m measure.Measurement) float64 { return m.Porosity })

	return l
}

// valueScale maps a curve's value range into its track, inset on both sides
// so markers do not touch the track boundaries.
func valueScale(r measure.Range, t Track) scale.Linear {
	inset := t.Width() * trackInsetFrac
	return scale.NewLinear(r.Min, r.Max, t.Left+inset, t.Width()-2*inset)
}

// buildGridlines places n+1 evenly spaced depth ticks across the depth range.
func buildGridlines(depths measure.Range, depthScale scale.Linear, n int) []Gridline {
	if n < 1 {
		n = 1
	}
	step := depths.Span() / float64(n)

	lines := make([]Gridline, 0, n+1)
	for i := 0; i <= n; i++ {
		d := depths.Min + float64(i)*step
		lines = append(lines, Gridline{
			Y:     depthScale.Map(d),
			Depth: d,
			Label: formatValue(d),
		})
	}
	return lines
}

// buildCurve maps every measurement to a pixel point, connected in sorted
// depth order.
func buildCurve(name, color string, ds measure.Dataset, depth, value scale.Linear, pick func(measure.Measurement) float64) Curve {
	c := Curve{
		Name:   name,
		Color:  color,
		Points: make([]Point, 0, len(ds.Records)),
	}
	for _, m := range ds.Records {
		c.Points = append(c.Points, Point{
			X: value.Map(pick(m)),
			Y: depth.Map(m.Depth),
		})
	}
	return c
}

// formatValue renders an axis or tick label. Values are rounded to two
// decimals and trailing zeros dropped, so tick depths like 1233.3333 stay
// legible.
func formatValue(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
