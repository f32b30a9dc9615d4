package layout

import "welltrack/pkg/wellog/band"

// Track indices within a layout. Tracks are laid out left to right.
const (
	TrackLithology = 0
	TrackGammaRay  = 1
	TrackPorosity  = 2
)

// Gridline is one horizontal depth tick: its pixel row, the depth it marks,
// and the formatted label drawn in the left margin.
type Gridline struct {
	Y     float64 `json:"y"`
	Depth float64 `json:"depth"`
	Label string  `json:"label"`
}

// Point is one curve sample in pixel coordinates. A marker is drawn at every
// point in addition to the connecting polyline.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is one continuous-value track's polyline. Points are ordered by
// depth, never by value, so the line traces the depth progression even when
// the value is non-monotonic.
type Curve struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Track is one vertical column of the chart. Numeric tracks carry min/max
// axis labels at their horizontal extremes; the lithology track carries none.
type Track struct {
	Name     string  `json:"name"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	MinLabel string  `json:"min_label,omitempty"`
	MaxLabel string  `json:"max_label,omitempty"`
}

// Width returns the track's horizontal extent.
func (t Track) Width() float64 { return t.Right - t.Left }

// Layout is the fully composited, coordinate-aligned render of one dataset.
// All elements share a single pixel coordinate space with the origin at the
// top-left corner. A Layout is freshly allocated per Build call and never
// mutated afterwards; building twice from the same dataset yields identical
// layouts.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Plot extent: the region the depth scale maps onto. Margins outside it
	// hold depth labels, track headers, and the legend.
	PlotTop    float64 `json:"plot_top"`
	PlotBottom float64 `json:"plot_bottom"`
	PlotLeft   float64 `json:"plot_left"`
	PlotRight  float64 `json:"plot_right"`

	Gridlines []Gridline   `json:"gridlines"`
	Dividers  []float64    `json:"dividers"`
	Tracks    [3]Track     `json:"tracks"`
	Bands     []band.Band  `json:"bands"`
	Curves    [2]Curve     `json:"curves"`
	Legend    []band.Entry `json:"legend"`
}

// PlotHeight returns the vertical extent of the plot area.
func (l Layout) PlotHeight() float64 { return l.PlotBottom - l.PlotTop }
