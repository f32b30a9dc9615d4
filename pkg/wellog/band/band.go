// Package band converts sorted well-log measurements into the contiguous
// colored depth intervals of the lithology track.
package band

import (
	"welltrack/pkg/wellog/measure"
	"welltrack/pkg/wellog/scale"
)

// MinLabelHeight is the minimum band height, in pixel units, at which the
// lithology name is rendered inside the band. Shorter bands show color only
// to avoid text clutter.
const MinLabelHeight = 20.0

// Band is one colored vertical interval of the lithology track. It keeps
// both the data-space depth interval [DepthStart, DepthEnd) and the pixel
// coordinates it maps to.
type Band struct {
	Lithology  string  `json:"lithology"`
	DepthStart float64 `json:"depth_start"`
	DepthEnd   float64 `json:"depth_end"`
	Top        float64 `json:"top"`
	Bottom     float64 `json:"bottom"`
	Color      string  `json:"color"`
	ShowLabel  bool    `json:"show_label"`
}

// Height returns the band's vertical pixel extent.
func (b Band) Height() float64 { return b.Bottom - b.Top }

// Build produces one band per measurement in the sorted dataset. Band i
// starts at the depth scale of measurement i and ends at the depth scale of
// measurement i+1; the final band extends to the plot's bottom edge instead.
//
// Adjacent measurements with the same lithology yield adjacent same-colored
// bands rather than one merged band. Each raw sample stays visible as its
// own interval, which preserves the sample density of the source log.
func Build(ds measure.Dataset, depth scale.Linear, colors *Assignment) []Band {
	bands := make([]Band, 0, len(ds.Records))

	for i, m := range ds.Records {
		b := Band{
			Lithology:  m.Lithology,
			DepthStart: m.Depth,
			Top:        depth.Map(m.Depth),
			Color:      colors.Color(m.Lithology),
		}
		if i < len(ds.Records)-1 {
			next := ds.Records[i+1]
			b.DepthEnd = next.Depth
			b.Bottom = depth.Map(next.Depth)
		} else {
			b.DepthEnd = depth.DomainMax
			b.Bottom = depth.RangeEnd()
		}
		b.ShowLabel = b.Height() > MinLabelHeight
		bands = append(bands, b)
	}

	return bands
}
