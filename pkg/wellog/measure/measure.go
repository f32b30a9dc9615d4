// Package measure defines the well-log measurement model and dataset
// normalization.
//
// A Measurement is one depth-indexed sample of a well: the lithology observed
// at that depth plus two continuous curve values (gamma ray and porosity).
// Measurements arrive in arbitrary order from the ingestion layer; Normalize
// turns them into a Dataset sorted ascending by depth with the numeric ranges
// required by the scale builder.
package measure

import (
	"sort"

	"welltrack/pkg/errors"
)

// Measurement is a single depth-indexed well-log sample.
// Values are immutable once ingested; the renderer only reads them.
type Measurement struct {
	Depth     float64 `json:"depth"`
	Lithology string  `json:"lithology"`
	GammaRay  float64 `json:"gamma_ray"`
	Porosity  float64 `json:"porosity"`
}

// Range is a closed numeric interval derived from one dataset dimension.
// Min <= Max always holds for ranges produced by Normalize.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max - Min. A zero span marks a degenerate range where every
// sample carries the same value; scales must not divide by it.
func (r Range) Span() float64 { return r.Max - r.Min }

// Dataset is a sequence of measurements sorted ascending by depth, together
// with the value ranges of its numeric dimensions. Construct it with
// Normalize; a zero Dataset is not valid.
type Dataset struct {
	Records []Measurement `json:"records"`

	DepthRange    Range `json:"depth_range"`
	GammaRange    Range `json:"gamma_range"`
	PorosityRange Range `json:"porosity_range"`
}

// Normalize sorts records ascending by depth and computes the value ranges
// for depth, gamma ray, and porosity. The sort is stable: records with equal
// depth keep their relative input order. The input slice is not modified.
//
// Returns an EMPTY_DATASET error when records is empty; callers must render
// an explicit no-data state instead of deriving ranges from nothing.
func Normalize(records []Measurement) (Dataset, error) {
	if len(records) == 0 {
		return Dataset{}, errors.New(errors.ErrCodeEmptyDataset, "dataset has no measurements")
	}

	sorted := make([]Measurement, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth < sorted[j].Depth
	})

	ds := Dataset{
		Records:       sorted,
		DepthRange:    Range{Min: sorted[0].Depth, Max: sorted[len(sorted)-1].Depth},
		GammaRange:    Range{Min: sorted[0].GammaRay, Max: sorted[0].GammaRay},
		PorosityRange: Range{Min: sorted[0].Porosity, Max: sorted[0].Porosity},
	}

	for _, m := range sorted[1:] {
		ds.GammaRange = extend(ds.GammaRange, m.GammaRay)
		ds.PorosityRange = extend(ds.PorosityRange, m.Porosity)
	}

	return ds, nil
}

func extend(r Range, v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// Lithologies returns the distinct lithology names in first-seen order over
// the sorted records. The order is deterministic for a given dataset, which
// color assignment and legends rely on.
func (d Dataset) Lithologies() []string {
	seen := make(map[string]struct{}, 8)
	var out []string
	for _, m := range d.Records {
		if _, ok := seen[m.Lithology]; ok {
			continue
		}
		seen[m.Lithology] = struct{}{}
		out = append(out, m.Lithology)
	}
	return out
}
