package wellog

import (
	"welltrack/pkg/wellog/layout"
	"welltrack/pkg/wellog/measure"
)

// Render is the single entry point of the rendering core: it normalizes raw
// measurements and composites them into a layout.
//
// Returns an EMPTY_DATASET error (pkg/errors) when records is empty; the
// host is expected to display a neutral no-data placeholder in that case.
func Render(records []measure.Measurement, opts ...layout.Option) (layout.Layout, error) {
	ds, err := measure.Normalize(records)
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(ds, opts...), nil
}
