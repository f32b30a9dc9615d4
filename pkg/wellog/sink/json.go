package sink

import (
	"encoding/json"

	"welltrack/pkg/wellog/layout"
)

// RenderJSON exports the layout as a pretty-printed JSON document. This is
// the primary data interchange format for welltrack, enabling:
//
//   - Integration with external visualization tools
//   - Caching computed layouts for fast re-rendering
//   - Diffing two renders of the same well
//
// The JSON includes the full coordinate layout: plot extent, gridlines,
// dividers, tracks with axis labels, lithology bands (data-space interval
// plus pixel extent), curve polylines, and the legend.
//
// RenderJSON returns an error only if marshaling fails, which cannot happen
// for layouts produced by layout.Build. It does not modify l and is safe to
// call concurrently.
func RenderJSON(l layout.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ParseJSON reads a layout previously produced by [RenderJSON], enabling
// round-trip re-rendering without recomputing the layout.
func ParseJSON(data []byte) (layout.Layout, error) {
	var l layout.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}
