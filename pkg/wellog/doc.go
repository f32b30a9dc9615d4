// Package wellog provides the depth-track well-log rendering engine.
//
// # Overview
//
// Welltrack's visualization is a synchronized, depth-aligned set of vertical
// tracks: a categorical lithology column plus two continuous-value curve
// tracks (gamma ray and porosity). This package tree implements the pipeline
// that transforms an unordered set of depth-indexed measurements into a
// coordinate-aligned layout:
//
//  1. Normalize ([measure]): Sort records by depth and compute value ranges.
//  2. Scale ([scale]): Derive affine data-to-pixel mappings for depth and each curve.
//  3. Bands ([band]): Convert sorted records into colored lithology intervals.
//  4. Compose ([layout]): Assemble grid, dividers, labels, polylines, and legend.
//  5. Sink ([sink]): Export the layout to SVG, JSON, PNG, or PDF.
//
// # Rendering Pipeline
//
// The typical flow:
//
//	l, err := wellog.Render(records)
//	if err != nil {
//	    // empty dataset: show a no-data placeholder
//	}
//	svg := sink.RenderSVG(l)
//
// Every stage is a pure function of its input: no I/O, no shared mutable
// state, and byte-identical output for identical datasets. Concurrent
// renders of different datasets need no locking.
//
// # Subpackages
//
//   - [measure]: Measurement model, dataset normalization, value ranges.
//   - [scale]: Affine scales with the degenerate-range midpoint guard.
//   - [band]: Lithology band building and palette color assignment.
//   - [layout]: The track compositor producing the final coordinate layout.
//   - [styles]: Visual themes and SVG drawing primitives.
//   - [sink]: Output generators for the supported file formats.
//
// [measure]: welltrack/pkg/wellog/measure
// [scale]: welltrack/pkg/wellog/scale
// [band]: welltrack/pkg/wellog/band
// [layout]: welltrack/pkg/wellog/layout
// [styles]: welltrack/pkg/wellog/styles
// [sink]: welltrack/pkg/wellog/sink
package wellog
