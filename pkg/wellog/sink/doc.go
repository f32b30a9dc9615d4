// Package sink exports composited well-log layouts to output formats.
//
// Four formats are supported:
//
//   - SVG ([RenderSVG]): the primary format, assembled deterministically so
//     identical layouts produce byte-identical documents.
//   - JSON ([RenderJSON]): the data interchange format with all positions,
//     bands, curves, and legend entries.
//   - PNG ([RenderPNG]) and PDF ([RenderPDF]): rasterized/print variants
//     produced by piping the SVG through rsvg-convert.
//
// Rendering order inside the SVG is fixed: bands, gridlines, the plot frame
// and dividers, curves, then text (headers, axis labels, legend). Later
// elements paint over earlier ones, so curves stay visible on top of bands.
package sink
