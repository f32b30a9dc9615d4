package pipeline

import (
	"welltrack/pkg/errors"
	"welltrack/pkg/wellog/layout"
	"welltrack/pkg/wellog/sink"
	"welltrack/pkg/wellog/styles"
)

// RenderFromLayout renders a layout into every requested format.
// The map is keyed by format name.
func RenderFromLayout(l layout.Layout, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	style, err := styleFor(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err := sink.RenderJSON(l)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPNG:
			data, err := sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return artifacts, nil
}

// styleFor maps a style name to its implementation.
func styleFor(name string) (styles.Style, error) {
	if err := errors.ValidateStyle(name); err != nil {
		return nil, err
	}
	return styles.Simple{}, nil
}
