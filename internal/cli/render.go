package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"welltrack/pkg/cache"
	"welltrack/pkg/config"
	"welltrack/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "json", "pdf", "png"
	width    float64  // viewport width in pixels
	height   float64  // viewport height in pixels
	ticks    int      // depth gridline interval count
	style    string   // visual style
	scale    float64  // PNG rasterization scale
	noCache  bool     // disable the pipeline cache
	refresh  bool     // bypass cached entries and recompute
	gamma    string   // gamma ray track title
	porosity string   // porosity track title
}

// newRenderCmd creates the render command for generating depth plots.
// It supports multiple output formats (SVG, JSON, PDF, PNG) from CSV or
// LAS data files.
//
// Flag defaults come from the loaded configuration, which in turn falls
// back to width 800, height 1000, and 10 depth intervals.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a well-log data file to a depth plot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			applyRenderConfig(&opts, cmd, cfg)
			opts.formats = parseFormats(formatsStr, cfg.Render.Format)
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "depth gridline interval count")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple (default)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG rasterization scale")
	cmd.Flags().StringVar(&opts.gamma, "gamma-name", "", "gamma ray track title")
	cmd.Flags().StringVar(&opts.porosity, "porosity-name", "", "porosity track title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute all stages, ignoring cached entries")

	return cmd
}

// applyRenderConfig fills unset flags from the loaded configuration.
// Flags explicitly set by the user always win.
func applyRenderConfig(opts *renderOpts, cmd *cobra.Command, cfg config.Config) {
	if !cmd.Flags().Changed("width") {
		opts.width = float64(cfg.Render.Width)
	}
	if !cmd.Flags().Changed("height") {
		opts.height = float64(cfg.Render.Height)
	}
	if !cmd.Flags().Changed("ticks") {
		opts.ticks = cfg.Render.Ticks
	}
	if !cmd.Flags().Changed("style") {
		opts.style = cfg.Render.Style
	}
	if !cmd.Flags().Changed("scale") {
		opts.scale = cfg.Render.Scale
	}
	if !cmd.Flags().Changed("gamma-name") {
		opts.gamma = cfg.Render.GammaName
	}
	if !cmd.Flags().Changed("porosity-name") {
		opts.porosity = cfg.Render.PorosityName
	}
	if cfg.Cache.Disabled {
		opts.noCache = true
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, the configured default format is used.
func parseFormats(s, fallback string) []string {
	if s == "" {
		if fallback == "" {
			fallback = pipeline.FormatSVG
		}
		return []string{fallback}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, etc.), it strips that extension.
// This is used when generating multiple files (e.g., well.svg, well.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	switch strings.TrimPrefix(ext, ".") {
	case pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatPNG, pipeline.FormatPDF:
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender executes the full pipeline for input and writes one file per
// requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	runner := pipeline.NewRunner(openCache(cfg, opts.noCache, logger), nil, logger)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		DataPath:     input,
		Width:        opts.width,
		Height:       opts.height,
		Ticks:        opts.ticks,
		GammaName:    opts.gamma,
		PorosityName: opts.porosity,
		Formats:      opts.formats,
		Style:        opts.style,
		Scale:        opts.scale,
		Refresh:      opts.refresh,
		Logger:       logger,
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d bands across %d tracks", result.Stats.BandCount, len(result.Layout.Tracks)))

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printStats(result.Stats.RecordCount, result.Stats.BandCount, result.CacheInfo.RenderHit)
	return nil
}

// openCache builds the pipeline cache from configuration.
// Cache failures degrade to a null cache instead of failing the command.
func openCache(cfg config.Config, disabled bool, logger *log.Logger) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(cfg.Cache.Dir)
	if err != nil {
		logger.Warn("cache unavailable, continuing without it", "dir", cfg.Cache.Dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}
