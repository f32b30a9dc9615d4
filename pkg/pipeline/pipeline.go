// Package pipeline provides the core rendering pipeline for welltrack.
//
// This package implements the complete ingest → layout → render pipeline
// shared by the CLI commands. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Ingest: Read measurements from a CSV or LAS data file
//  2. Layout: Normalize the dataset and composite the track layout
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    DataPath: "well.csv",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"welltrack/pkg/cache"
	"welltrack/pkg/errors"
	"welltrack/pkg/wellog/layout"
	"welltrack/pkg/wellog/measure"
)

// =============================================================================
// Default Values - Single Source of Truth for all entry points
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 1000.0

	// DefaultTicks is the default depth gridline interval count.
	DefaultTicks = 10

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"

	// DefaultScale is the default PNG rasterization scale.
	DefaultScale = 2.0

	// DefaultGammaName is the default gamma ray curve title.
	DefaultGammaName = "Gamma Ray"

	// DefaultPorosityName is the default porosity curve title.
	DefaultPorosityName = "Porosity"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
type Options struct {
	// Ingest options
	DataPath string `json:"data_path"`

	// Layout options
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Ticks        int     `json:"ticks,omitempty"`
	GammaName    string  `json:"gamma_name,omitempty"`
	PorosityName string  `json:"porosity_name,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Dataset is the normalized measurement set.
	Dataset measure.Dataset

	// DatasetHash is the content hash of the source data.
	DatasetHash string

	// Layout contains the composited track layout.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	BandCount   int
	IngestTime  time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateDataPath(o.DataPath); err != nil {
		return err
	}

	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render dimensions must be positive")
	}
	if o.Ticks < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "render ticks must be at least 1")
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render scale must be positive")
	}

	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	if err := errors.ValidateStyle(o.Style); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Ticks == 0 {
		o.Ticks = DefaultTicks
	}
	if o.GammaName == "" {
		o.GammaName = DefaultGammaName
	}
	if o.PorosityName == "" {
		o.PorosityName = DefaultPorosityName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutOptions converts pipeline options to layout build options.
func (o *Options) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithSize(o.Width, o.Height),
		layout.WithTicks(o.Ticks),
		layout.WithCurveNames(o.GammaName, o.PorosityName),
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:        o.Width,
		Height:       o.Height,
		Ticks:        o.Ticks,
		GammaName:    o.GammaName,
		PorosityName: o.PorosityName,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  o.Scale,
	}
}
