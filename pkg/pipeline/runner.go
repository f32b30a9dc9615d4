package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"welltrack/pkg/cache"
	"welltrack/pkg/errors"
	"welltrack/pkg/ingest"
	"welltrack/pkg/observability"
	"welltrack/pkg/wellog/layout"
	"welltrack/pkg/wellog/measure"
	"welltrack/pkg/wellog/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete ingest → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Ingest
	ingestStart := time.Now()
	ds, datasetHash, err := r.Ingest(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Dataset = ds
	result.DatasetHash = datasetHash
	result.Stats.IngestTime = time.Since(ingestStart)
	result.Stats.RecordCount = len(ds.Records)

	r.Logger.Info("ingested measurements",
		"run_id", result.RunID,
		"records", len(ds.Records),
		"duration", result.Stats.IngestTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, ds, datasetHash, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BandCount = len(l.Bands)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("composited layout",
		"bands", len(l.Bands),
		"gridlines", len(l.Gridlines),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Ingest reads and normalizes the data file, returning the dataset and
// the content hash of the source file. Normalized datasets are cached by
// file hash so unchanged files skip re-parsing.
func (r *Runner) Ingest(ctx context.Context, opts Options) (measure.Dataset, string, error) {
	raw, err := os.ReadFile(opts.DataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return measure.Dataset{}, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "data file not found: %s", opts.DataPath)
		}
		return measure.Dataset{}, "", errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to read %s", opts.DataPath)
	}
	fileHash := cache.Hash(raw)
	cacheKey := r.Keyer.DatasetKey(opts.DataPath, fileHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var ds measure.Dataset
			if err := json.Unmarshal(data, &ds); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				return ds, fileHash, nil
			}
			// Corrupt entry, fall through to re-parse
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	records, err := ingest.Read(ctx, opts.DataPath)
	if err != nil {
		return measure.Dataset{}, "", err
	}

	ds, err := measure.Normalize(records)
	if err != nil {
		return measure.Dataset{}, "", err
	}

	if data, err := json.Marshal(ds); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset); err == nil {
			observability.Cache().OnCacheSet(ctx, "dataset", len(data))
		}
	}

	return ds, fileHash, nil
}

// ComputeLayoutWithCacheInfo composites the layout with caching and
// returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, ds measure.Dataset, datasetHash string, opts Options) (layout.Layout, bool, error) {
	opts.SetLayoutDefaults()

	cacheKey := r.Keyer.LayoutKey(datasetHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := sink.ParseJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Corrupt entry, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	observability.Pipeline().OnLayoutStart(ctx, len(ds.Records))
	start := time.Now()
	l := layout.Build(ds, opts.LayoutOptions()...)
	observability.Pipeline().OnLayoutComplete(ctx, time.Since(start), nil)

	// Cache the result
	if data, err := sink.RenderJSON(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, ds measure.Dataset, datasetHash string, opts Options) (layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, ds, datasetHash, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	opts.SetRenderDefaults()
	for _, f := range opts.Formats {
		if err := errors.ValidateFormat(f); err != nil {
			return nil, false, err
		}
	}

	layoutData, err := sink.RenderJSON(l)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to serve every format from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderStart(ctx, format)
	}
	start := time.Now()
	rendered, err := RenderFromLayout(l, opts)
	for _, format := range opts.Formats {
		observability.Pipeline().OnRenderComplete(ctx, format, len(rendered[format]), time.Since(start), err)
	}
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
