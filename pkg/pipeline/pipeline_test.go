package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"welltrack/pkg/cache"
	"welltrack/pkg/errors"
	"welltrack/pkg/wellog/measure"
)

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "well.csv")
	content := `depth,lithology,gamma_ray,porosity
110.0,Shale,90.0,0.6
100.0,Sandstone,80.0,0.4
120.0,Limestone,30.0,0.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{DataPath: "well.csv"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("dimensions = %gx%g, want defaults", opts.Width, opts.Height)
	}
	if opts.Ticks != DefaultTicks {
		t.Errorf("ticks = %d, want %d", opts.Ticks, DefaultTicks)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("style = %q, want %q", opts.Style, DefaultStyle)
	}
	if opts.GammaName != DefaultGammaName || opts.PorosityName != DefaultPorosityName {
		t.Errorf("curve names = %q/%q", opts.GammaName, opts.PorosityName)
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty path", Options{}, errors.ErrCodeInvalidPath},
		{"bad format", Options{DataPath: "w.csv", Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{DataPath: "w.csv", Style: "fancy"}, errors.ErrCodeInvalidStyle},
		{"negative width", Options{DataPath: "w.csv", Width: -800}, errors.ErrCodeInvalidConfig},
		{"negative height", Options{DataPath: "w.csv", Height: -1000}, errors.ErrCodeInvalidConfig},
		{"negative ticks", Options{DataPath: "w.csv", Ticks: -1}, errors.ErrCodeInvalidConfig},
		{"negative scale", Options{DataPath: "w.csv", Scale: -2}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if errors.GetCode(err) != tt.code {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRunnerExecute(t *testing.T) {
	path := writeSampleCSV(t)
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		DataPath: path,
		Formats:  []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if result.Stats.RecordCount != 3 {
		t.Errorf("record count = %d, want 3", result.Stats.RecordCount)
	}
	if result.Stats.BandCount != 3 {
		t.Errorf("band count = %d, want 3", result.Stats.BandCount)
	}
	if result.DatasetHash == "" {
		t.Error("DatasetHash should be set")
	}

	// Records sorted by depth despite unsorted input
	depths := make([]float64, 0, 3)
	for _, m := range result.Dataset.Records {
		depths = append(depths, m.Depth)
	}
	if depths[0] != 100 || depths[1] != 110 || depths[2] != 120 {
		t.Errorf("depths = %v, want sorted", depths)
	}

	svg := result.Artifacts[FormatSVG]
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Error("svg artifact should start with <svg")
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact should not be empty")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	path := writeSampleCSV(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{DataPath: path, Formats: []string{FormatSVG}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(context.Background(), Options{DataPath: path, Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}

	// Cached artifacts are byte-identical to fresh ones
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the fresh render")
	}

	// Refresh bypasses the cache
	third, err := runner.Execute(context.Background(), Options{DataPath: path, Formats: []string{FormatSVG}, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute error: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestRunnerExecuteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("depth,lithology,gamma_ray,porosity\n"), 0644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{DataPath: path})
	if errors.GetCode(err) != errors.ErrCodeEmptyDataset {
		t.Errorf("code = %s, want EMPTY_DATASET", errors.GetCode(err))
	}
}

func TestRenderFromLayout(t *testing.T) {
	ds, err := measure.Normalize([]measure.Measurement{
		{Depth: 100, Lithology: "Sandstone", GammaRay: 80, Porosity: 0.4},
		{Depth: 110, Lithology: "Shale", GammaRay: 90, Porosity: 0.6},
	})
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{DataPath: "w.csv", Formats: []string{FormatSVG, FormatJSON}}
	opts.SetLayoutDefaults()

	runner := NewRunner(nil, nil, nil)
	l, err := runner.ComputeLayout(context.Background(), ds, "hash", opts)
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := RenderFromLayout(l, opts)
	if err != nil {
		t.Fatalf("RenderFromLayout error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(artifacts))
	}

	_, err = RenderFromLayout(l, Options{Formats: []string{"gif"}})
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %s, want INVALID_FORMAT", errors.GetCode(err))
	}
}
