package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"welltrack/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Render.Width != 800 || cfg.Render.Height != 1000 {
		t.Errorf("default dimensions = %dx%d, want 800x1000", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Ticks != 10 {
		t.Errorf("default ticks = %d, want 10", cfg.Render.Ticks)
	}
	if cfg.Render.Format != "svg" || cfg.Render.Style != "simple" {
		t.Errorf("default format/style = %s/%s", cfg.Render.Format, cfg.Render.Style)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without config file should succeed: %v", err)
	}
	if cfg.Render.Width != 800 {
		t.Errorf("expected defaults, got width %d", cfg.Render.Width)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load with missing explicit file should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %s, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltrack.toml")
	content := `
[render]
width = 400
ticks = 5
gamma_name = "GR"

[cache]
disabled = true
ttl = "1h"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Render.Width != 400 {
		t.Errorf("width = %d, want 400", cfg.Render.Width)
	}
	if cfg.Render.Height != 1000 {
		t.Errorf("height = %d, want default 1000", cfg.Render.Height)
	}
	if cfg.Render.Ticks != 5 {
		t.Errorf("ticks = %d, want 5", cfg.Render.Ticks)
	}
	if cfg.Render.GammaName != "GR" {
		t.Errorf("gamma name = %q, want GR", cfg.Render.GammaName)
	}
	if !cfg.Cache.Disabled {
		t.Error("cache should be disabled")
	}
	if cfg.Cache.TTL.Std() != time.Hour {
		t.Errorf("ttl = %v, want 1h", cfg.Cache.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltrack.toml")
	if err := os.WriteFile(path, []byte("[render]\nwidth = 400\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WELLTRACK_RENDER_WIDTH", "640")
	t.Setenv("WELLTRACK_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Render.Width != 640 {
		t.Errorf("width = %d, env should override file", cfg.Render.Width)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, env should override default", cfg.Log.Level)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltrack.toml")
	if err := os.WriteFile(path, []byte("[render\nwidth ="), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %s, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
		{"negative height", func(c *Config) { c.Render.Height = -1 }},
		{"zero ticks", func(c *Config) { c.Render.Ticks = 0 }},
		{"bad format", func(c *Config) { c.Render.Format = "gif" }},
		{"bad style", func(c *Config) { c.Render.Style = "fancy" }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
