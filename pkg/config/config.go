// Package config loads welltrack settings from a TOML file and the
// environment. Precedence is flags > environment > file > defaults;
// the CLI applies flag overrides on top of the Config returned here.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"welltrack/pkg/errors"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "welltrack.toml"

// Config holds all tunable settings.
type Config struct {
	Render RenderConfig `toml:"render" envPrefix:"WELLTRACK_RENDER_"`
	Cache  CacheConfig  `toml:"cache" envPrefix:"WELLTRACK_CACHE_"`
	Log    LogConfig    `toml:"log" envPrefix:"WELLTRACK_LOG_"`
}

// RenderConfig controls layout geometry and output defaults.
type RenderConfig struct {
	Width        int     `toml:"width" env:"WIDTH"`
	Height       int     `toml:"height" env:"HEIGHT"`
	Ticks        int     `toml:"ticks" env:"TICKS"`
	Format       string  `toml:"format" env:"FORMAT"`
	Style        string  `toml:"style" env:"STYLE"`
	Scale        float64 `toml:"scale" env:"SCALE"`
	GammaName    string  `toml:"gamma_name" env:"GAMMA_NAME"`
	PorosityName string  `toml:"porosity_name" env:"POROSITY_NAME"`
}

// CacheConfig controls the on-disk pipeline cache.
type CacheConfig struct {
	Dir      string   `toml:"dir" env:"DIR"`
	Disabled bool     `toml:"disabled" env:"DISABLED"`
	TTL      Duration `toml:"ttl" env:"TTL"`
}

// Duration wraps time.Duration so TOML and env values can use the
// "24h" string form.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:        800,
			Height:       1000,
			Ticks:        10,
			Format:       "svg",
			Style:        "simple",
			Scale:        2.0,
			GammaName:    "Gamma Ray",
			PorosityName: "Porosity",
		},
		Cache: CacheConfig{
			Dir: DefaultCacheDir(),
			TTL: Duration(24 * time.Hour),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultCacheDir returns the per-user cache directory.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "welltrack")
	}
	return filepath.Join(base, "welltrack")
}

// Load builds a Config from defaults, an optional TOML file and the
// environment, in that order. An empty path loads DefaultFileName from
// the working directory when it exists; a missing default file is not
// an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file")
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine
	default:
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file")
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the loaded settings are usable.
func (c Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render dimensions must be positive")
	}
	if c.Render.Ticks < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "render ticks must be at least 1")
	}
	if err := errors.ValidateFormat(c.Render.Format); err != nil {
		return err
	}
	if err := errors.ValidateStyle(c.Render.Style); err != nil {
		return err
	}
	if c.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render scale must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "log level must be one of debug, info, warn, error")
	}
	return nil
}
