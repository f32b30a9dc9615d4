package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"welltrack/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-29T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the welltrack CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, inspect,
// cache), loads the configuration, configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: level from config (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible to
// all commands via loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "welltrack",
		Short:        "Welltrack renders well-log data as multi-track depth plots",
		Long:         `Welltrack is a CLI tool for rendering well-log measurements (lithology, gamma ray, porosity) as composited multi-track depth plots, making it easier to read formation structure at a glance.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			level := parseLevel(cfg.Log.Level)
			if verbose {
				level = charmlog.DebugLevel
			}

			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(cmdCtx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("welltrack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default welltrack.toml if present)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig loads the configuration from the given path, falling back
// to defaults when no file exists.
func loadConfig(path string) (cfg config.Config, err error) {
	return config.Load(path)
}

// parseLevel maps a config log level name to a charmbracelet level.
func parseLevel(name string) charmlog.Level {
	switch name {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
