// Package cli implements the mortar command tree.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"mortar/internal/platform/config"
	"mortar/internal/platform/logger"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	LogLevel  string
	LogFormat string
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// NewRootCommand creates the root command for the mortar CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mortar",
		Short: "Keep a geometric constraint solver in lockstep with a building model",
		Long: `mortar loads a declarative building model, mirrors its perimeter geometry
and constraints into a solver registry, and keeps the two in sync as the
model changes.`,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.LogLevel != "" && !slices.Contains(validLogLevels, opts.LogLevel) {
				return fmt.Errorf("invalid log level %q: must be one of %v", opts.LogLevel, validLogLevels)
			}
			if opts.LogFormat != "" && !slices.Contains(validLogFormats, opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, validLogFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), defaults to MORTAR_LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text|json), defaults to MORTAR_LOG_FORMAT")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewKeysCommand())

	return cmd
}

// Logger resolves the effective process logger: flags win over environment.
func (o *RootOptions) Logger() *slog.Logger {
	cfg := config.FromEnv()
	level, format := cfg.LogLevel, cfg.LogFormat
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	if o.LogFormat != "" {
		format = o.LogFormat
	}
	return logger.New(level, format)
}
