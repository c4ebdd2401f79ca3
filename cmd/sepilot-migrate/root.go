package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sepilot/sepilot-migrate/cmd/sepilot-migrate/opts"
	"github.com/sepilot/sepilot-migrate/pkg/config"
)

var (
	// Flags
	configFile string
	debug      bool
	dryRun     bool
)

// newRootOpts creates a new RootOpts with initialized dependencies. It runs
// at command execution time so flag values are already parsed.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Load config; an empty path means the built-in defaults
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Config: cfg,
		DryRun: dryRun,
		Out:    os.Stdout,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (YAML or HCL); empty uses built-in defaults")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print diffs instead of writing files")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
