package opts

import (
	"context"
	"io"

	"github.com/sepilot/sepilot-migrate/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	DryRun bool
	Out    io.Writer
}

// Provider builds RootOpts at command execution time, after flag parsing.
type Provider func(ctx context.Context) (*RootOpts, error)
