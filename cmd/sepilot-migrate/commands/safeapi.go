package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sepilot/sepilot-migrate/cmd/sepilot-migrate/opts"
	"github.com/sepilot/sepilot-migrate/pkg/migrate"
	"github.com/sepilot/sepilot-migrate/pkg/report"
	"github.com/sepilot/sepilot-migrate/pkg/rewrite/safeapi"
	"github.com/sepilot/sepilot-migrate/pkg/walker"
)

// NewSafeAPICmd creates the global-to-safe-wrapper migration command
func NewSafeAPICmd(provide opts.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safe-api",
		Short: "Migrate window.electronAPI calls to safeElectronAPI",
		Long: `safe-api routes window.electronAPI usages through safeElectronAPI.
It will:
1. Make safeElectronAPI importable in each affected file
2. Rewrite window.electronAPI property accesses to the wrapper
3. Strip defensive existence checks on window.electronAPI`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "safe-api").Logger().WithContext(ctx)

			o, err := provide(ctx)
			if err != nil {
				return err
			}
			rc := o.Config.SafeAPI

			pipeline, err := safeapi.New()
			if err != nil {
				return errors.Errorf("building pipeline: %w", err)
			}

			reporter := report.New(o.Out)
			m, err := migrate.New(migrate.Options{
				Pipeline: pipeline,
				Walker:   walker.New(rc.Extensions, rc.IgnorePatterns),
				Reporter: reporter,
				DryRun:   o.DryRun,
			})
			if err != nil {
				return errors.Errorf("creating migrator: %w", err)
			}

			reporter.StartRun("safe API")
			if err := m.Run(ctx, rc.Roots); err != nil {
				return errors.Errorf("running migration: %w", err)
			}
			reporter.PrintSummary(pipeline.ReviewChecklist())

			return nil
		},
	}

	return cmd
}
