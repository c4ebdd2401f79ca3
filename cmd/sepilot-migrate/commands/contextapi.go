package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/sepilot/sepilot-migrate/cmd/sepilot-migrate/opts"
	"github.com/sepilot/sepilot-migrate/pkg/migrate"
	"github.com/sepilot/sepilot-migrate/pkg/report"
	"github.com/sepilot/sepilot-migrate/pkg/rewrite/contextapi"
	"github.com/sepilot/sepilot-migrate/pkg/walker"
)

// NewContextAPICmd creates the store-to-context migration command
func NewContextAPICmd(provide opts.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context-api",
		Short: "Migrate useChatStore calls to the extension context API",
		Long: `context-api rewrites useChatStore usages into useExtensionAPIContext.
It will:
1. Replace useChatStore imports with the context hook import
2. Rewrite inline state selectors to context API accesses
3. Rewrite getState() calls and property reads
4. Inject the context hook into the file's function component
5. Report any useChatStore usages left for manual review`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "context-api").Logger().WithContext(ctx)

			o, err := provide(ctx)
			if err != nil {
				return err
			}
			rc := o.Config.ContextAPI

			pipeline, err := contextapi.New()
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

			reporter.StartRun("useChatStore → useExtensionAPIContext")
			if err := m.Run(ctx, rc.Roots); err != nil {
				return errors.Errorf("running migration: %w", err)
			}
			reporter.PrintSummary(pipeline.ReviewChecklist())

			return nil
		},
	}

	return cmd
}
