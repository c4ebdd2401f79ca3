package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sepilot/sepilot-migrate/cmd/sepilot-migrate/commands"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "sepilot-migrate",
		Short: "Source migration tool for the sepilot desktop extensions",
		Long: `sepilot-migrate rewrites legacy API usages across the extension sources.
It walks the configured directory trees, applies an ordered list of
text rewrites to each eligible file, writes files back only when their
content changed, and prints a run summary with anything that still
needs manual review.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Re-apply the log level now that flags are parsed.
			setupLogging()
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewContextAPICmd(newRootOpts),
		commands.NewSafeAPICmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
