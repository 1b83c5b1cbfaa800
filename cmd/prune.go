package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// pruneCmd removes old measurements from the monitoring state.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove measurements older than a cutoff from the state file.",
	Long: `Delete measurements older than the given number of days from the
monitoring state and save it back. Metrics left with no measurements
are dropped entirely.

Use this to keep long-running state files bounded.

Examples:
  # Keep the last 30 days (default)
  driftwatch prune

  # Keep only the last week
  driftwatch prune --days 7`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePrune(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot prune measurements", err)
		}
	},
}
