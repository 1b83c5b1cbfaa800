package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd shows the measurement history of one metric.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the measurement history of a single metric.",
	Long: `Print the most recent measurements recorded for one metric, oldest first.

Metric names follow the <dataset>_<column>_<suffix> convention used by
'driftwatch track', e.g. orders_amount_null_pct.

Examples:
  # Last 10 measurements (default limit)
  driftwatch history --metric orders_amount_null_pct

  # Last 50 measurements as CSV
  driftwatch history -m orders_amount_null_pct -l 50 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show metric history", err)
		}
	},
}
