package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders a monitoring report from saved state.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a monitoring report for all tracked metrics.",
	Long: `Summarize the monitoring state across all tracked metrics.

The report includes:
- Latest value, timestamp, and measurement count per metric
- Trend direction, rate of change, and volatility for metrics with history
- Active alert counts bucketed by severity
- Alerts fired within the last 24 hours

Examples:
  # Report on the default state file
  driftwatch report

  # Report on a specific pipeline's state as JSON
  driftwatch report --state /var/lib/driftwatch/orders.json --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}
