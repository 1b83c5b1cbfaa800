package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// trackCmd profiles a dataset and records quality metrics into the state file.
var trackCmd = &cobra.Command{
	Use:   "track <data-file>",
	Short: "Profile a dataset and track quality metrics with alerting.",
	Long: `Profile a dataset, derive quality metrics, and append them to the
monitoring state file, firing alerts on threshold breaches.

For every column this records:
- <dataset>_<column>_null_pct       - null percentage
- <dataset>_<column>_distinct_count - distinct value count
- <dataset>_<column>_anomaly_count  - heuristic anomaly count (when present)

Alert rules applied after recording:
- null percentage above --null-threshold       -> warning
- anomaly count above --anomaly-threshold      -> critical
- distinct count decreasing sharply over time  -> warning

Alerts honor a per-metric rate limit so repeated runs do not spam.
Run this on a schedule (cron, CI) to build up metric history.

Examples:
  # Track a daily extract under a stable dataset name
  driftwatch track orders.csv --dataset orders

  # Tighter thresholds and a custom state location
  driftwatch track orders.csv --dataset orders --null-threshold 5 --state /var/lib/driftwatch/orders.json

  # Route alerts to multiple channels
  driftwatch track orders.csv --dataset orders --channels log,slack`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrack(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot track dataset metrics", err)
		}
	},
}
