package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// profileCmd profiles a dataset and renders per-column statistics.
var profileCmd = &cobra.Command{
	Use:   "profile <data-file>",
	Short: "Profile a dataset and show per-column statistics.",
	Long: `Analyze a tabular dataset and compute a statistical profile per column.

For every column this reports:
- Inferred data type (integer, float, string, boolean, datetime, mixed)
- Null counts and null percentage
- Distinct counts and distinct percentage
- Min/max/mean/median/standard deviation for numeric columns
- Length statistics for string columns
- Heuristic column anomalies (constant columns, high null rates, and more)

Supported input formats: CSV, JSON (array of objects), JSONL.

Examples:
  # Profile a CSV file as a table
  driftwatch profile orders.csv

  # Save the profile as JSON to use as a drift baseline later
  driftwatch profile orders.csv --output json --output-file baseline.json

  # Export findings to CSV for tracking
  driftwatch profile orders.jsonl --output csv --output-file profile.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot profile dataset", err)
		}
	},
}
