package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// anomaliesCmd searches a single column for anomalous records.
var anomaliesCmd = &cobra.Command{
	Use:   "anomalies <data-file>",
	Short: "Find anomalous records in a single numeric column.",
	Long: `Search one column of a dataset for statistically anomalous values.

Two detection methods are supported:
- iqr    - interquartile range fences (Q1-1.5*IQR, Q3+1.5*IQR)
- zscore - values more than 3 standard deviations from the mean

Non-numeric values in the column are skipped. Results are ranked by
anomaly score, highest first.

Examples:
  # Find outliers in the amount column
  driftwatch anomalies orders.csv --column amount

  # Use the z-score method instead of IQR
  driftwatch anomalies orders.csv --column amount --method zscore

  # Export anomalies to CSV
  driftwatch anomalies orders.csv -c amount --output csv --output-file anomalies.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnomalies(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot find anomalies", err)
		}
	},
}
