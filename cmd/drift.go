package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// driftCmd compares a dataset against a saved baseline profile.
var driftCmd = &cobra.Command{
	Use:   "drift <data-file>",
	Short: "Detect distributional drift against a baseline profile.",
	Long: `Compare a dataset against a previously saved baseline profile and score
how far each column has drifted.

Per column this measures:
- Null percentage drift
- Distinct count drift
- Value distribution drift (total variation distance on top values)
- Mean drift for numeric columns

Columns missing from the current data, or new since the baseline, are
flagged with the maximum drift score. The baseline is a profile saved
with 'driftwatch profile --output json'.

Examples:
  # Save a baseline, then check a fresh extract against it
  driftwatch profile orders.csv --output json --output-file baseline.json
  driftwatch drift orders_today.csv --baseline baseline.json

  # Tighten the drift sensitivity
  driftwatch drift orders_today.csv -b baseline.json --drift-threshold 0.05`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDrift(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot detect drift", err)
		}
	},
}
