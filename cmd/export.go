package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd exports the monitoring state to JSON or Parquet.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export monitoring state to JSON or Parquet for analytics.",
	Long: `Export all tracked metric history and alerts from the state file.

Formats:
- json    - single file with export timestamp, metric histories, and alerts;
            the same format 'driftwatch track' reads back on the next run
- parquet - a pair of columnar files (snapshots and alerts) for fast
            querying with DuckDB, Apache Spark, or pandas

Requires: --output-file parameter

Examples:
  # Snapshot the state for backup or hand-off
  driftwatch export --output-file metrics-backup.json

  # Export for analysis in DuckDB
  driftwatch export --format parquet --output-file metrics
  duckdb -c "SELECT * FROM read_parquet('metrics.snapshots.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export monitoring state", err)
		}
	},
}
