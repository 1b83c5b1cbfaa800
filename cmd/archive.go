package cmd

import (
	"github.com/huangsam/driftwatch/core"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// archiveCmd focused on the SQL archive of metric history.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the SQL archive of metric snapshots and alerts",
	Long: `Push monitoring state into a SQL archive and inspect it.

The archive stores every metric snapshot and alert in a database, outliving
the capped in-memory state file. This enables longitudinal analysis across
prune cycles and sharing history between machines.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  push    - Save the current state file into the archive
  status  - Show archive statistics and connection details

Examples:
  # Push today's tracked metrics into the local SQLite archive
  driftwatch archive push

  # Inspect a shared PostgreSQL archive
  driftwatch archive status --archive-backend postgresql --archive-db-connect "host=db dbname=driftwatch"`,
}

// archivePushCmd saves the monitoring state into the archive.
var archivePushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save the current monitoring state into the SQL archive",
	Long: `Write every tracked metric snapshot and alert from the state file
into the configured SQL archive backend.

Rows are appended; pushing the same state twice stores duplicates, so
run this once per tracking cycle.

Examples:
  # Track then archive in one pipeline
  driftwatch track orders.csv --dataset orders
  driftwatch archive push`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteArchivePush(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot push state to archive", err)
		}
	},
}

// archiveStatusCmd shows archive status.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show detailed information about the SQL archive.

Displays:
- Backend type and connection status
- Total number of snapshots and alerts stored
- Last and oldest snapshot timestamps
- Database table sizes

Examples:
  # Check the archive
  driftwatch archive status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteArchiveStatus(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot get archive status", err)
		}
	},
}
