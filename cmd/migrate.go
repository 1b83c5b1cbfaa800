package cmd

import (
	"github.com/huangsam/driftwatch/internal/archive"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/spf13/cobra"
)

// migrateCmd runs database migrations for the archive store.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run archive database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the SQL archive.

Migrations allow:
- Upgrading to new schema versions when driftwatch is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  driftwatch migrate

  # Migrate to specific version
  driftwatch migrate --target-version 1

  # Rollback to initial state
  driftwatch migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := archive.MigrateArchive(cfg.ArchiveBackend, cfg.ArchiveDBConnect, cfg.MigrateTarget); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
