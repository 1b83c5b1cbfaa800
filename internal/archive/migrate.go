package archive

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// openMigrateDB opens a raw database handle for the configured backend.
// SQLite falls back to the default archive path when no connection string
// is given.
func openMigrateDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			connStr = contract.GetArchiveDBFilePath()
		}
		return sql.Open("sqlite", connStr)
	case schema.MySQLBackend:
		return sql.Open("mysql", connStr)
	case schema.PostgreSQLBackend:
		return sql.Open("pgx", connStr)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// newMigrateDriver wraps an open handle in the golang-migrate driver for the
// matching backend.
func newMigrateDriver(backend schema.DatabaseBackend, db *sql.DB) (database.Driver, error) {
	switch backend {
	case schema.SQLiteBackend:
		return sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		return mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		return postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// MigrateArchive brings the archive schema to the requested version.
// A negative target migrates to the latest version, zero rolls every
// migration back, and a positive target selects that exact version.
func MigrateArchive(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return errors.New("migrations are not supported for the none backend")
	}

	db, err := openMigrateDB(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	driver, err := newMigrateDriver(backend, db)
	if err != nil {
		return fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "driftwatch", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is dirty at version %d, fix manually or force a version", currentVersion)
	}

	switch {
	case targetVersion < 0:
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("Archive schema is already at the latest version")
				return nil
			}
			return fmt.Errorf("failed to migrate to latest version: %w", err)
		}
		newVersion, _, _ := m.Version()
		fmt.Printf("Migrated archive schema from version %d to version %d\n", currentVersion, newVersion)
	case targetVersion == 0:
		if err := m.Down(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("Archive schema is already at version 0")
				return nil
			}
			return fmt.Errorf("failed to roll back to version 0: %w", err)
		}
		fmt.Printf("Rolled archive schema back from version %d to version 0\n", currentVersion)
	default:
		if err := m.Migrate(uint(targetVersion)); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Printf("Archive schema is already at version %d\n", targetVersion)
				return nil
			}
			return fmt.Errorf("failed to migrate to version %d: %w", targetVersion, err)
		}
		fmt.Printf("Migrated archive schema from version %d to version %d\n", currentVersion, targetVersion)
	}

	return nil
}
