package contract

import "github.com/huangsam/driftwatch/schema"

// ArchiveStore persists metric snapshots and alerts to a SQL backend for
// long-term retention beyond the in-memory caps.
type ArchiveStore interface {
	// SaveSnapshots appends metric snapshots to the archive.
	SaveSnapshots(snapshots []schema.MetricSnapshot) error

	// SaveAlerts appends alerts to the archive.
	SaveAlerts(alerts []schema.Alert) error

	// Status returns archive counts and time bounds.
	Status() (schema.ArchiveStatus, error)

	// Close closes the underlying connection.
	Close() error
}
