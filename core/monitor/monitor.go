// Package monitor tracks data quality metrics over time, analyzes trends, and
// raises rate-limited alerts when configured thresholds are crossed. One Core
// owns the mutable monitoring state for a single monitored pipeline; all
// mutation is serialized behind its mutex, so a Core is safe for concurrent
// producers.
package monitor

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/huangsam/driftwatch/schema"
)

// ErrInvalidDatasetName is returned when a tracking call is made with a
// dataset name that is empty, too long, or contains characters outside
// alphanumerics, underscore and dash.
var ErrInvalidDatasetName = errors.New("dataset name must be 1-200 alphanumeric, underscore or dash characters")

// Core is the monitoring engine: a memory-bounded metric store, a trend
// analyzer, and a threshold-based alert engine sharing one lock.
type Core struct {
	mu  sync.Mutex
	cfg AlertConfig

	maxSnapshots int // global snapshot cap across all metrics
	maxAlerts    int // active-alert list cap
	retainFloor  int // per-metric retention floor during lazy pruning

	history   map[string][]schema.MetricSnapshot
	alerts    []schema.Alert
	lastAlert map[string]time.Time // rate-limit table

	now func() time.Time
}

// Option configures a Core.
type Option func(*Core)

// WithMaxSnapshots overrides the global snapshot cap.
func WithMaxSnapshots(n int) Option {
	return func(c *Core) {
		if n > 0 {
			c.maxSnapshots = n
		}
	}
}

// WithMaxAlerts overrides the active-alert cap.
func WithMaxAlerts(n int) Option {
	return func(c *Core) {
		if n > 0 {
			c.maxAlerts = n
		}
	}
}

// WithRetainFloor overrides the per-metric retention floor used by the lazy
// memory pruning pass.
func WithRetainFloor(n int) Option {
	return func(c *Core) {
		if n > 0 {
			c.retainFloor = n
		}
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		c.now = now
	}
}

// New creates a monitoring Core. The alert configuration is validated and
// clamped before use.
func New(cfg AlertConfig, opts ...Option) *Core {
	c := &Core{
		cfg:          cfg.sanitized(),
		maxSnapshots: schema.MaxSnapshotsInMemory,
		maxAlerts:    schema.MaxAlertsInMemory,
		retainFloor:  schema.SnapshotRetainFloor,
		history:      make(map[string][]schema.MetricSnapshot),
		lastAlert:    make(map[string]time.Time),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the validated alert configuration in effect.
func (c *Core) Config() AlertConfig {
	return c.cfg
}

// TrackProfile derives quality metrics from a dataset profile and records the
// column-level ones. The returned map also includes the dataset-level
// total_records and total_columns values for threshold checking.
func (c *Core) TrackProfile(profile *schema.DatasetProfile, datasetName string) (map[string]float64, error) {
	if !isValidDatasetName(datasetName) {
		return nil, ErrInvalidDatasetName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now()
	metrics := map[string]float64{
		"total_records": float64(profile.TotalRecords),
		"total_columns": float64(profile.TotalColumns),
	}

	columns := make([]string, 0, len(profile.ColumnProfiles))
	for name := range profile.ColumnProfiles {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	for _, column := range columns {
		cp := profile.ColumnProfiles[column]
		safeColumn := sanitizeMetricName(column)

		key := datasetName + "_" + safeColumn + "_null_pct"
		metrics[key] = cp.NullPercentage
		c.record(key, cp.NullPercentage, ts, nil)

		key = datasetName + "_" + safeColumn + "_distinct_count"
		metrics[key] = float64(cp.DistinctCount)
		c.record(key, float64(cp.DistinctCount), ts, nil)

		if len(cp.Anomalies) > 0 {
			key = datasetName + "_" + safeColumn + "_anomaly_count"
			metrics[key] = float64(len(cp.Anomalies))
			c.record(key, float64(len(cp.Anomalies)), ts, nil)
		}
	}

	c.enforceMemoryLimit()
	return metrics, nil
}

// isValidDatasetName reports whether a dataset name is non-empty, within the
// length cap, and made of alphanumerics, underscore and dash only.
func isValidDatasetName(name string) bool {
	if name == "" || len(name) > schema.MaxMetricNameLength {
		return false
	}
	for _, r := range name {
		if !isMetricNameRune(r) {
			return false
		}
	}
	return true
}
