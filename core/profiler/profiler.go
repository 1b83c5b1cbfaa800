// Package profiler computes column-level statistics, anomaly flags, and
// distributional drift for tabular datasets. A Profiler is stateless per call,
// so multiple datasets may be profiled concurrently with one instance.
package profiler

import (
	"errors"
	"sort"
	"time"

	"github.com/huangsam/driftwatch/schema"
)

// DefaultDriftThreshold is the drift sensitivity used when none is configured.
const DefaultDriftThreshold = 0.1

// ErrEmptyDataset is returned when profiling a dataset with zero records.
// No partial profile is produced.
var ErrEmptyDataset = errors.New("cannot profile empty dataset")

// Profiler profiles datasets and detects anomalies and drift.
type Profiler struct {
	driftThreshold float64
	now            func() time.Time
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithDriftThreshold sets the drift sensitivity, clamped to [0,1].
func WithDriftThreshold(threshold float64) Option {
	return func(p *Profiler) {
		p.driftThreshold = clamp01(threshold)
	}
}

// WithClock overrides the profile timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		p.now = now
	}
}

// New creates a Profiler with the default drift threshold.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		driftThreshold: DefaultDriftThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile generates the complete profile for a dataset. The column set is the
// union of keys across all records, profiled in sorted order for determinism.
func (p *Profiler) Profile(data []schema.Record, datasetName string) (*schema.DatasetProfile, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	columnSet := make(map[string]struct{})
	for _, record := range data {
		for key := range record {
			columnSet[key] = struct{}{}
		}
	}
	columns := make([]string, 0, len(columnSet))
	for key := range columnSet {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	profiles := make(map[string]*schema.ColumnProfile, len(columns))
	for _, column := range columns {
		profiles[column] = profileColumn(column, data)
	}

	return &schema.DatasetProfile{
		TotalRecords:     len(data),
		TotalColumns:     len(columns),
		ColumnProfiles:   profiles,
		ProfileTimestamp: p.now(),
		DatasetName:      datasetName,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
