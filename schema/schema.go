// Package schema has configs, models and shared constants for all parts of driftwatch.
package schema

import "time"

// Record is a single row of a tabular dataset, mapping field names to values.
// Values may be nil, bool, numeric, string, or nested sequences/mappings
// decoded from JSON sources.
type Record map[string]any

// ValueCount is one (value, frequency) pair in a column's top-value summary.
// Values are stored in their canonical string form so that unhashable inputs
// (sequences, nested mappings) can still be counted.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile holds the per-column statistics computed during one dataset pass.
// Numeric stats are pointers so that "not computed" is distinguishable from zero.
// For string columns the min/max/mean stats describe value lengths.
type ColumnProfile struct {
	ColumnName         string   `json:"column_name"`
	DataType           DataType `json:"data_type"`
	TotalCount         int      `json:"total_count"`
	NullCount          int      `json:"null_count"`
	NullPercentage     float64  `json:"null_percentage"`
	DistinctCount      int      `json:"distinct_count"`
	DistinctPercentage float64  `json:"distinct_percentage"`

	MinValue    *float64 `json:"min_value,omitempty"`
	MaxValue    *float64 `json:"max_value,omitempty"`
	MeanValue   *float64 `json:"mean_value,omitempty"`
	MedianValue *float64 `json:"median_value,omitempty"`
	StdDev      *float64 `json:"std_dev,omitempty"` // sample stddev (n-1 divisor)

	TopValues []ValueCount `json:"top_values,omitempty"`

	// Anomalies is nil when no heuristic fired, never an empty slice. This lets
	// callers distinguish "checked, clean" from "not computed".
	Anomalies []string `json:"anomalies,omitempty"`
}

// DatasetProfile is the complete profile for one dataset. It is immutable once
// built; callers persist or discard it.
type DatasetProfile struct {
	TotalRecords     int                       `json:"total_records"`
	TotalColumns     int                       `json:"total_columns"`
	ColumnProfiles   map[string]*ColumnProfile `json:"column_profiles"`
	ProfileTimestamp time.Time                 `json:"profile_timestamp"`
	DatasetName      string                    `json:"dataset_name,omitempty"`
}
