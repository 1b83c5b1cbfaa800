package schema

// DriftResult compares one baseline column against the same column in a newer
// sample. DriftScore is in [0,1]; 1.0 is reserved for columns that appeared in
// or disappeared from the sample entirely.
type DriftResult struct {
	ColumnName             string   `json:"column_name"`
	HasDrift               bool     `json:"has_drift"`
	DriftScore             float64  `json:"drift_score"`
	NullPercentageDrift    float64  `json:"null_percentage_drift"`    // absolute delta in percentage points
	DistinctCountDrift     int      `json:"distinct_count_drift"`     // absolute delta in distinct values
	ValueDistributionDrift float64  `json:"value_distribution_drift"` // total-variation distance in [0,1]
	DriftDetails           []string `json:"drift_details"`
}

// AnomalyRecord is one record flagged by an anomaly search, with enough context
// to trace it back to the source dataset.
type AnomalyRecord struct {
	RecordIndex  int     `json:"record_index"`
	Record       Record  `json:"record"`
	AnomalyValue float64 `json:"anomaly_value"`
	AnomalyScore float64 `json:"anomaly_score"`
	Reason       string  `json:"reason"`
}
