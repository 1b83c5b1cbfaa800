package schema

import (
	"fmt"
	"time"
)

// MetricSnapshot is a single metric measurement at a point in time.
// Snapshots are immutable once recorded.
type MetricSnapshot struct {
	Timestamp  time.Time      `json:"timestamp"`
	MetricName string         `json:"metric_name"`
	Value      float64        `json:"value"`
	Metadata   map[string]any `json:"metadata"`
}

// Alert is emitted when a metric crosses a configured threshold. Alerts are
// immutable once created; the active-alert list is a capped log, not a
// lifecycle state machine.
type Alert struct {
	Severity        Severity  `json:"severity"`
	MetricName      string    `json:"metric_name"`
	Message         string    `json:"message"`
	CurrentValue    float64   `json:"current_value"`
	ThresholdValue  float64   `json:"threshold_value"`
	Timestamp       time.Time `json:"timestamp"`
	Recommendations []string  `json:"recommendations"`
	AlertID         string    `json:"alert_id"`
}

// NewAlertID derives the identifier for an alert from its components.
func NewAlertID(severity Severity, metricName string, ts time.Time) string {
	return fmt.Sprintf("%s_%s_%s", severity, metricName, ts.Format(time.RFC3339))
}

// TrendResult describes the direction and velocity of a metric over a sliding
// window. Only Status and Message are meaningful unless Status is TrendSuccess.
type TrendResult struct {
	Status        TrendStatus    `json:"status"`
	Message       string         `json:"message,omitempty"`
	Direction     TrendDirection `json:"direction,omitempty"`
	RateOfChange  float64        `json:"rate_of_change"`
	Volatility    float64        `json:"volatility"` // population stddev (n divisor)
	CurrentValue  float64        `json:"current_value"`
	PreviousValue float64        `json:"previous_value"`
	MeanValue     float64        `json:"mean_value"`
	DataPoints    int            `json:"data_points"`
	WindowStart   time.Time      `json:"window_start"`
	WindowEnd     time.Time      `json:"window_end"`
}

// MetricSummary is the per-metric rollup included in a monitoring report.
type MetricSummary struct {
	LatestValue  float64   `json:"latest_value"`
	Timestamp    time.Time `json:"timestamp"`
	Measurements int       `json:"measurements"`
}

// TrendSummary is the per-metric trend rollup included in a monitoring report.
type TrendSummary struct {
	Direction    TrendDirection `json:"direction"`
	RateOfChange float64        `json:"rate_of_change"`
	Volatility   float64        `json:"volatility"`
}

// AlertDigest is the abbreviated alert form included in a monitoring report.
type AlertDigest struct {
	Severity  Severity  `json:"severity"`
	Metric    string    `json:"metric"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MonitoringReport is a point-in-time summary of monitoring state.
type MonitoringReport struct {
	Timestamp      time.Time                `json:"timestamp"`
	MetricsTracked int                      `json:"metrics_tracked"`
	ActiveAlerts   int                      `json:"active_alerts"`
	MetricSummary  map[string]MetricSummary `json:"metric_summary"`
	Trends         map[string]TrendSummary  `json:"trends"`
	AlertSummary   map[Severity]int         `json:"alert_summary"`
	RecentAlerts   []AlertDigest            `json:"recent_alerts"`
}

// ExportEnvelope is the persisted JSON form of monitoring state.
type ExportEnvelope struct {
	ExportTimestamp time.Time                   `json:"export_timestamp"`
	Metrics         map[string][]MetricSnapshot `json:"metrics"`
	Alerts          []Alert                     `json:"alerts"`
}

// ArchiveStatus represents the status of the SQL archive store.
type ArchiveStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalSnapshots int              `json:"total_snapshots"`
	TotalAlerts    int              `json:"total_alerts"`
	LastSnapshot   time.Time        `json:"last_snapshot"`
	OldestSnapshot time.Time        `json:"oldest_snapshot"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}
