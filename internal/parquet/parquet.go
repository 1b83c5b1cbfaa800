// Package parquet provides data structures and functions for exporting
// monitoring data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/driftwatch/schema"
	"github.com/parquet-go/parquet-go"
)

// Snapshot represents a single metric measurement.
// This struct maps to the driftwatch_snapshots database table.
type Snapshot struct {
	// MetricName identifies the metric this measurement belongs to
	MetricName string `parquet:"metric_name,snappy"`

	// RecordedAt is when the measurement was taken (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// Value is the measured value
	Value float64 `parquet:"value,snappy"`

	// Metadata contains the JSON-encoded measurement context (nullable)
	Metadata *string `parquet:"metadata,optional,snappy"`
}

// AlertRecord represents a fired alert.
// This struct maps to the driftwatch_alerts database table.
type AlertRecord struct {
	// AlertID is the unique identifier for this alert
	AlertID string `parquet:"alert_id,snappy"`

	// Severity is the alert severity (critical, warning, info)
	Severity string `parquet:"severity,snappy"`

	// MetricName identifies the metric that triggered the alert
	MetricName string `parquet:"metric_name,snappy"`

	// Message is the human-readable alert description
	Message string `parquet:"message,snappy"`

	// CurrentValue is the metric value that crossed the threshold
	CurrentValue float64 `parquet:"current_value,snappy"`

	// ThresholdValue is the configured threshold that was crossed
	ThresholdValue float64 `parquet:"threshold_value,snappy"`

	// CreatedAt is when the alert fired (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Recommendations contains the JSON-encoded remediation hints (nullable)
	Recommendations *string `parquet:"recommendations,optional,snappy"`
}

// WriteSnapshotsParquet writes a slice of Snapshot structs to a Parquet file.
func WriteSnapshotsParquet(data []Snapshot, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Snapshot struct tags
	writer := parquet.NewGenericWriter[Snapshot](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteAlertsParquet writes a slice of AlertRecord structs to a Parquet file.
func WriteAlertsParquet(data []AlertRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AlertRecord struct tags
	writer := parquet.NewGenericWriter[AlertRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSnapshots converts schema.MetricSnapshot to Snapshot for Parquet export.
func ConvertSnapshots(snapshots []schema.MetricSnapshot) []Snapshot {
	result := make([]Snapshot, len(snapshots))
	for i, snap := range snapshots {
		var metadata *string
		if len(snap.Metadata) > 0 {
			if encoded, err := json.Marshal(snap.Metadata); err == nil {
				s := string(encoded)
				metadata = &s
			}
		}
		result[i] = Snapshot{
			MetricName: snap.MetricName,
			RecordedAt: snap.Timestamp,
			Value:      snap.Value,
			Metadata:   metadata,
		}
	}
	return result
}

// ConvertAlerts converts schema.Alert to AlertRecord for Parquet export.
func ConvertAlerts(alerts []schema.Alert) []AlertRecord {
	result := make([]AlertRecord, len(alerts))
	for i, alert := range alerts {
		var recs *string
		if len(alert.Recommendations) > 0 {
			if encoded, err := json.Marshal(alert.Recommendations); err == nil {
				s := string(encoded)
				recs = &s
			}
		}
		result[i] = AlertRecord{
			AlertID:         alert.AlertID,
			Severity:        string(alert.Severity),
			MetricName:      alert.MetricName,
			Message:         alert.Message,
			CurrentValue:    alert.CurrentValue,
			ThresholdValue:  alert.ThresholdValue,
			CreatedAt:       alert.Timestamp,
			Recommendations: recs,
		}
	}
	return result
}
