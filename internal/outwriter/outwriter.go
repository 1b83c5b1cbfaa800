// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// command logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProfile prints a dataset profile using the configured output format.
func (ow *OutWriter) WriteProfile(profile *schema.DatasetProfile, cfg *contract.Config, duration time.Duration) error {
	return WriteProfileResults(profile, cfg, duration)
}

// WriteAnomalies prints anomaly search results using the configured output format.
func (ow *OutWriter) WriteAnomalies(records []schema.AnomalyRecord, cfg *contract.Config, duration time.Duration) error {
	return WriteAnomalyResults(records, cfg, duration)
}

// WriteDrift prints drift detection results using the configured output format.
func (ow *OutWriter) WriteDrift(results map[string]schema.DriftResult, cfg *contract.Config, duration time.Duration) error {
	return WriteDriftResults(results, cfg, duration)
}

// WriteReport prints a monitoring report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.MonitoringReport, cfg *contract.Config) error {
	return WriteReportResults(report, cfg)
}

// WriteHistory prints a metric history using the configured output format.
func (ow *OutWriter) WriteHistory(metric string, history []schema.MetricSnapshot, cfg *contract.Config) error {
	return WriteHistoryResults(metric, history, cfg)
}

// WriteAlerts prints fired alerts using the configured output format.
func (ow *OutWriter) WriteAlerts(alerts []schema.Alert, cfg *contract.Config) error {
	return WriteAlertResults(alerts, cfg)
}
