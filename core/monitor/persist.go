package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/driftwatch/schema"
)

// Export writes all monitoring state to a JSON file. A .json suffix is added
// when missing. The state is snapshotted under the lock and written outside
// it, so exports never block concurrent producers on file I/O.
func (c *Core) Export(path string) error {
	if filepath.Ext(path) != ".json" {
		path += ".json"
	}

	envelope := c.exportEnvelope()
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metrics export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metrics export: %w", err)
	}
	return nil
}

// exportEnvelope snapshots the monitoring state into its persisted form.
func (c *Core) exportEnvelope() schema.ExportEnvelope {
	c.mu.Lock()
	defer c.mu.Unlock()

	metrics := make(map[string][]schema.MetricSnapshot, len(c.history))
	for name, history := range c.history {
		metrics[name] = append([]schema.MetricSnapshot(nil), history...)
	}
	return schema.ExportEnvelope{
		ExportTimestamp: c.now(),
		Metrics:         metrics,
		Alerts:          append([]schema.Alert(nil), c.alerts...),
	}
}

// Import loads monitoring state from a JSON export. Histories for metrics
// present in the file replace the in-memory ones wholesale; alerts are
// appended to the active list. Memory and alert caps are re-applied after the
// merge. A missing or malformed file leaves state untouched.
func (c *Core) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read metrics import: %w", err)
	}
	var envelope schema.ExportEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to parse metrics import: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for name, snapshots := range envelope.Metrics {
		c.history[name] = snapshots
	}
	c.alerts = append(c.alerts, envelope.Alerts...)

	c.enforceMemoryLimit()
	c.enforceAlertLimit()
	return nil
}
