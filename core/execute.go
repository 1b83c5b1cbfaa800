// Package core orchestrates the profiling and monitoring commands, gluing the
// profiler and monitor engines to dataset loading, rendering, and storage.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/driftwatch/core/monitor"
	"github.com/huangsam/driftwatch/core/profiler"
	"github.com/huangsam/driftwatch/internal/archive"
	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/internal/outwriter"
	"github.com/huangsam/driftwatch/internal/parquet"
	"github.com/huangsam/driftwatch/schema"
)

// ExecuteProfile profiles a dataset and renders the result.
func ExecuteProfile(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	data, err := contract.LoadDataset(cfg.DataFile)
	if err != nil {
		return err
	}

	p := profiler.New(profiler.WithDriftThreshold(cfg.DriftThreshold))
	profile, err := p.Profile(data, datasetName(cfg))
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteProfile(profile, cfg, time.Since(start))
}

// ExecuteAnomalies searches a single column for anomalous records.
func ExecuteAnomalies(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	if cfg.Column == "" {
		return errors.New("--column is required for anomaly search")
	}

	data, err := contract.LoadDataset(cfg.DataFile)
	if err != nil {
		return err
	}

	p := profiler.New()
	records := p.FindAnomalies(data, cfg.Column, cfg.Method)

	ow := outwriter.NewOutWriter()
	return ow.WriteAnomalies(records, cfg, time.Since(start))
}

// ExecuteDrift compares a dataset against a saved baseline profile.
func ExecuteDrift(_ context.Context, cfg *contract.Config) error {
	start := time.Now()

	if cfg.BaselinePath == "" {
		return errors.New("--baseline is required for drift detection")
	}

	baseline, err := contract.LoadBaselineProfile(cfg.BaselinePath)
	if err != nil {
		return err
	}
	data, err := contract.LoadDataset(cfg.DataFile)
	if err != nil {
		return err
	}

	p := profiler.New(profiler.WithDriftThreshold(cfg.DriftThreshold))
	results, err := p.DetectDrift(baseline, data)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteDrift(results, cfg, time.Since(start))
}

// ExecuteTrack profiles a dataset, records the derived quality metrics into
// the monitoring state, checks alert thresholds, and saves the state back.
func ExecuteTrack(_ context.Context, cfg *contract.Config) error {
	data, err := contract.LoadDataset(cfg.DataFile)
	if err != nil {
		return err
	}

	p := profiler.New(profiler.WithDriftThreshold(cfg.DriftThreshold))
	name := datasetName(cfg)
	profile, err := p.Profile(data, name)
	if err != nil {
		return err
	}

	// First run has no state file yet
	core, err := loadStateCore(cfg, true)
	if err != nil {
		return err
	}

	metrics, err := core.TrackProfile(profile, name)
	if err != nil {
		return err
	}
	fired := core.CheckThresholds(metrics)

	if err := core.Export(cfg.StatePath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Tracked %d metrics for %s\n", len(metrics), name)
	ow := outwriter.NewOutWriter()
	return ow.WriteAlerts(fired, cfg)
}

// ExecuteReport renders a monitoring report from saved state.
func ExecuteReport(_ context.Context, cfg *contract.Config) error {
	core, err := loadStateCore(cfg, false)
	if err != nil {
		return err
	}

	ow := outwriter.NewOutWriter()
	return ow.WriteReport(core.Report(cfg.TrendWindow), cfg)
}

// ExecuteHistory renders the measurement history of a single metric.
func ExecuteHistory(_ context.Context, cfg *contract.Config) error {
	if cfg.Metric == "" {
		return errors.New("--metric is required for history")
	}

	core, err := loadStateCore(cfg, false)
	if err != nil {
		return err
	}

	history := core.History(cfg.Metric, cfg.HistoryLimit)
	ow := outwriter.NewOutWriter()
	return ow.WriteHistory(cfg.Metric, history, cfg)
}

// ExecutePrune removes measurements older than the cutoff and saves the state.
func ExecutePrune(_ context.Context, cfg *contract.Config) error {
	core, err := loadStateCore(cfg, false)
	if err != nil {
		return err
	}

	removed := core.PruneOlderThan(cfg.PruneDays)
	if err := core.Export(cfg.StatePath); err != nil {
		return err
	}

	fmt.Printf("Pruned %d measurements older than %d days\n", removed, cfg.PruneDays)
	return nil
}

// ExecuteExport exports the monitoring state to JSON or Parquet files.
func ExecuteExport(_ context.Context, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for export")
	}

	core, err := loadStateCore(cfg, false)
	if err != nil {
		return err
	}

	if cfg.Format == schema.ParquetOut {
		return exportParquet(core, cfg.OutputFile)
	}

	if err := core.Export(cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d metrics to: %s\n", len(core.MetricNames()), cfg.OutputFile)
	return nil
}

// exportParquet writes the metric snapshots and alerts as a pair of Parquet
// files next to the requested output path.
func exportParquet(core *monitor.Core, outputFile string) error {
	snapshots := collectSnapshots(core)
	alerts := core.Alerts()

	base := strings.TrimSuffix(outputFile, filepath.Ext(outputFile))

	snapshotsFile := base + ".snapshots.parquet"
	if err := parquet.WriteSnapshotsParquet(parquet.ConvertSnapshots(snapshots), snapshotsFile); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	fmt.Printf("Exported %d snapshots to: %s\n", len(snapshots), snapshotsFile)

	alertsFile := base + ".alerts.parquet"
	if err := parquet.WriteAlertsParquet(parquet.ConvertAlerts(alerts), alertsFile); err != nil {
		return fmt.Errorf("failed to write alerts: %w", err)
	}
	fmt.Printf("Exported %d alerts to: %s\n", len(alerts), alertsFile)

	return nil
}

// ExecuteArchivePush saves the monitoring state into the SQL archive.
func ExecuteArchivePush(_ context.Context, cfg *contract.Config) error {
	core, err := loadStateCore(cfg, false)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snapshots := collectSnapshots(core)
	if err := store.SaveSnapshots(snapshots); err != nil {
		return fmt.Errorf("failed to archive snapshots: %w", err)
	}
	alerts := core.Alerts()
	if err := store.SaveAlerts(alerts); err != nil {
		return fmt.Errorf("failed to archive alerts: %w", err)
	}

	fmt.Printf("Archived %d snapshots and %d alerts to %s backend\n", len(snapshots), len(alerts), cfg.ArchiveBackend)
	return nil
}

// ExecuteArchiveStatus prints archive statistics and connection details.
func ExecuteArchiveStatus(_ context.Context, cfg *contract.Config) error {
	store, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	status, err := store.Status()
	if err != nil {
		return fmt.Errorf("failed to get archive status: %w", err)
	}
	archive.PrintArchiveStatus(status)
	return nil
}

// loadStateCore builds a monitoring core and imports the saved state from the
// configured path. A missing state file is an error unless optional.
func loadStateCore(cfg *contract.Config, optional bool) (*monitor.Core, error) {
	if cfg.StatePath == "" {
		return nil, errors.New("--state is required")
	}

	core := newMonitorCore(cfg)
	if _, err := os.Stat(cfg.StatePath); err != nil {
		if optional && os.IsNotExist(err) {
			return core, nil
		}
		return nil, fmt.Errorf("cannot read state file %s: %w", cfg.StatePath, err)
	}
	if err := core.Import(cfg.StatePath); err != nil {
		return nil, err
	}
	return core, nil
}

// newMonitorCore builds a monitoring core from the validated configuration.
func newMonitorCore(cfg *contract.Config) *monitor.Core {
	alertCfg := monitor.AlertConfig{
		NullPercentageThreshold: cfg.NullThreshold,
		AnomalyCountThreshold:   cfg.AnomalyThreshold,
		DriftScoreThreshold:     cfg.DriftThreshold,
		AlertChannels:           cfg.AlertChannels,
		AlertRateLimit:          time.Duration(cfg.RateLimitSeconds) * time.Second,
	}
	return monitor.New(alertCfg)
}

// collectSnapshots flattens every tracked metric history, oldest first.
func collectSnapshots(core *monitor.Core) []schema.MetricSnapshot {
	var snapshots []schema.MetricSnapshot
	for _, name := range core.MetricNames() {
		snapshots = append(snapshots, core.History(name, contract.MaxHistoryLimit)...)
	}
	return snapshots
}

// datasetName resolves the dataset name, falling back to the data file stem.
func datasetName(cfg *contract.Config) string {
	if cfg.DatasetName != "" {
		return cfg.DatasetName
	}
	base := filepath.Base(cfg.DataFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
