package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/driftwatch/schema"
)

// TestReport tests metric summaries, trend rollups, and alert buckets.
func TestReport(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	recordSeries(clock, core, "steady", 10, 20, 30)
	core.Record("sparse", 7, clock.Now(), nil)

	core.CheckThresholds(map[string]float64{
		"orders_email_null_pct":       85, // warning
		"orders_amount_anomaly_count": 12, // critical
	})

	report := core.Report(DefaultReportTrendWindow)
	require.NotNil(t, report)

	assert.Equal(t, clock.Now(), report.Timestamp)
	assert.Equal(t, 2, report.MetricsTracked)
	assert.Equal(t, 2, report.ActiveAlerts)

	steady, ok := report.MetricSummary["steady"]
	require.True(t, ok)
	assert.Equal(t, 30.0, steady.LatestValue)
	assert.Equal(t, 3, steady.Measurements)

	// Trends only cover metrics with enough history.
	trend, ok := report.Trends["steady"]
	require.True(t, ok)
	assert.Equal(t, schema.TrendIncreasing, trend.Direction)
	_, ok = report.Trends["sparse"]
	assert.False(t, ok)

	assert.Equal(t, 1, report.AlertSummary[schema.SeverityCritical])
	assert.Equal(t, 1, report.AlertSummary[schema.SeverityWarning])
	assert.Equal(t, 0, report.AlertSummary[schema.SeverityInfo])
	assert.Len(t, report.RecentAlerts, 2)
}

// TestReportEmpty tests the report shape with no monitoring state.
func TestReportEmpty(t *testing.T) {
	core := New(DefaultAlertConfig())

	report := core.Report(DefaultReportTrendWindow)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.MetricsTracked)
	assert.Equal(t, 0, report.ActiveAlerts)
	assert.Empty(t, report.MetricSummary)
	assert.Empty(t, report.Trends)
	assert.Empty(t, report.RecentAlerts)

	// Severity buckets are always present.
	assert.Contains(t, report.AlertSummary, schema.SeverityCritical)
	assert.Contains(t, report.AlertSummary, schema.SeverityWarning)
	assert.Contains(t, report.AlertSummary, schema.SeverityInfo)
}

// TestReportTrendWindow tests that the trend window steers the rollup: a
// metric rising overall but dipping at the end reads as increasing over the
// full window and decreasing over a short one.
func TestReportTrendWindow(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	recordSeries(clock, core, "requests", 10, 20, 30, 25)

	wide := core.Report(4)
	require.Contains(t, wide.Trends, "requests")
	assert.Equal(t, schema.TrendIncreasing, wide.Trends["requests"].Direction)

	narrow := core.Report(2)
	require.Contains(t, narrow.Trends, "requests")
	assert.Equal(t, schema.TrendDecreasing, narrow.Trends["requests"].Direction)

	// Non-positive windows fall back to the default instead of erroring.
	fallback := core.Report(0)
	assert.Equal(t, schema.TrendIncreasing, fallback.Trends["requests"].Direction)
}

// TestReportRecentAlertWindow tests that stale alerts are counted in the
// severity buckets but excluded from the recent list.
func TestReportRecentAlertWindow(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	core.CheckThresholds(map[string]float64{"old_null_pct": 85})
	clock.Advance(25 * time.Hour)
	core.CheckThresholds(map[string]float64{"new_null_pct": 85})

	report := core.Report(DefaultReportTrendWindow)
	assert.Equal(t, 2, report.AlertSummary[schema.SeverityWarning])
	require.Len(t, report.RecentAlerts, 1)
	assert.Equal(t, "new_null_pct", report.RecentAlerts[0].Metric)
}
