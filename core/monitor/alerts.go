package monitor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// distinctTrendWindow is the window used for the distinct-count trend rule.
const distinctTrendWindow = 5

// distinctDropRate is the rate-of-change below which a decreasing distinct
// count is considered a significant drop.
const distinctDropRate = -10.0

// Fixed recommendation sets per rule type.
var (
	nullPctRecommendations = []string{
		"Review data collection process",
		"Check for upstream pipeline issues",
		"Verify data source availability",
	}
	anomalyCountRecommendations = []string{
		"Investigate data source for corruption",
		"Review recent pipeline changes",
		"Check for fraudulent or malicious activity",
	}
	distinctCountRecommendations = []string{
		"Check for data source changes",
		"Verify data pipeline functionality",
		"Review data transformation logic",
	}
)

// CheckThresholds evaluates a batch of metrics against the configured rules
// and returns the alerts fired. Rules are dispatched by metric-name suffix
// convention: null_pct, anomaly_count, then distinct_count; first match wins.
// A metric whose alert fired within the rate-limit window is skipped entirely.
func (c *Core) CheckThresholds(metrics map[string]float64) []schema.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	// Deterministic evaluation order regardless of map iteration.
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var fired []schema.Alert
	for _, name := range names {
		value := metrics[name]
		if !isFiniteValue(value) {
			contract.Warnf("Skipping invalid metric value for %s: %v", name, value)
			continue
		}
		// Rate-limit check and arm both happen under the Core lock, so two
		// concurrent batches cannot double-fire for the same metric.
		if !c.shouldAlert(name, now) {
			continue
		}

		switch {
		case strings.Contains(name, "null_pct"):
			if value > c.cfg.NullPercentageThreshold {
				fired = append(fired, c.newAlert(
					schema.SeverityWarning, name,
					fmt.Sprintf("High null percentage detected: %.2f%%", value),
					value, c.cfg.NullPercentageThreshold, nullPctRecommendations))
			}

		case strings.Contains(name, "anomaly_count"):
			if value > c.cfg.AnomalyCountThreshold {
				fired = append(fired, c.newAlert(
					schema.SeverityCritical, name,
					fmt.Sprintf("Excessive anomalies detected: %d records", int(value)),
					value, c.cfg.AnomalyCountThreshold, anomalyCountRecommendations))
			}

		case strings.Contains(name, "distinct_count"):
			trend := c.detectTrend(name, distinctTrendWindow)
			if trend.Status == schema.TrendSuccess &&
				trend.Direction == schema.TrendDecreasing &&
				trend.RateOfChange < distinctDropRate {
				fired = append(fired, c.newAlert(
					schema.SeverityWarning, name,
					fmt.Sprintf("Distinct value count decreasing: %.1f per measurement", trend.RateOfChange),
					value, trend.PreviousValue, distinctCountRecommendations))
			}
		}
	}

	c.alerts = append(c.alerts, fired...)
	c.enforceAlertLimit()
	return fired
}

// Alerts returns a copy of the active-alert list, oldest first.
func (c *Core) Alerts() []schema.Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]schema.Alert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

// shouldAlert consults the rate-limit table. It does not arm the timestamp;
// newAlert does that once an alert is actually created.
func (c *Core) shouldAlert(metricName string, now time.Time) bool {
	last, ok := c.lastAlert[metricName]
	if !ok {
		return true
	}
	return now.Sub(last) >= c.cfg.AlertRateLimit
}

// newAlert builds an immutable Alert, truncating over-long messages, capping
// recommendations, and arming the rate-limit timestamp for the metric.
func (c *Core) newAlert(severity schema.Severity, metricName, message string, current, threshold float64, recommendations []string) schema.Alert {
	if _, ok := schema.ValidSeverities[severity]; !ok {
		severity = schema.SeverityInfo
	}
	if len(message) > schema.MaxAlertMessageLength {
		message = message[:schema.MaxAlertMessageLength-3] + "..."
	}
	if len(recommendations) > schema.MaxRecommendations {
		recommendations = recommendations[:schema.MaxRecommendations]
	}

	now := c.now()
	c.lastAlert[metricName] = now

	return schema.Alert{
		Severity:        severity,
		MetricName:      metricName,
		Message:         message,
		CurrentValue:    current,
		ThresholdValue:  threshold,
		Timestamp:       now,
		Recommendations: recommendations,
		AlertID:         schema.NewAlertID(severity, metricName, now),
	}
}

// enforceAlertLimit caps the active-alert list, evicting oldest first.
func (c *Core) enforceAlertLimit() {
	if len(c.alerts) <= c.maxAlerts {
		return
	}
	contract.Warnf("Alert memory limit reached (%d alerts), pruning old alerts", len(c.alerts))
	c.alerts = append([]schema.Alert(nil), c.alerts[len(c.alerts)-c.maxAlerts:]...)
}
