package monitor

import (
	"time"

	"github.com/huangsam/driftwatch/schema"
)

// Report window parameters.
const (
	DefaultReportTrendWindow = 10

	reportMinDataPoints = 3
	recentAlertLimit    = 50
	recentAlertWindow   = 24 * time.Hour
)

// Report builds a point-in-time summary of all monitoring state: per-metric
// latest values, trend rollups for metrics with enough history, alert counts
// by severity, and the most recent alerts from the last 24 hours. The trend
// window is capped per metric at its history length; non-positive values fall
// back to DefaultReportTrendWindow.
func (c *Core) Report(trendWindow int) *schema.MonitoringReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	if trendWindow <= 0 {
		trendWindow = DefaultReportTrendWindow
	}

	now := c.now()
	report := &schema.MonitoringReport{
		Timestamp:      now,
		MetricsTracked: len(c.history),
		ActiveAlerts:   len(c.alerts),
		MetricSummary:  make(map[string]schema.MetricSummary, len(c.history)),
		Trends:         make(map[string]schema.TrendSummary),
		AlertSummary: map[schema.Severity]int{
			schema.SeverityCritical: 0,
			schema.SeverityWarning:  0,
			schema.SeverityInfo:     0,
		},
	}

	for name, history := range c.history {
		if len(history) == 0 {
			continue
		}
		latest := history[len(history)-1]
		report.MetricSummary[name] = schema.MetricSummary{
			LatestValue:  latest.Value,
			Timestamp:    latest.Timestamp,
			Measurements: len(history),
		}

		if len(history) >= reportMinDataPoints {
			window := trendWindow
			if len(history) < window {
				window = len(history)
			}
			trend := c.detectTrend(name, window)
			if trend.Status == schema.TrendSuccess {
				report.Trends[name] = schema.TrendSummary{
					Direction:    trend.Direction,
					RateOfChange: trend.RateOfChange,
					Volatility:   trend.Volatility,
				}
			}
		}
	}

	recentCutoff := now.Add(-recentAlertWindow)
	for _, alert := range c.alerts {
		report.AlertSummary[alert.Severity]++
		if len(report.RecentAlerts) >= recentAlertLimit {
			continue
		}
		if !alert.Timestamp.Before(recentCutoff) {
			report.RecentAlerts = append(report.RecentAlerts, schema.AlertDigest{
				Severity:  alert.Severity,
				Metric:    alert.MetricName,
				Message:   alert.Message,
				Timestamp: alert.Timestamp,
			})
		}
	}

	return report
}
