package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// WriteReportResults outputs a monitoring report, dispatching based on the
// output format configured.
func WriteReportResults(report *schema.MonitoringReport, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// sortedSummaryMetrics returns the report's metric names in sorted order.
func sortedSummaryMetrics(report *schema.MonitoringReport) []string {
	names := make([]string, 0, len(report.MetricSummary))
	for name := range report.MetricSummary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeReportTable generates and writes the human-readable report tables.
func writeReportTable(writer io.Writer, report *schema.MonitoringReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := "Monitoring Report"
	if cfg.UseEmojis {
		header = "📊 " + header
	}
	if _, err := fmt.Fprintf(writer, "%s (%s)\n", header, report.Timestamp.Format(contract.DateTimeFormat)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Latest", "Measurements", "Trend", "Rate", "Volatility"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, name := range sortedSummaryMetrics(report) {
		summary := report.MetricSummary[name]
		direction, rate, volatility := "-", "-", "-"
		if trend, ok := report.Trends[name]; ok {
			direction = string(trend.Direction)
			rate = fmtFloat(trend.RateOfChange)
			volatility = fmtFloat(trend.Volatility)
		}
		data = append(data, []string{
			name,
			fmtFloat(summary.LatestValue),
			strconv.Itoa(summary.Measurements),
			direction,
			rate,
			volatility,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Tracking %d metrics with %d active alerts (critical: %d, warning: %d, info: %d)\n",
		report.MetricsTracked, report.ActiveAlerts,
		report.AlertSummary[schema.SeverityCritical],
		report.AlertSummary[schema.SeverityWarning],
		report.AlertSummary[schema.SeverityInfo]); err != nil {
		return err
	}

	if len(report.RecentAlerts) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(writer, "Recent alerts (last 24h):"); err != nil {
		return err
	}
	for _, digest := range report.RecentAlerts {
		label := contract.GetPlainSeverityLabel(digest.Severity)
		if cfg.UseColors {
			label = contract.GetColorSeverityLabel(digest.Severity)
		}
		if _, err := fmt.Fprintf(writer, "  [%s] %s: %s\n", label, digest.Metric, digest.Message); err != nil {
			return err
		}
	}
	return nil
}

// writeReportCSV writes the per-metric report rows in CSV format.
func writeReportCSV(w io.Writer, report *schema.MonitoringReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"metric",
		"latest_value",
		"timestamp",
		"measurements",
		"trend_direction",
		"rate_of_change",
		"volatility",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range sortedSummaryMetrics(report) {
			summary := report.MetricSummary[name]
			direction, rate, volatility := "", "", ""
			if trend, ok := report.Trends[name]; ok {
				direction = string(trend.Direction)
				rate = fmtFloat(trend.RateOfChange)
				volatility = fmtFloat(trend.Volatility)
			}
			rec := []string{
				name,
				fmtFloat(summary.LatestValue),
				summary.Timestamp.Format(contract.DateTimeFormat),
				fmt.Sprintf(intFmt, summary.Measurements),
				direction,
				rate,
				volatility,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteHistoryResults outputs a metric history, dispatching based on the
// output format configured.
func WriteHistoryResults(metric string, history []schema.MetricSnapshot, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, history)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"metric", "timestamp", "value"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, snap := range history {
					rec := []string{
						snap.MetricName,
						snap.Timestamp.Format(contract.DateTimeFormat),
						fmtFloat(snap.Value),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, metric, history, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// writeHistoryTable generates and writes the human-readable history table.
func writeHistoryTable(writer io.Writer, metric string, history []schema.MetricSnapshot, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Timestamp", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, snap := range history {
		data = append(data, []string{
			snap.Timestamp.Format(contract.DateTimeFormat),
			fmtFloat(snap.Value),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d measurements for %s\n", len(history), metric)
	return err
}

// WriteAlertResults outputs fired alerts, dispatching based on the output
// format configured.
func WriteAlertResults(alerts []schema.Alert, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, alerts)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAlertCSV(w, alerts, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAlertTable(w, alerts, cfg, fmtFloat)
		}, "Wrote table")
	}
	return nil
}

// writeAlertTable generates and writes the human-readable alert table.
func writeAlertTable(writer io.Writer, alerts []schema.Alert, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(alerts) == 0 {
		msg := "No alerts fired"
		if cfg.UseEmojis {
			msg = "✅ " + msg
		}
		_, err := fmt.Fprintln(writer, msg)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Severity", "Metric", "Message", "Value", "Threshold"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Severity + Value + Threshold with borders and padding.
	messageWidth := getMaxTableValueWidth(cfg, 50)

	var data [][]string
	for _, alert := range alerts {
		label := contract.GetPlainSeverityLabel(alert.Severity)
		if cfg.UseColors {
			label = contract.GetColorSeverityLabel(alert.Severity)
		}
		data = append(data, []string{
			label,
			alert.MetricName,
			contract.TruncateValue(alert.Message, messageWidth),
			fmtFloat(alert.CurrentValue),
			fmtFloat(alert.ThresholdValue),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "%d alerts fired\n", len(alerts))
	return err
}

// writeAlertCSV writes the alerts in CSV format.
func writeAlertCSV(w io.Writer, alerts []schema.Alert, fmtFloat func(float64) string) error {
	header := []string{
		"alert_id",
		"severity",
		"metric",
		"message",
		"current_value",
		"threshold_value",
		"timestamp",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, alert := range alerts {
			rec := []string{
				alert.AlertID,
				string(alert.Severity),
				alert.MetricName,
				alert.Message,
				fmtFloat(alert.CurrentValue),
				fmtFloat(alert.ThresholdValue),
				alert.Timestamp.Format(contract.DateTimeFormat),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
