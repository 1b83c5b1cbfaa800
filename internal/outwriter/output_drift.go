package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// WriteDriftResults outputs drift detection results, dispatching based on the
// output format configured.
func WriteDriftResults(results map[string]schema.DriftResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDriftCSV(w, results, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDriftTable(w, results, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// sortedDriftColumns returns column names sorted by drift score descending,
// ties broken by name, so the most drifted columns surface first.
func sortedDriftColumns(results map[string]schema.DriftResult) []string {
	columns := make([]string, 0, len(results))
	for name := range results {
		columns = append(columns, name)
	}
	sort.Slice(columns, func(i, j int) bool {
		si, sj := results[columns[i]].DriftScore, results[columns[j]].DriftScore
		if si != sj {
			return si > sj
		}
		return columns[i] < columns[j]
	})
	return columns
}

// driftLabel picks the colored or plain label based on config.
func driftLabel(r schema.DriftResult, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorDriftLabel(r.HasDrift, r.DriftScore)
	}
	return contract.GetPlainDriftLabel(r.HasDrift, r.DriftScore)
}

// writeDriftTable generates and writes the human-readable drift table.
func writeDriftTable(writer io.Writer, results map[string]schema.DriftResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Column", "Label", "Score", "Null% Drift", "Details"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Column + Label + the two score columns with borders and padding.
	detailWidth := getMaxTableValueWidth(cfg, 55)

	var data [][]string
	drifted := 0
	for _, name := range sortedDriftColumns(results) {
		r := results[name]
		if r.HasDrift {
			drifted++
		}
		data = append(data, []string{
			name,
			driftLabel(r, cfg),
			fmtFloat(r.DriftScore),
			fmtFloat(r.NullPercentageDrift),
			contract.TruncateValue(strings.Join(r.DriftDetails, "; "), detailWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Drift detected in %d of %d columns\n", drifted, len(results)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Drift detection completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeDriftCSV writes the drift results in CSV format.
func writeDriftCSV(w io.Writer, results map[string]schema.DriftResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"column",
		"has_drift",
		"label",
		"drift_score",
		"null_percentage_drift",
		"distinct_count_drift",
		"value_distribution_drift",
		"details",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range sortedDriftColumns(results) {
			r := results[name]
			rec := []string{
				name,
				strconv.FormatBool(r.HasDrift),
				contract.GetPlainDriftLabel(r.HasDrift, r.DriftScore),
				fmtFloat(r.DriftScore),
				fmtFloat(r.NullPercentageDrift),
				fmt.Sprintf(intFmt, r.DistinctCountDrift),
				fmtFloat(r.ValueDistributionDrift),
				strings.Join(r.DriftDetails, "|"),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
