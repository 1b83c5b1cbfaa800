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

// WriteProfileResults outputs a dataset profile, dispatching based on the
// output format configured.
func WriteProfileResults(profile *schema.DatasetProfile, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profile)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, profile, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTable(w, profile, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// sortedColumnNames returns the profile's column names in sorted order.
func sortedColumnNames(profile *schema.DatasetProfile) []string {
	columns := make([]string, 0, len(profile.ColumnProfiles))
	for name := range profile.ColumnProfiles {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

// writeProfileTable generates and writes the human-readable profile table.
func writeProfileTable(writer io.Writer, profile *schema.DatasetProfile, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Column", "Type", "Total", "Nulls", "Null%", "Distinct", "Mean", "StdDev", "Anomalies"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Column + Type + the six numeric columns with borders and padding.
	anomalyWidth := getMaxTableValueWidth(cfg, 75)

	var data [][]string
	totalAnomalies := 0
	for _, name := range sortedColumnNames(profile) {
		cp := profile.ColumnProfiles[name]
		totalAnomalies += len(cp.Anomalies)
		data = append(data, []string{
			name,
			string(cp.DataType),
			fmt.Sprintf(intFmt, cp.TotalCount),
			fmt.Sprintf(intFmt, cp.NullCount),
			fmtFloat(cp.NullPercentage),
			fmt.Sprintf(intFmt, cp.DistinctCount),
			fmtOptFloat(cp.MeanValue, fmtFloat),
			fmtOptFloat(cp.StdDev, fmtFloat),
			contract.TruncateValue(strings.Join(cp.Anomalies, "; "), anomalyWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	name := profile.DatasetName
	if name == "" {
		name = "dataset"
	}
	if _, err := fmt.Fprintf(writer, "Profiled %s: %d records across %d columns (%d column anomalies)\n",
		name, profile.TotalRecords, profile.TotalColumns, totalAnomalies); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Profiling completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeProfileCSV writes the per-column profile stats in CSV format.
func writeProfileCSV(w io.Writer, profile *schema.DatasetProfile, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"column",
		"data_type",
		"total_count",
		"null_count",
		"null_percentage",
		"distinct_count",
		"distinct_percentage",
		"min_value",
		"max_value",
		"mean_value",
		"median_value",
		"std_dev",
		"anomalies",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range sortedColumnNames(profile) {
			cp := profile.ColumnProfiles[name]
			rec := []string{
				name,
				string(cp.DataType),
				fmt.Sprintf(intFmt, cp.TotalCount),
				fmt.Sprintf(intFmt, cp.NullCount),
				fmtFloat(cp.NullPercentage),
				strconv.Itoa(cp.DistinctCount),
				fmtFloat(cp.DistinctPercentage),
				fmtOptFloat(cp.MinValue, fmtFloat),
				fmtOptFloat(cp.MaxValue, fmtFloat),
				fmtOptFloat(cp.MeanValue, fmtFloat),
				fmtOptFloat(cp.MedianValue, fmtFloat),
				fmtOptFloat(cp.StdDev, fmtFloat),
				strings.Join(cp.Anomalies, "|"),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
