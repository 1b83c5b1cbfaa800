package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// WriteAnomalyResults outputs anomaly search results, dispatching based on the
// output format configured.
func WriteAnomalyResults(records []schema.AnomalyRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnomalyCSV(w, records, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnomalyTable(w, records, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeAnomalyTable generates and writes the human-readable anomaly table.
func writeAnomalyTable(writer io.Writer, records []schema.AnomalyRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Record", "Value", "Score", "Reason"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Rank + Record + Value + Score with borders and padding.
	reasonWidth := getMaxTableValueWidth(cfg, 45)

	var data [][]string
	for i, r := range records {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.RecordIndex),
			fmt.Sprintf("%v", r.AnomalyValue),
			fmtFloat(r.AnomalyScore),
			contract.TruncateValue(r.Reason, reasonWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Found %d anomalous records\n", len(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Anomaly search completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeAnomalyCSV writes the anomaly results in CSV format.
func writeAnomalyCSV(w io.Writer, records []schema.AnomalyRecord, fmtFloat func(float64) string) error {
	header := []string{"rank", "record_index", "value", "score", "reason"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, r := range records {
			rec := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(r.RecordIndex),
				fmt.Sprintf("%v", r.AnomalyValue),
				fmtFloat(r.AnomalyScore),
				r.Reason,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
