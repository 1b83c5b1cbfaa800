package contract

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/driftwatch/schema"
)

// LoadDataset loads a tabular dataset from a CSV, JSON, or JSONL file,
// dispatching on the file extension. Record order follows file order.
func LoadDataset(filePath string) ([]schema.Record, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return LoadCSV(filePath)
	case ".json":
		return LoadJSON(filePath)
	case ".jsonl":
		return LoadJSONL(filePath)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}
}

// LoadCSV loads a CSV file with a header row as a list of records.
// Cell values are coerced to bool, int, or float where possible; empty
// cells become empty strings, which the profiler treats as null.
func LoadCSV(filePath string) ([]schema.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	data := make([]schema.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(schema.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = coerceCell(row[i])
			} else {
				record[name] = ""
			}
		}
		data = append(data, record)
	}
	return data, nil
}

// LoadJSON loads a JSON file holding an array of objects.
func LoadJSON(filePath string) ([]schema.Record, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open json: %w", err)
	}

	var data []schema.Record
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return data, nil
}

// LoadJSONL loads a JSON Lines file, one object per line.
// Blank lines are skipped.
func LoadJSONL(filePath string) ([]schema.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open jsonl: %w", err)
	}
	defer func() { _ = f.Close() }()

	var data []schema.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record schema.Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("parse jsonl line %d: %w", lineNum, err)
		}
		data = append(data, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl: %w", err)
	}
	return data, nil
}

// LoadBaselineProfile loads a previously saved dataset profile from JSON.
func LoadBaselineProfile(filePath string) (*schema.DatasetProfile, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open baseline: %w", err)
	}

	var profile schema.DatasetProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	return &profile, nil
}

// coerceCell converts a raw CSV cell into a typed value.
// Tries bool, int, and float in that order; everything else stays a string.
func coerceCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return cell
}
