package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/driftwatch/internal/contract"
	"github.com/huangsam/driftwatch/schema"
)

// testConfig returns a config suitable for rendering tests.
func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 2,
		Width:     120,
	}
}

// floatPtr returns a pointer to the given float.
func floatPtr(v float64) *float64 {
	return &v
}

// testProfile builds a two-column profile for rendering tests.
func testProfile() *schema.DatasetProfile {
	return &schema.DatasetProfile{
		DatasetName:  "orders",
		TotalRecords: 50,
		TotalColumns: 2,
		ColumnProfiles: map[string]*schema.ColumnProfile{
			"amount": {
				ColumnName:         "amount",
				DataType:           schema.FloatType,
				TotalCount:         50,
				NullCount:          5,
				NullPercentage:     10.0,
				DistinctCount:      40,
				DistinctPercentage: 80.0,
				MinValue:           floatPtr(1.5),
				MaxValue:           floatPtr(99.9),
				MeanValue:          floatPtr(42.75),
				MedianValue:        floatPtr(40.0),
				StdDev:             floatPtr(12.5),
			},
			"status": {
				ColumnName:         "status",
				DataType:           schema.StringType,
				TotalCount:         50,
				NullCount:          30,
				NullPercentage:     60.0,
				DistinctCount:      3,
				DistinctPercentage: 6.0,
				Anomalies:          []string{"High null percentage (60.0%)"},
			},
		},
	}
}

// TestWriteProfileTable tests the human-readable profile rendering.
func TestWriteProfileTable(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	err := writeProfileTable(&buf, testProfile(), testConfig(), fmtFloat, intFmt, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "amount")
	assert.Contains(t, out, "status")
	assert.Contains(t, out, "42.75")
	assert.Contains(t, out, "High null percentage")
	assert.Contains(t, out, "Profiled orders: 50 records across 2 columns (1 column anomalies)")
}

// TestWriteProfileCSV tests the CSV profile rendering.
func TestWriteProfileCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	err := writeProfileCSV(&buf, testProfile(), fmtFloat, intFmt)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 columns

	assert.Contains(t, lines[0], "null_percentage")
	// Columns are sorted, so amount comes first.
	assert.True(t, strings.HasPrefix(lines[1], "amount,float,50,5,10.00,40"))
	assert.Contains(t, lines[2], "High null percentage (60.0%)")

	// Unset numeric stats render as a dash.
	assert.Contains(t, lines[2], ",-,")
}

// TestFmtOptFloat tests the optional float formatter.
func TestFmtOptFloat(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	assert.Equal(t, "-", fmtOptFloat(nil, fmtFloat))
	assert.Equal(t, "2.5", fmtOptFloat(floatPtr(2.5), fmtFloat))
}
