package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/driftwatch/schema"
)

// testDriftResults builds a drifted and a clean column result.
func testDriftResults() map[string]schema.DriftResult {
	return map[string]schema.DriftResult{
		"amount": {
			ColumnName:          "amount",
			HasDrift:            true,
			DriftScore:          0.45,
			NullPercentageDrift: 45.0,
			DriftDetails:        []string{"Null percentage changed by 45.0%"},
		},
		"status": {
			ColumnName:   "status",
			HasDrift:     false,
			DriftScore:   0.0,
			DriftDetails: []string{"No significant drift detected"},
		},
	}
}

// TestSortedDriftColumns tests score-descending ordering with name ties.
func TestSortedDriftColumns(t *testing.T) {
	results := testDriftResults()
	results["zeta"] = schema.DriftResult{ColumnName: "zeta", DriftScore: 0.0}

	columns := sortedDriftColumns(results)
	assert.Equal(t, []string{"amount", "status", "zeta"}, columns)
}

// TestWriteDriftTable tests the human-readable drift rendering.
func TestWriteDriftTable(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeDriftTable(&buf, testDriftResults(), testConfig(), fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "Clean")
	assert.Contains(t, out, "Null percentage changed by 45.0%")
	assert.Contains(t, out, "Drift detected in 1 of 2 columns")
}

// TestWriteDriftCSV tests the CSV drift rendering.
func TestWriteDriftCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	err := writeDriftCSV(&buf, testDriftResults(), fmtFloat, intFmt)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "drift_score")
	// The drifted column sorts first.
	assert.True(t, strings.HasPrefix(lines[1], "amount,true,Warning,0.45"))
	assert.True(t, strings.HasPrefix(lines[2], "status,false,Clean,0.00"))
}
