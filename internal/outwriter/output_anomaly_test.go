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

// testAnomalies builds a pair of anomaly records for rendering tests.
func testAnomalies() []schema.AnomalyRecord {
	return []schema.AnomalyRecord{
		{
			RecordIndex:  5,
			Record:       schema.Record{"amount": 500},
			AnomalyValue: 500,
			AnomalyScore: 488.5,
			Reason:       "Value 500 outside IQR bounds [5.50, 17.50]",
		},
		{
			RecordIndex:  9,
			Record:       schema.Record{"amount": -80},
			AnomalyValue: -80,
			AnomalyScore: 91.5,
			Reason:       "Value -80 outside IQR bounds [5.50, 17.50]",
		},
	}
}

// TestWriteAnomalyTable tests the human-readable anomaly rendering.
func TestWriteAnomalyTable(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeAnomalyTable(&buf, testAnomalies(), testConfig(), fmtFloat, time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "IQR bounds")
	assert.Contains(t, out, "Found 2 anomalous records")
}

// TestWriteAnomalyTableEmpty tests rendering with no anomalies.
func TestWriteAnomalyTableEmpty(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeAnomalyTable(&buf, nil, testConfig(), fmtFloat, time.Millisecond)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 0 anomalous records")
}

// TestWriteAnomalyCSV tests the CSV anomaly rendering.
func TestWriteAnomalyCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	err := writeAnomalyCSV(&buf, testAnomalies(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "record_index")
	assert.True(t, strings.HasPrefix(lines[1], "1,5,500,488.50"))
	assert.True(t, strings.HasPrefix(lines[2], "2,9,-80,91.50"))
}
