package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/driftwatch/schema"
)

// TestGetPlainSeverityLabel tests label selection per severity.
func TestGetPlainSeverityLabel(t *testing.T) {
	assert.Equal(t, CriticalValue, GetPlainSeverityLabel(schema.SeverityCritical))
	assert.Equal(t, WarningValue, GetPlainSeverityLabel(schema.SeverityWarning))
	assert.Equal(t, InfoValue, GetPlainSeverityLabel(schema.SeverityInfo))
	assert.Equal(t, InfoValue, GetPlainSeverityLabel(schema.Severity("bogus")))
}

// TestGetPlainDriftLabel tests drift label thresholds.
func TestGetPlainDriftLabel(t *testing.T) {
	assert.Equal(t, CleanValue, GetPlainDriftLabel(false, 0.0))
	assert.Equal(t, WarningValue, GetPlainDriftLabel(true, 0.2))
	assert.Equal(t, CriticalValue, GetPlainDriftLabel(true, 0.5))
	assert.Equal(t, CriticalValue, GetPlainDriftLabel(true, 1.0))
}

// TestGetColorSeverityLabel tests that colored labels carry the plain text.
func TestGetColorSeverityLabel(t *testing.T) {
	assert.Contains(t, GetColorSeverityLabel(schema.SeverityCritical), CriticalValue)
	assert.Contains(t, GetColorSeverityLabel(schema.SeverityWarning), WarningValue)
	assert.Contains(t, GetColorDriftLabel(false, 0.0), CleanValue)
}

// TestParseBoolString tests boolean string parsing.
func TestParseBoolString(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBoolString(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTruncateValue tests display value truncation.
func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", TruncateValue("short", 10))
	assert.Equal(t, "long-va...", TruncateValue("long-value-here", 10))
	// Tiny widths leave the value untouched.
	assert.Equal(t, "abcdef", TruncateValue("abcdef", 3))
}

// TestSelectOutputFile tests stdout fallback and file creation.
func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	assert.NoError(t, err)
	assert.NotNil(t, f)

	path := t.TempDir() + "/out.json"
	f, err = SelectOutputFile(path)
	assert.NoError(t, err)
	assert.NotNil(t, f)
	assert.NoError(t, f.Close())
}
