package profiler

import (
	"testing"

	"github.com/huangsam/driftwatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInferType tests type inference over sampled non-null values.
func TestInferType(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   schema.DataType
	}{
		{"empty", nil, schema.UnknownType},
		{"booleans", []any{true, false, true}, schema.BooleanType},
		{"integers", []any{1, 2, 3}, schema.IntegerType},
		{"whole floats", []any{1.0, 2.0}, schema.IntegerType},
		{"floats", []any{1.5, 2.0}, schema.FloatType},
		{"numeric strings", []any{"10", "20.5"}, schema.FloatType},
		{"dates", []any{"2024-01-01", "2024-02-15T10:00:00Z"}, schema.DatetimeType},
		{"short date-like string", []any{"1/2"}, schema.StringType},
		{"mixed", []any{"abc", 1, true}, schema.StringType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferType(tt.values))
		})
	}
}

// TestNumericStats tests min/max/mean/median/stddev for numeric columns.
func TestNumericStats(t *testing.T) {
	data := []schema.Record{
		{"amount": 2}, {"amount": 4}, {"amount": 4},
		{"amount": 4}, {"amount": 5}, {"amount": 5},
		{"amount": 7}, {"amount": 9},
	}
	col := profileColumn("amount", data)

	require.NotNil(t, col.MeanValue)
	assert.Equal(t, 2.0, *col.MinValue)
	assert.Equal(t, 9.0, *col.MaxValue)
	assert.Equal(t, 5.0, *col.MeanValue)
	assert.Equal(t, 4.5, *col.MedianValue)
	// Sample stddev with n-1 divisor: sqrt(32/7).
	assert.InDelta(t, 2.138, *col.StdDev, 0.001)
}

// TestMedianOddCount tests that odd-length inputs take the middle element.
func TestMedianOddCount(t *testing.T) {
	assert.Equal(t, 11.0, median([]float64{13, 9, 11, 10, 12}))
	assert.Equal(t, 10.5, median([]float64{9, 10, 11, 12}))
}

// TestNullHandling tests that nil and empty string both count as null.
func TestNullHandling(t *testing.T) {
	data := []schema.Record{
		{"email": "a@example.com"},
		{"email": ""},
		{"email": nil},
		{"email": "b@example.com"},
	}
	col := profileColumn("email", data)

	assert.Equal(t, 2, col.NullCount)
	assert.Equal(t, 50.0, col.NullPercentage)
	assert.Equal(t, 2, col.DistinctCount)
}

// TestAnomalyHeuristics tests each column-level anomaly rule independently.
func TestAnomalyHeuristics(t *testing.T) {
	t.Run("high null percentage", func(t *testing.T) {
		data := []schema.Record{
			{"opt": nil}, {"opt": nil}, {"opt": nil}, {"opt": "x"},
		}
		col := profileColumn("opt", data)
		require.NotNil(t, col.Anomalies)
		assert.Contains(t, col.Anomalies, "High null percentage: 75.0%")
	})

	t.Run("unique identifier", func(t *testing.T) {
		data := make([]schema.Record, 12)
		for i := range data {
			data[i] = schema.Record{"id": i}
		}
		col := profileColumn("id", data)
		require.NotNil(t, col.Anomalies)
		assert.Contains(t, col.Anomalies, "All values are unique (possible unique identifier)")
	})

	t.Run("constant column", func(t *testing.T) {
		data := []schema.Record{{"env": "prod"}, {"env": "prod"}, {"env": "prod"}}
		col := profileColumn("env", data)
		require.NotNil(t, col.Anomalies)
		assert.Contains(t, col.Anomalies, "All values are identical (constant column)")
	})

	t.Run("outliers beyond three stddev", func(t *testing.T) {
		data := make([]schema.Record, 0, 31)
		for i := 0; i < 30; i++ {
			data = append(data, schema.Record{"v": 10.5})
		}
		data = append(data, schema.Record{"v": 10.6}, schema.Record{"v": 1000.5})
		col := profileColumn("v", data)
		require.NotNil(t, col.Anomalies)
		assert.Contains(t, col.Anomalies, "Found 1 outliers (>3 std dev from mean)")
	})

	t.Run("round numbers in float column", func(t *testing.T) {
		data := make([]schema.Record, 0, 20)
		for i := 0; i < 19; i++ {
			data = append(data, schema.Record{"price": float64(i * 10)})
		}
		data = append(data, schema.Record{"price": 9.5})
		col := profileColumn("price", data)
		require.NotNil(t, col.Anomalies)
		assert.Contains(t, col.Anomalies, "High proportion of round numbers (possible data quality issue)")
	})

	t.Run("clean column has nil anomalies", func(t *testing.T) {
		data := []schema.Record{{"c": "a"}, {"c": "b"}, {"c": "a"}}
		col := profileColumn("c", data)
		assert.Nil(t, col.Anomalies)
	})
}

// TestTopValues tests frequency ordering and first-seen tie breaking.
func TestTopValues(t *testing.T) {
	values := []any{"b", "a", "a", "c", "b", "a", "c"}
	top := topValues(values, 10)

	require.Len(t, top, 3)
	assert.Equal(t, schema.ValueCount{Value: "a", Count: 3}, top[0])
	// b and c tie at 2; b was seen first.
	assert.Equal(t, schema.ValueCount{Value: "b", Count: 2}, top[1])
	assert.Equal(t, schema.ValueCount{Value: "c", Count: 2}, top[2])
}

// TestTopValuesLimit tests the top-K cap.
func TestTopValuesLimit(t *testing.T) {
	var values []any
	for i := 0; i < 25; i++ {
		values = append(values, string(rune('a'+i)))
	}
	assert.Len(t, topValues(values, 10), 10)
}

// TestDistinctCountUnhashable tests the canonical-string fallback for values
// that cannot be compared directly.
func TestDistinctCountUnhashable(t *testing.T) {
	data := []schema.Record{
		{"tags": []any{"x", "y"}},
		{"tags": []any{"x", "y"}},
		{"tags": []any{"z"}},
		{"tags": map[string]any{"k": 1}},
	}
	col := profileColumn("tags", data)
	assert.Equal(t, 3, col.DistinctCount)
}

// TestStringLengthStats tests the length-based stats for string columns.
func TestStringLengthStats(t *testing.T) {
	data := []schema.Record{{"name": "ab"}, {"name": "abcd"}, {"name": "abcdef"}}
	col := profileColumn("name", data)

	require.NotNil(t, col.MinValue)
	assert.Equal(t, 2.0, *col.MinValue)
	assert.Equal(t, 6.0, *col.MaxValue)
	assert.Equal(t, 4.0, *col.MeanValue)
	assert.Nil(t, col.StdDev)
}

// TestPercentileIndexBased tests the index-based percentile selection.
func TestPercentileIndexBased(t *testing.T) {
	values := []float64{10, 12, 11, 13, 9, 500}
	assert.Equal(t, 10.0, percentile(values, 25))
	assert.Equal(t, 13.0, percentile(values, 75))
	assert.Equal(t, 500.0, percentile(values, 100))
}
