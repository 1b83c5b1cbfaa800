package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/driftwatch/schema"
)

// recordSeries records values one minute apart and returns the core.
func recordSeries(clock *fakeClock, core *Core, name string, values ...float64) {
	for _, v := range values {
		core.Record(name, v, clock.Now(), nil)
		clock.Advance(time.Minute)
	}
}

// TestDetectTrendDirections tests endpoint-based direction classification.
func TestDetectTrendDirections(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		direction schema.TrendDirection
	}{
		{"increasing", []float64{1, 2, 3, 4}, schema.TrendIncreasing},
		{"decreasing", []float64{4, 3, 2, 1}, schema.TrendDecreasing},
		{"stable endpoints", []float64{5, 9, 1, 5}, schema.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			core := New(DefaultAlertConfig(), WithClock(clock.Now))
			recordSeries(clock, core, "m", tt.values...)

			trend := core.DetectTrend("m", 10)
			require.Equal(t, schema.TrendSuccess, trend.Status)
			assert.Equal(t, tt.direction, trend.Direction)
		})
	}
}

// TestDetectTrendMath tests rate, mean, volatility, and window bookkeeping.
func TestDetectTrendMath(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))
	start := clock.Now()
	recordSeries(clock, core, "m", 10, 20, 30, 40)

	trend := core.DetectTrend("m", 10)
	require.Equal(t, schema.TrendSuccess, trend.Status)

	assert.Equal(t, 40.0, trend.CurrentValue)
	assert.Equal(t, 10.0, trend.PreviousValue)
	assert.Equal(t, 25.0, trend.MeanValue)
	assert.Equal(t, 4, trend.DataPoints)

	// rate = (last - first) / n
	assert.InDelta(t, 7.5, trend.RateOfChange, 1e-9)

	// Population stddev of {10,20,30,40} with the n divisor.
	assert.InDelta(t, 11.180339887, trend.Volatility, 1e-6)

	assert.Equal(t, start, trend.WindowStart)
	assert.Equal(t, start.Add(3*time.Minute), trend.WindowEnd)
}

// TestDetectTrendWindowClamp tests that only the trailing window is analyzed.
func TestDetectTrendWindowClamp(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))
	recordSeries(clock, core, "m", 100, 1, 2, 3)

	// Window 3 skips the leading spike.
	trend := core.DetectTrend("m", 3)
	require.Equal(t, schema.TrendSuccess, trend.Status)
	assert.Equal(t, 1.0, trend.PreviousValue)
	assert.Equal(t, 3, trend.DataPoints)

	// Window below the minimum clamps to 2.
	trend = core.DetectTrend("m", 0)
	require.Equal(t, schema.TrendSuccess, trend.Status)
	assert.Equal(t, 2, trend.DataPoints)
}

// TestDetectTrendInsufficientData tests the degraded statuses.
func TestDetectTrendInsufficientData(t *testing.T) {
	clock := newFakeClock()
	core := New(DefaultAlertConfig(), WithClock(clock.Now))

	trend := core.DetectTrend("missing", 10)
	assert.Equal(t, schema.TrendInsufficientData, trend.Status)

	core.Record("single", 1, clock.Now(), nil)
	trend = core.DetectTrend("single", 10)
	assert.Equal(t, schema.TrendInsufficientData, trend.Status)
}

// TestDetectTrendInvalidName tests the error status for bad metric names.
func TestDetectTrendInvalidName(t *testing.T) {
	core := New(DefaultAlertConfig())

	trend := core.DetectTrend("", 10)
	assert.Equal(t, schema.TrendError, trend.Status)

	long := make([]byte, schema.MaxMetricNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	trend = core.DetectTrend(string(long), 10)
	assert.Equal(t, schema.TrendError, trend.Status)
}
