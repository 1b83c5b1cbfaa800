package monitor

import (
	"math"

	"github.com/huangsam/driftwatch/schema"
)

// Trend analysis window bounds.
const (
	MinTrendWindow = 2
	MaxTrendWindow = 100
)

// DetectTrend analyzes a metric's direction and velocity over a sliding window
// of its most recent snapshots. The window size is clamped to [2,100]; fewer
// than two stored snapshots yield an insufficient-data result.
func (c *Core) DetectTrend(metricName string, windowSize int) schema.TrendResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detectTrend(metricName, windowSize)
}

// detectTrend is the lock-held implementation shared with CheckThresholds.
func (c *Core) detectTrend(metricName string, windowSize int) schema.TrendResult {
	if metricName == "" || len(metricName) > schema.MaxMetricNameLength {
		return schema.TrendResult{Status: schema.TrendError, Message: "invalid metric name"}
	}
	windowSize = clampInt(windowSize, MinTrendWindow, MaxTrendWindow)

	history, ok := c.history[metricName]
	if !ok {
		return schema.TrendResult{Status: schema.TrendInsufficientData, Message: "no historical data"}
	}
	if len(history) > windowSize {
		history = history[len(history)-windowSize:]
	}
	if len(history) < 2 {
		return schema.TrendResult{Status: schema.TrendInsufficientData, Message: "need at least 2 data points"}
	}

	values := make([]float64, len(history))
	for i, snap := range history {
		values[i] = snap.Value
	}
	first, last := values[0], values[len(values)-1]

	// Direction comes from the window endpoints only; this is deliberately not
	// a regression fit.
	direction := schema.TrendStable
	switch {
	case last > first:
		direction = schema.TrendIncreasing
	case last < first:
		direction = schema.TrendDecreasing
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	meanValue := sum / float64(len(values))

	// Volatility uses the population stddev (n divisor), unlike the profiler's
	// sample stddev. The asymmetry is intentional.
	var sumSq float64
	for _, v := range values {
		d := v - meanValue
		sumSq += d * d
	}
	volatility := math.Sqrt(sumSq / float64(len(values)))

	return schema.TrendResult{
		Status:        schema.TrendSuccess,
		Direction:     direction,
		RateOfChange:  (last - first) / float64(len(values)),
		Volatility:    volatility,
		CurrentValue:  last,
		PreviousValue: first,
		MeanValue:     meanValue,
		DataPoints:    len(values),
		WindowStart:   history[0].Timestamp,
		WindowEnd:     history[len(history)-1].Timestamp,
	}
}
