package profiler

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// toNumeric attempts to coerce a value to float64. Booleans are deliberately
// excluded: all-boolean columns are typed as boolean before numeric checks run,
// and a stray true/false inside a numeric column is not a measurement.
func toNumeric(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// canonicalString renders a value in its canonical string form. Sequences and
// nested mappings cannot be used as map keys directly, so distinct counting and
// top-value summaries fall back to this representation.
func canonicalString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// isNull reports whether a value counts as null: the nil marker or an empty string.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// isDateLike reports whether a string value looks like a date or timestamp.
// Simple heuristic: contains a common date/time separator and is at least
// 8 characters long.
func isDateLike(v any) bool {
	if _, ok := v.(time.Time); ok {
		return true
	}
	s, ok := v.(string)
	if !ok || len(s) < 8 {
		return false
	}
	return strings.ContainsAny(s, "-/T:")
}

// mean returns the arithmetic mean of values. Caller guarantees len > 0.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median returns the median value, averaging the two middle elements for
// even-length inputs. Caller guarantees len > 0.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// sampleStdDev returns the sample standard deviation (n-1 divisor), or 0 when
// fewer than two values are present.
func sampleStdDev(values []float64, m float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// percentile returns the p-th percentile using index-based selection:
// index = floor(n * p/100), clamped to the last element. This is intentionally
// not a continuous interpolation.
func percentile(values []float64, p int) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	idx := len(sorted) * p / 100
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
