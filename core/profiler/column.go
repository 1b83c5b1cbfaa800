package profiler

import (
	"fmt"
	"sort"

	"github.com/huangsam/driftwatch/schema"
)

// typeInferenceSample caps how many non-null values type inference examines.
const typeInferenceSample = 100

// profileColumn computes the full ColumnProfile for one column over the dataset.
func profileColumn(columnName string, data []schema.Record) *schema.ColumnProfile {
	totalCount := len(data)

	var nullCount int
	nonNull := make([]any, 0, totalCount)
	for _, record := range data {
		v := record[columnName]
		if isNull(v) {
			nullCount++
			continue
		}
		nonNull = append(nonNull, v)
	}

	var nullPct, distinctPct float64
	distinct := distinctCount(nonNull)
	if totalCount > 0 {
		nullPct = float64(nullCount) / float64(totalCount) * 100
		distinctPct = float64(distinct) / float64(totalCount) * 100
	}

	dataType := inferType(nonNull)

	profile := &schema.ColumnProfile{
		ColumnName:         columnName,
		DataType:           dataType,
		TotalCount:         totalCount,
		NullCount:          nullCount,
		NullPercentage:     nullPct,
		DistinctCount:      distinct,
		DistinctPercentage: distinctPct,
	}

	var anomalies []string

	if len(nonNull) > 0 {
		switch dataType {
		case schema.IntegerType, schema.FloatType:
			numeric := make([]float64, 0, len(nonNull))
			for _, v := range nonNull {
				if f, ok := toNumeric(v); ok {
					numeric = append(numeric, f)
				}
			}
			if len(numeric) > 0 {
				setNumericStats(profile, numeric)
				anomalies = append(anomalies, numericAnomalies(numeric, *profile.MeanValue, *profile.StdDev)...)
			}
		case schema.StringType:
			setStringLengthStats(profile, nonNull)
		}

		if dataType == schema.StringType || dataType == schema.BooleanType || distinct < 20 {
			profile.TopValues = topValues(nonNull, schema.TopValueLimit)
		}
	}

	if nullPct > 50 {
		anomalies = append(anomalies, fmt.Sprintf("High null percentage: %.1f%%", nullPct))
	}
	if distinct == totalCount && totalCount > 10 {
		anomalies = append(anomalies, "All values are unique (possible unique identifier)")
	}
	if distinct == 1 && totalCount > 1 {
		anomalies = append(anomalies, "All values are identical (constant column)")
	}

	// nil stays nil so callers can tell "clean" from "not computed".
	profile.Anomalies = anomalies
	return profile
}

// distinctCount counts distinct non-null values via their canonical string form.
func distinctCount(values []any) int {
	if len(values) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[canonicalString(v)] = struct{}{}
	}
	return len(seen)
}

// inferType infers a column's data type from a sample of its non-null values.
func inferType(values []any) schema.DataType {
	if len(values) == 0 {
		return schema.UnknownType
	}

	sample := values
	if len(sample) > typeInferenceSample {
		sample = sample[:typeInferenceSample]
	}

	allBool := true
	for _, v := range sample {
		if _, ok := v.(bool); !ok {
			allBool = false
			break
		}
	}
	if allBool {
		return schema.BooleanType
	}

	allNumeric := true
	allWhole := true
	for _, v := range sample {
		f, ok := toNumeric(v)
		if !ok {
			allNumeric = false
			break
		}
		if f != float64(int64(f)) {
			allWhole = false
		}
	}
	if allNumeric {
		if allWhole {
			return schema.IntegerType
		}
		return schema.FloatType
	}

	allDates := true
	for _, v := range sample {
		if !isDateLike(v) {
			allDates = false
			break
		}
	}
	if allDates {
		return schema.DatetimeType
	}

	return schema.StringType
}

// setNumericStats fills in min/max/mean/median/stddev for a numeric column.
func setNumericStats(profile *schema.ColumnProfile, numeric []float64) {
	minV, maxV := numeric[0], numeric[0]
	for _, v := range numeric[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	m := mean(numeric)
	med := median(numeric)
	sd := sampleStdDev(numeric, m)

	profile.MinValue = &minV
	profile.MaxValue = &maxV
	profile.MeanValue = &m
	profile.MedianValue = &med
	profile.StdDev = &sd
}

// setStringLengthStats fills in min/max/mean over value lengths for a string column.
func setStringLengthStats(profile *schema.ColumnProfile, values []any) {
	lengths := make([]float64, len(values))
	for i, v := range values {
		lengths[i] = float64(len(canonicalString(v)))
	}
	minL, maxL := lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l < minL {
			minL = l
		}
		if l > maxL {
			maxL = l
		}
	}
	m := mean(lengths)
	profile.MinValue = &minL
	profile.MaxValue = &maxL
	profile.MeanValue = &m
}

// numericAnomalies runs the numeric anomaly heuristics over a column's values.
func numericAnomalies(values []float64, m, stdDev float64) []string {
	var anomalies []string

	if stdDev > 0 {
		outliers := 0
		for _, v := range values {
			if v > m+3*stdDev || v < m-3*stdDev {
				outliers++
			}
		}
		if outliers > 0 {
			anomalies = append(anomalies, fmt.Sprintf("Found %d outliers (>3 std dev from mean)", outliers))
		}
	}

	// A high proportion of whole numbers in a supposedly continuous field
	// suggests truncated or synthetic data.
	if len(values) > 10 {
		wholes := 0
		for _, v := range values {
			if v == float64(int64(v)) {
				wholes++
			}
		}
		if float64(wholes)/float64(len(values)) > 0.9 {
			anomalies = append(anomalies, "High proportion of round numbers (possible data quality issue)")
		}
	}

	return anomalies
}

// topValues returns the top-K (value, frequency) pairs by descending frequency.
// Ties keep first-seen order, which makes repeated runs deterministic.
func topValues(values []any, k int) []schema.ValueCount {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		key := canonicalString(v)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	result := make([]schema.ValueCount, len(order))
	for i, key := range order {
		result[i] = schema.ValueCount{Value: key, Count: counts[key]}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > k {
		result = result[:k]
	}
	return result
}
