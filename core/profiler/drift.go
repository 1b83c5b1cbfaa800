package profiler

import (
	"fmt"
	"math"

	"github.com/huangsam/driftwatch/schema"
)

// DetectDrift re-profiles the current dataset and compares every baseline
// column against its current counterpart. Columns missing from either side are
// reported with the maximal drift score of 1.0 and no numeric comparison.
func (p *Profiler) DetectDrift(baseline *schema.DatasetProfile, current []schema.Record) (map[string]schema.DriftResult, error) {
	currentProfile, err := p.Profile(current, "current")
	if err != nil {
		return nil, fmt.Errorf("failed to profile current dataset: %w", err)
	}

	report := make(map[string]schema.DriftResult, len(baseline.ColumnProfiles))

	for column, base := range baseline.ColumnProfiles {
		curr, ok := currentProfile.ColumnProfiles[column]
		if !ok {
			report[column] = schema.DriftResult{
				ColumnName:   column,
				HasDrift:     true,
				DriftScore:   1.0,
				DriftDetails: []string{fmt.Sprintf("Column %s missing from current dataset", column)},
			}
			continue
		}
		report[column] = p.compareColumn(column, base, curr)
	}

	for column := range currentProfile.ColumnProfiles {
		if _, ok := baseline.ColumnProfiles[column]; !ok {
			report[column] = schema.DriftResult{
				ColumnName:   column,
				HasDrift:     true,
				DriftScore:   1.0,
				DriftDetails: []string{fmt.Sprintf("New column %s appeared in current dataset", column)},
			}
		}
	}

	return report, nil
}

// compareColumn computes the drift components between a baseline column and its
// current counterpart.
func (p *Profiler) compareColumn(column string, base, curr *schema.ColumnProfile) schema.DriftResult {
	var details []string
	pctThreshold := p.driftThreshold * 100

	nullDrift := math.Abs(curr.NullPercentage - base.NullPercentage)
	if nullDrift > pctThreshold {
		details = append(details, fmt.Sprintf(
			"Null percentage changed from %.1f%% to %.1f%%",
			base.NullPercentage, curr.NullPercentage))
	}

	distinctDrift := curr.DistinctCount - base.DistinctCount
	if distinctDrift < 0 {
		distinctDrift = -distinctDrift
	}
	var distinctDriftPct float64
	if base.DistinctCount > 0 {
		distinctDriftPct = float64(distinctDrift) / float64(base.DistinctCount) * 100
	}
	if distinctDriftPct > pctThreshold {
		details = append(details, fmt.Sprintf(
			"Distinct values changed from %d to %d (%.1f%% change)",
			base.DistinctCount, curr.DistinctCount, distinctDriftPct))
	}

	var valueDrift float64
	if len(base.TopValues) > 0 && len(curr.TopValues) > 0 {
		valueDrift = distributionDrift(base.TopValues, curr.TopValues)
		if valueDrift > p.driftThreshold {
			details = append(details, fmt.Sprintf(
				"Value distribution changed (drift score: %.2f)", valueDrift))
		}
	}

	if base.DataType == schema.IntegerType || base.DataType == schema.FloatType {
		if base.MeanValue != nil && curr.MeanValue != nil && *base.MeanValue != 0 {
			meanDriftPct := math.Abs(*curr.MeanValue-*base.MeanValue) / *base.MeanValue * 100
			if meanDriftPct > pctThreshold {
				details = append(details, fmt.Sprintf(
					"Mean value changed from %.2f to %.2f (%.1f%% change)",
					*base.MeanValue, *curr.MeanValue, meanDriftPct))
			}
		}
	}

	score := math.Max(nullDrift/100, math.Max(distinctDriftPct/100, valueDrift))

	hasDrift := len(details) > 0
	if !hasDrift {
		details = []string{"No significant drift detected"}
	}

	return schema.DriftResult{
		ColumnName:             column,
		HasDrift:               hasDrift,
		DriftScore:             score,
		NullPercentageDrift:    nullDrift,
		DistinctCountDrift:     distinctDrift,
		ValueDistributionDrift: valueDrift,
		DriftDetails:           details,
	}
}

// distributionDrift computes the total-variation distance between two top-value
// frequency distributions, normalized to [0,1]: the sum of absolute frequency
// differences over the union of observed values, divided by two.
func distributionDrift(baseline, current []schema.ValueCount) float64 {
	baseCounts := make(map[string]int, len(baseline))
	currCounts := make(map[string]int, len(current))
	var baseTotal, currTotal int
	for _, vc := range baseline {
		baseCounts[vc.Value] = vc.Count
		baseTotal += vc.Count
	}
	for _, vc := range current {
		currCounts[vc.Value] = vc.Count
		currTotal += vc.Count
	}
	if baseTotal == 0 || currTotal == 0 {
		return 0
	}

	union := make(map[string]struct{}, len(baseCounts)+len(currCounts))
	for v := range baseCounts {
		union[v] = struct{}{}
	}
	for v := range currCounts {
		union[v] = struct{}{}
	}

	var drift float64
	for v := range union {
		baseFreq := float64(baseCounts[v]) / float64(baseTotal)
		currFreq := float64(currCounts[v]) / float64(currTotal)
		drift += math.Abs(baseFreq - currFreq)
	}
	return drift / 2
}
