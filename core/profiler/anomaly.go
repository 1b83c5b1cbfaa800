package profiler

import (
	"fmt"
	"math"
	"sort"

	"github.com/huangsam/driftwatch/schema"
)

// zScoreCutoff is the classic three-sigma threshold for z-score flagging.
const zScoreCutoff = 3.0

// FindAnomalies identifies anomalous records in one column using a statistical
// method. Records whose value cannot be coerced to a number are silently
// excluded from consideration. Results are sorted by score descending; the sort
// is stable, so repeated runs over the same input yield the same order.
func (p *Profiler) FindAnomalies(data []schema.Record, column string, method schema.AnomalyMethod) []schema.AnomalyRecord {
	indices := make([]int, 0, len(data))
	values := make([]float64, 0, len(data))
	for i, record := range data {
		if f, ok := toNumeric(record[column]); ok {
			indices = append(indices, i)
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return nil
	}

	var anomalous []schema.AnomalyRecord

	switch method {
	case schema.ZScoreMethod:
		m := mean(values)
		stdDev := sampleStdDev(values, m)
		if stdDev <= 0 {
			return nil
		}
		for i, v := range values {
			score := math.Abs(v-m) / stdDev
			if score > zScoreCutoff {
				anomalous = append(anomalous, schema.AnomalyRecord{
					RecordIndex:  indices[i],
					Record:       data[indices[i]],
					AnomalyValue: v,
					AnomalyScore: score,
					Reason:       fmt.Sprintf("Z-score %.2f exceeds threshold (%.1f)", score, zScoreCutoff),
				})
			}
		}

	default: // schema.IQRMethod
		q1 := percentile(values, 25)
		q3 := percentile(values, 75)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr
		mid := (lower + upper) / 2

		for i, v := range values {
			if v < lower || v > upper {
				anomalous = append(anomalous, schema.AnomalyRecord{
					RecordIndex:  indices[i],
					Record:       data[indices[i]],
					AnomalyValue: v,
					AnomalyScore: math.Abs(v - mid),
					Reason:       fmt.Sprintf("Value %v outside IQR bounds [%.2f, %.2f]", v, lower, upper),
				})
			}
		}
	}

	sort.SliceStable(anomalous, func(i, j int) bool {
		return anomalous[i].AnomalyScore > anomalous[j].AnomalyScore
	})
	return anomalous
}
