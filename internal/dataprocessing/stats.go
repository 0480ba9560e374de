package dataprocessing

import (
	"sort"

	apperrors "salescli/internal/errors"
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, apperrors.NewStatisticsError("mean of empty data", nil)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the median of values; for an even count, the average of the
// two middle values.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, apperrors.NewStatisticsError("median of empty data", nil)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// Variance returns the population variance of values. A single value has a
// variance of zero; only the empty set is undefined.
func Variance(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values)), nil
}

// Mode returns the most frequent value. When several values share the
// maximal frequency the first one seen in input order is returned and tied
// is true, so callers can decide whether ambiguity matters to them.
func Mode(values []string) (value string, tied bool, err error) {
	if len(values) == 0 {
		return "", false, apperrors.NewStatisticsError("mode of empty data", nil)
	}

	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	best := values[0]
	for v, c := range counts {
		if c > counts[best] || (c == counts[best] && firstSeen[v] < firstSeen[best]) {
			best = v
		}
	}
	for v, c := range counts {
		if v != best && c == counts[best] {
			tied = true
			break
		}
	}
	return best, tied, nil
}
