// internal/stats/stats.go
package stats

import (
	"fmt"
	"sort"
)

// Summary holds the scalar aggregates for one value collection.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes count, mean, median, min and max. The input slice
// is never mutated. Empty input is an error, not a zero summary.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize empty value list")
	}

	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	var sum float64
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))
	s.Median = Median(values)

	return s, nil
}

// Median sorts a copy of the values. Even counts take the average of
// the two middle elements.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// GroupSum sums val over items sharing the same key.
func GroupSum[T any](items []T, key func(T) string, val func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	for _, item := range items {
		sums[key(item)] += val(item)
	}
	return sums
}

// GroupMean averages val over items sharing the same key.
func GroupMean[T any](items []T, key func(T) string, val func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, item := range items {
		k := key(item)
		sums[k] += val(item)
		counts[k]++
	}

	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = sum / float64(counts[k])
	}
	return means
}

// SortedKeys returns the group keys in natural order, so grouped output
// is deterministic.
func SortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
