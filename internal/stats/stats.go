// Package stats derives dashboard counters from record collections. Every
// function is pure and returns zero values for empty input.
package stats

import (
	"math"
)

// CountBy counts the records matching pred.
func CountBy[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// CountByField maps each distinct key to the number of records carrying it.
func CountByField[T any, K comparable](records []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, r := range records {
		out[key(r)]++
	}
	return out
}

// GroupBy buckets records by key, keeping input order inside each bucket.
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, r := range records {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}

// Sum totals a numeric field.
func Sum[T any](records []T, field func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += field(r)
	}
	return total
}

// Average is the arithmetic mean of a numeric field, 0 for no records.
func Average[T any](records []T, field func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, field) / float64(len(records))
}

// Ratio divides with the zero guard and no clamping. Use it for stored rates.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 || math.IsNaN(numerator) || math.IsNaN(denominator) {
		return 0
	}
	return numerator / denominator
}

// Percentage is 100*numerator/denominator clamped to [0,100] for display.
// A zero denominator yields 0.
func Percentage(numerator, denominator float64) float64 {
	return Clamp(Ratio(100*numerator, denominator), 0, 100)
}

// Progress is Percentage over integer counters.
func Progress(completed, total int) float64 {
	return Percentage(float64(completed), float64(total))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// Round rounds half away from zero to the given number of decimals. Display
// values use two decimals, so Progress(89, 150) shows as 59.33.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Summary is the basic descriptive statistics of a numeric series.
type Summary struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Summarize computes Summary, all zeros for an empty series.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(values), Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Average = s.Sum / float64(s.Count)
	return s
}

// Values projects a numeric field into a series.
func Values[T any](records []T, field func(T) float64) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = field(r)
	}
	return out
}
