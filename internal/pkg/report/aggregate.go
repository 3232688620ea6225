// Package report computes the grouped counts, totals, and risk buckets the
// dashboard charts are drawn from. Everything here is a pure function over
// a snapshot; reference times are explicit parameters so results are
// reproducible.
package report

import "errors"

// ErrNoRows signals an aggregate that is undefined on empty input, such as
// an average. Callers decide how to present the absence of data.
var ErrNoRows = errors.New("no rows to aggregate")

// GroupCount counts rows per distinct key value. Values with no rows do not
// appear in the result.
func GroupCount[T any](rows []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}
	return counts
}

// Sum totals a numeric field; the sum of no rows is zero.
func Sum[T any](rows []T, value func(T) float64) float64 {
	var total float64
	for _, r := range rows {
		total += value(r)
	}
	return total
}

// GroupSum totals a numeric field per distinct key value.
func GroupSum[T any](rows []T, key func(T) string, value func(T) float64) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range rows {
		totals[key(r)] += value(r)
	}
	return totals
}

// Average returns the mean of a numeric field, or ErrNoRows for empty input.
func Average[T any](rows []T, value func(T) float64) (float64, error) {
	if len(rows) == 0 {
		return 0, ErrNoRows
	}
	return Sum(rows, value) / float64(len(rows)), nil
}
