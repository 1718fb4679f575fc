// SPDX-License-Identifier: MIT
// Package ranges - factory.
//
// Purpose:
//   - Pure constructors for every selection variant; none of them knows the
//     axis it will be applied to.
//
// AI-Hints:
//   - Use Find(mask) to turn a boolean-like 0/1 vector into a row/col selection.
//   - IndicesOf truncates toward zero (2.9 → 2, -0.5 → 0); non-finite values
//     are rejected because their int conversion is undefined.

package ranges

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point selects the single position i.
func Point(i int) *PointRange { return &PointRange{pos: i} }

// Interval selects a, a+1, ..., b (end-inclusive).
func Interval(a, b int) *IntervalRange { return &IntervalRange{start: a, end: b, value: a} }

// All selects every position of whatever domain Init binds.
func All() *AllRange { return &AllRange{} }

// Indices selects the listed positions in order. The slice is copied.
func Indices(is []int) *IndicesRange {
	cp := make([]int, len(is))
	copy(cp, is)

	return &IndicesRange{idx: cp}
}

// int conversion limits for IndicesOf; float64(math.MaxInt) rounds up to 2^63,
// so the upper limit is exclusive.
const (
	maxIndex = float64(math.MaxInt)
	minIndex = float64(math.MinInt)
)

// IndicesOf selects positions given as floats, truncated toward zero.
// MAIN DESCRIPTION:
//   - Build an IndicesRange from a numeric vector (e.g. a matrix row).
//
// Errors:
//   - ErrNonFinite (wrapped with the offending offset) for NaN, ±Inf, or a
//     value whose truncation does not fit an int.
//
// Complexity:
//   - Time O(n), Space O(n).
func IndicesOf(v []float64) (*IndicesRange, error) {
	is := make([]int, len(v))
	for k, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("IndicesOf: entry %d: %w", k, ErrNonFinite)
		}
		if t := math.Trunc(x); t >= maxIndex || t < minIndex {
			return nil, fmt.Errorf("IndicesOf: entry %d (%g) exceeds int: %w", k, x, ErrNonFinite)
		}
		is[k] = int(x) // Go conversion truncates toward zero
	}

	return &IndicesRange{idx: is}, nil
}

// Find selects the ascending positions of the nonzero entries of v.
// NaN is nonzero. An all-zero or empty v yields an empty selection.
//
// Complexity: Time O(n), Space O(nnz).
func Find(v []float64) *IndicesRange {
	// k = -1 asks for every match, in which case floats.Find cannot fail.
	is, _ := floats.Find(nil, isNonZero, v, -1)

	return &IndicesRange{idx: is}
}

func isNonZero(x float64) bool { return x != 0 }
