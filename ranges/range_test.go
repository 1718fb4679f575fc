// SPDX-License-Identifier: MIT
// Package ranges_test checks the iteration contract shared by all variants
// and the per-variant semantics (point, interval, indices, find, all).

package ranges_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvslice/ranges"
	"github.com/stretchr/testify/require"
)

// walk binds r and records (index, value) pairs until exhaustion.
func walk(t *testing.T, r ranges.Range, lower, upper int) (idx, val []int) {
	t.Helper()
	require.NoError(t, r.Init(lower, upper))
	for ; r.HasMore(); r.Next() {
		idx = append(idx, r.Index())
		val = append(val, r.Value())
	}

	return idx, val
}

// TestContract_LenMatchesIteration verifies that every variant yields exactly
// Len() steps and that Index enumerates 0..Len()-1 in order.
func TestContract_LenMatchesIteration(t *testing.T) {
	cases := []struct {
		name  string
		r     ranges.Range
		lower int
		upper int
	}{
		{"point", ranges.Point(7), 0, 3},
		{"interval", ranges.Interval(2, 5), 0, 10},
		{"indices", ranges.Indices([]int{4, 4, 0, 9}), 0, 10},
		{"indices-empty", ranges.Indices(nil), 0, 10},
		{"all", ranges.All(), 0, 6},
		{"all-offset", ranges.All(), 3, 6},
		{"find", ranges.Find([]float64{0, 1, 0, 2, 3}), 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, val := walk(t, tc.r, tc.lower, tc.upper)
			require.Len(t, val, tc.r.Len())
			for k := range idx {
				require.Equal(t, k, idx[k]) // ordinal matches step
			}
			require.False(t, tc.r.HasMore())
			require.Equal(t, -1, tc.r.Value()) // exhausted sentinel
		})
	}
}

// TestContract_ReinitRewinds ensures Init can be called again to reuse a range.
func TestContract_ReinitRewinds(t *testing.T) {
	for _, r := range []ranges.Range{
		ranges.Point(1), ranges.Interval(0, 2), ranges.Indices([]int{2, 1}), ranges.All(),
	} {
		_, first := walk(t, r, 0, 3)
		_, second := walk(t, r, 0, 3)
		require.Equal(t, first, second, r.Kind().String())
	}
}

// TestAll_FullAxis covers all() bound to (0, N).
func TestAll_FullAxis(t *testing.T) {
	r := ranges.All()
	require.Equal(t, 0, r.Len()) // no span before Init

	_, val := walk(t, r, 0, 4)
	require.Equal(t, []int{0, 1, 2, 3}, val)
	require.Equal(t, 4, r.Len())

	_, val = walk(t, r, 5, 5) // empty axis
	require.Empty(t, val)
	require.Equal(t, 0, r.Len())

	require.NoError(t, r.Init(3, 1)) // inverted domain selects nothing
	require.Equal(t, 0, r.Len())
	require.False(t, r.HasMore())
}

// TestInterval_Inclusive covers interval(a, b) yielding a..b.
func TestInterval_Inclusive(t *testing.T) {
	r := ranges.Interval(1, 3)
	require.Equal(t, 3, r.Len()) // computable before Init

	idx, val := walk(t, r, 0, 4)
	require.Equal(t, []int{1, 2, 3}, val)
	require.Equal(t, []int{0, 1, 2}, idx)

	start, end := r.Bounds()
	require.Equal(t, 1, start)
	require.Equal(t, 3, end)

	_, val = walk(t, ranges.Interval(2, 2), 0, 3) // single-element block
	require.Equal(t, []int{2}, val)
}

// TestInterval_BoundsViolation verifies the structured error for blocks that
// leave the domain, and that a failed Init leaves the cursor exhausted.
func TestInterval_BoundsViolation(t *testing.T) {
	cases := []struct {
		name         string
		a, b         int
		lower, upper int
	}{
		{"end-past-upper", 1, 3, 0, 3},
		{"start-below-lower", 0, 2, 1, 5},
		{"reversed", 3, 1, 0, 5},
		{"empty-domain", 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ranges.Interval(tc.a, tc.b)
			err := r.Init(tc.lower, tc.upper)
			require.ErrorIs(t, err, ranges.ErrOutOfBounds)

			var be *ranges.BoundsError
			require.True(t, errors.As(err, &be))
			require.Equal(t, tc.lower, be.Lower)
			require.Equal(t, tc.upper, be.Upper)
			require.Equal(t, tc.a, be.Start)
			require.Equal(t, tc.b, be.End)
			require.False(t, r.HasMore())
		})
	}
}

// TestInterval_ErrorMessage pins the diagnostic wording.
func TestInterval_ErrorMessage(t *testing.T) {
	err := ranges.Interval(1, 3).Init(0, 3)
	require.EqualError(t, err, "ranges: bounds 0 to 2 do not contain interval 1 to 3")
}

// TestPoint_IgnoresDomain covers point(k) yielding k for any bounds.
func TestPoint_IgnoresDomain(t *testing.T) {
	for _, dom := range [][2]int{{0, 10}, {0, 1}, {20, 30}} {
		r := ranges.Point(5)
		idx, val := walk(t, r, dom[0], dom[1])
		require.Equal(t, []int{5}, val)
		require.Equal(t, []int{0}, idx)
		require.Equal(t, 1, r.Index()) // consumed
	}
}

// TestIndices_OrderAndRepeats covers gather patterns with duplicates.
func TestIndices_OrderAndRepeats(t *testing.T) {
	src := []int{0, 2, 1, 3, 0}
	r := ranges.Indices(src)
	src[0] = 99 // caller mutation must not leak into the range

	_, val := walk(t, r, 0, 4)
	require.Equal(t, []int{0, 2, 1, 3, 0}, val)
	require.Equal(t, []int{0, 2, 1, 3, 0}, r.Positions())

	_, val = walk(t, ranges.Indices([]int{8, -1}), 0, 2) // unchecked at Init
	require.Equal(t, []int{8, -1}, val)
}

// TestIndicesOf_Truncates covers float → int conversion toward zero.
func TestIndicesOf_Truncates(t *testing.T) {
	r, err := ranges.IndicesOf([]float64{0, 2.9, 1.2, -0.7, 3})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 0, 3}, r.Positions())

	_, err = ranges.IndicesOf([]float64{1, math.NaN()})
	require.ErrorIs(t, err, ranges.ErrNonFinite)

	_, err = ranges.IndicesOf([]float64{math.Inf(-1)})
	require.ErrorIs(t, err, ranges.ErrNonFinite)

	for _, x := range []float64{1e300, -1e300, math.Ldexp(1, 63), math.Ldexp(-1, 64)} {
		_, err = ranges.IndicesOf([]float64{0, x})
		require.ErrorIs(t, err, ranges.ErrNonFinite, "%g", x)
	}
}

// TestFind_NonZeroPositions covers find(v).
func TestFind_NonZeroPositions(t *testing.T) {
	_, val := walk(t, ranges.Find([]float64{0, 5, 0, 3}), 0, 4)
	require.Equal(t, []int{1, 3}, val)

	r := ranges.Find([]float64{0, 0, 0})
	require.Equal(t, 0, r.Len())
	require.False(t, r.HasMore())

	r = ranges.Find([]float64{math.NaN(), -2, 0})
	require.Equal(t, []int{0, 1}, r.Positions())
}

// TestCollect drains ranges and propagates Init errors.
func TestCollect(t *testing.T) {
	got, err := ranges.Collect(ranges.All(), 2, 5)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, got)

	_, err = ranges.Collect(ranges.Interval(0, 9), 0, 3)
	require.ErrorIs(t, err, ranges.ErrOutOfBounds)
}

// TestKind_String covers the variant tags.
func TestKind_String(t *testing.T) {
	require.Equal(t, ranges.KindPoint, ranges.Point(0).Kind())
	require.Equal(t, ranges.KindInterval, ranges.Interval(0, 1).Kind())
	require.Equal(t, ranges.KindIndices, ranges.Find(nil).Kind())
	require.Equal(t, ranges.KindAll, ranges.All().Kind())

	require.Equal(t, "point", ranges.KindPoint.String())
	require.Equal(t, "interval", ranges.KindInterval.String())
	require.Equal(t, "indices", ranges.KindIndices.String())
	require.Equal(t, "all", ranges.KindAll.String())
	require.Equal(t, "unknown", ranges.Kind(0).String())
}

// TestString renders cursor state for diagnostics.
func TestString(t *testing.T) {
	a := ranges.All()
	require.NoError(t, a.Init(0, 3))
	require.Equal(t, "<AllRange from 0 to 3, length 3, index=0, value=0>", a.String())

	iv := ranges.Interval(1, 2)
	require.NoError(t, iv.Init(0, 3))
	iv.Next()
	require.Equal(t, "<IntervalRange from 1 to 2, length 2, index=1, value=2>", iv.String())

	require.Equal(t, "<PointRange at 4, index=0>", ranges.Point(4).String())
	require.Equal(t, "<IndicesRange [1 0], index=0, value=1>", ranges.Indices([]int{1, 0}).String())
}
