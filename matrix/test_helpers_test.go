// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the slicing driver.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvslice/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use it to force the interface (non-*Dense) path of the driver.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds an r×c *Dense from row-major data or fails the test.
func MustDenseFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// Fixture3x4 returns
//
//	[ 1  4  7 10]
//	[ 2  5  8 11]
//	[ 3  6  9 12]
//
// i.e. element (i,j) = 1 + i + 3j, the column-major numbering used by the
// classic range examples.
func Fixture3x4(tb testing.TB) *matrix.Dense {
	tb.Helper()

	return MustDenseFrom(tb, 3, 4,
		1, 4, 7, 10,
		2, 5, 8, 11,
		3, 6, 9, 12,
	)
}

// requireDense asserts shape and row-major contents of m.
func requireDense(tb testing.TB, m *matrix.Dense, r, c int, want ...float64) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, r, m.Rows(), "rows")
	require.Equal(tb, c, m.Cols(), "cols")
	if len(want) == 0 {
		require.Empty(tb, m.Data())
		return
	}
	require.Equal(tb, want, m.Data())
}

// randomDense fills an r×c *Dense deterministically from seed.
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}

	return MustDenseFrom(tb, r, c, data...)
}
