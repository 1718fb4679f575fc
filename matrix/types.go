// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract consumed by the slicing driver.
// This file intentionally contains ONLY the public interface; storage lives in
// impl_dense.go, the driver in impl_slicing.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// The slicing driver needs exactly this surface: axis sizes to bind ranges,
// and bounds-checked element get/set to move data.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
