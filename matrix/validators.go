// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep the slicing driver minimal by delegating nil/shape/selection checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateSelection mutates
//    its argument (it binds and rewinds the Range).
//
// AI-Hints:
//  - Call ValidateSelection before a write when you need all-or-nothing semantics.
//  - Use ValidateFinite before scattering foreign data into a finite-only matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvslice/ranges"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value (a typed nil *Dense / *MatrixView is also nil).
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch t := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if t == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *MatrixView:
		if t == nil || t.base == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
//
// Errors: ErrNilMatrix, ErrNaNInf (with the first offending coordinates).
// Complexity: O(r*c); flat loop on *Dense.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		var err error
		d.Do(func(i, j int, v float64) bool {
			if isNonFinite(v) {
				err = validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
				return false
			}
			return true
		})

		return err
	}
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateSelection binds r to the axis [0, n) and proves every position it
// yields lies inside that axis. On success r is rewound (re-Init) and ready
// for iteration.
// MAIN DESCRIPTION:
//   - Hardens Point/Indices selections, which do not check themselves.
//
// Implementation:
//   - Stage 1: r.Init(0, n) (interval bound violations surface here).
//   - Stage 2: drain once, checking 0 ≤ Value() < n.
//   - Stage 3: r.Init(0, n) again to rewind.
//
// Errors:
//   - ErrNilMatrix (nil range), ranges.ErrOutOfBounds (binding), ErrOutOfRange (position).
//
// Complexity:
//   - Time O(len(r)), Space O(1).
func ValidateSelection(r ranges.Range, n int) error {
	if isNilRange(r) {
		return validatorErrorf("ValidateSelection", ErrNilMatrix)
	}
	if err := r.Init(0, n); err != nil {
		return validatorErrorf("ValidateSelection", err)
	}
	for ; r.HasMore(); r.Next() {
		if v := r.Value(); v < 0 || v >= n {
			return validatorErrorf("ValidateSelection",
				fmt.Errorf("%s step %d selects %d outside [0,%d): %w", r.Kind(), r.Index(), v, n, ErrOutOfRange))
		}
	}
	if err := r.Init(0, n); err != nil {
		return validatorErrorf("ValidateSelection", err)
	}

	return nil
}

// isNilRange reports an untyped nil or a nil pointer to one of the ranges
// variants; either would panic on the first Init.
func isNilRange(r ranges.Range) bool {
	switch t := r.(type) {
	case nil:
		return true
	case *ranges.PointRange:
		return t == nil
	case *ranges.IntervalRange:
		return t == nil
	case *ranges.IndicesRange:
		return t == nil
	case *ranges.AllRange:
		return t == nil
	default:
		return false
	}
}
