// SPDX-License-Identifier: MIT

// Package matrix - gorgonia tensor interop.
// Only 2-D Float64 tensors map onto Dense; anything else is ErrBadShape.

package matrix

import (
	"fmt"

	"gorgonia.org/tensor"
)

const (
	ctxFromTensor = "FromTensor"
	ctxToTensor   = "ToTensor"
)

// FromTensor copies a 2-D Float64 tensor into a new *Dense.
// MAIN DESCRIPTION:
//   - Reads through Tensor.At, so transposed or sliced tensors (non-contiguous
//     backing) are copied in their logical order.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (rank ≠ 2, zero-area or dtype ≠ Float64), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromTensor(t tensor.Tensor, opts ...Option) (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(ctxFromTensor, ErrNilMatrix)
	}
	shp := t.Shape()
	if len(shp) != 2 || shp[0] <= 0 || shp[1] <= 0 {
		return nil, matrixErrorf(ctxFromTensor, fmt.Errorf("shape %v: %w", shp, ErrBadShape))
	}
	if t.Dtype() != tensor.Float64 {
		return nil, matrixErrorf(ctxFromTensor, fmt.Errorf("dtype %v: %w", t.Dtype(), ErrBadShape))
	}

	r, c := shp[0], shp[1]
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := t.At(i, j)
			if err != nil {
				return nil, matrixErrorf(ctxFromTensor, err)
			}
			data[i*c+j] = v.(float64) // dtype checked above
		}
	}
	out, err := NewDenseFrom(r, c, data, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromTensor, err)
	}

	return out, nil
}

// ToTensor copies m into a new row-major *tensor.Dense of shape (r, c).
// Zero-area matrices have no tensor counterpart (ErrBadShape).
func (m *Dense) ToTensor() (*tensor.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(ctxToTensor, ErrBadShape)
	}

	return tensor.New(tensor.WithShape(m.r, m.c), tensor.WithBacking(m.Data())), nil
}
