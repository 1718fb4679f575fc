// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Move data between *Dense and gonum's mat.Matrix / mat.Vector.
//   - Let the slicing driver address gonum matrices directly (WrapGonum),
//     so the same Range selections work on both representations.
//
// Behavior highlights:
//   - gonum's At/Set panic on bad indices; the wrapper bounds-checks first and
//     returns ErrOutOfRange instead.
//   - Writes go through mat.Mutable; other gonum types are read-only (ErrImmutable).
//
// AI-Hints:
//   - Use FindVec on a mat.VecDense mask to build a row/col selection.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvslice/ranges"
)

const (
	ctxFromGonum = "FromGonum"
	ctxGetGonum  = "GetGonum"
	ctxPutGonum  = "PutGonum"
)

// FromGonum copies a gonum matrix into a new *Dense.
//
// Errors: ErrNilMatrix, ErrBadShape (zero-area), ErrNaNInf (policy).
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(ctxFromGonum, ErrBadShape)
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = a.At(i, j)
		}
	}
	out, err := NewDenseFrom(r, c, data, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense. A zero-area m yields an empty
// mat.Dense (gonum cannot allocate zero-length dimensions).
func (m *Dense) ToGonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(m.r, m.c, m.Data())
}

// WrapGonum adapts a gonum matrix to Matrix without copying.
func WrapGonum(a mat.Matrix) Matrix {
	if a == nil {
		return nil
	}

	return &gonumMatrix{a: a}
}

// GetGonum slices a gonum matrix with one Range per axis and returns the
// block as a *mat.Dense.
func GetGonum(a mat.Matrix, rs, cs ranges.Range, opts ...Option) (*mat.Dense, error) {
	if a == nil {
		return nil, matrixErrorf(ctxGetGonum, ErrNilMatrix)
	}
	out, err := Get(WrapGonum(a), rs, cs, append([]Option{WithNoValidateNaNInf()}, opts...)...)
	if err != nil {
		return nil, matrixErrorf(ctxGetGonum, err)
	}

	return out.ToGonum(), nil
}

// PutGonum scatters x into the block of a selected by rs × cs.
// When x shares a backing array with a (a itself, a Slice of it, or their
// transposes) it is copied first, so the write reads the pre-write state.
func PutGonum(a mat.Mutable, rs, cs ranges.Range, x mat.Matrix, opts ...Option) error {
	if a == nil || x == nil {
		return matrixErrorf(ctxPutGonum, ErrNilMatrix)
	}
	if err := Put(WrapGonum(a), rs, cs, WrapGonum(x), opts...); err != nil {
		return matrixErrorf(ctxPutGonum, err)
	}

	return nil
}

// FindVec selects the ascending positions of the nonzero entries of v.
func FindVec(v mat.Vector) *ranges.IndicesRange {
	if v == nil {
		return ranges.Find(nil)
	}
	n := v.Len()
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		buf[i] = v.AtVec(i)
	}

	return ranges.Find(buf)
}

// backingOf returns the flat storage behind a, when gonum exposes it.
func backingOf(a mat.Matrix) ([]float64, bool) {
	switch t := a.(type) {
	case mat.RawMatrixer:
		return t.RawMatrix().Data, true
	case mat.RawVectorer:
		return t.RawVector().Data, true
	case mat.Transpose:
		return backingOf(t.Matrix)
	default:
		return nil, false
	}
}

// sameArray reports whether a and b are windows of one array. gonum slices
// keep their capacity up to the array end, so the last element of the full
// capacity identifies the array.
func sameArray(a, b []float64) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}

	return &a[:cap(a)][cap(a)-1] == &b[:cap(b)][cap(b)-1]
}

// gonumMatrix is the Matrix view of a mat.Matrix.
type gonumMatrix struct {
	a mat.Matrix
}

func (g *gonumMatrix) Rows() int {
	r, _ := g.a.Dims()

	return r
}

func (g *gonumMatrix) Cols() int {
	_, c := g.a.Dims()

	return c
}

func (g *gonumMatrix) inBounds(i, j int) bool {
	r, c := g.a.Dims()

	return i >= 0 && i < r && j >= 0 && j < c
}

func (g *gonumMatrix) At(i, j int) (float64, error) {
	if !g.inBounds(i, j) {
		return 0, fmt.Errorf("gonum.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.a.At(i, j), nil
}

func (g *gonumMatrix) Set(i, j int, v float64) error {
	mut, ok := g.a.(mat.Mutable)
	if !ok {
		return fmt.Errorf("gonum.Set(%d,%d): %w", i, j, ErrImmutable)
	}
	if !g.inBounds(i, j) {
		return fmt.Errorf("gonum.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	mut.Set(i, j, v)

	return nil
}

// overlaps reports whether writes through g may be observed through o.
// Types whose storage gonum does not expose are assumed to overlap.
func (g *gonumMatrix) overlaps(o *gonumMatrix) bool {
	a, okA := backingOf(g.a)
	b, okB := backingOf(o.a)
	if !okA || !okB {
		return true
	}

	return sameArray(a, b)
}

// Clone materializes the wrapped matrix as a *Dense (NaN/Inf kept as-is).
func (g *gonumMatrix) Clone() Matrix {
	r, c := g.a.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.a.At(i, j)
		}
	}

	return out
}
