// SPDX-License-Identifier: MIT

// Package matrix - slicing driver: rectangular reads and writes addressed by
// one ranges.Range per axis.
//
// Purpose:
//   - Bind each selection to the actual axis extent: rs.Init(0, Rows), cs.Init(0, Cols).
//   - Walk the cross product rows→cols and move elements between the source
//     position (rs.Value(), cs.Value()) and the block position (rs.Index(), cs.Index()).
//
// Determinism & Policy:
//   - Fixed row-major order; the column range is re-initialized for every row step.
//   - Range errors (e.g. ranges.ErrOutOfBounds from an interval) propagate wrapped.
//   - Strict selection (default): every selected position is checked against
//     the axis BEFORE any element moves; failures report ErrOutOfRange and
//     writes are all-or-nothing.
//   - Lazy selection: failures surface at the first failing At/Set.
//
// Concurrency:
//   - Ranges are consumed by the call; never share one Range between two
//     concurrent calls. The matrix must not be mutated during a call.
//
// AI-Hints:
//   - *Dense operands take a flat-buffer fast path after strict validation.
//   - Use GetRows/GetColumns when one axis is "all".
//   - Use GetMasked with 0/1 vectors for logical indexing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvslice/ranges"
)

// ---------- operation tags ----------

const (
	opGet       = "Get"
	opPut       = "Put"
	opPutScalar = "PutScalar"
	opGetRows   = "GetRows"
	opGetCols   = "GetColumns"
	opGetRow    = "GetRow"
	opGetCol    = "GetColumn"
	opGetMasked = "GetMasked"

	axisRows = "rows"
	axisCols = "cols"
)

// Get copies the block selected by rs × cs into a new *Dense.
// MAIN DESCRIPTION:
//   - The read half of the slicing driver.
//
// Implementation:
//   - Stage 1: validate m and both ranges; bind them to (0,Rows) and (0,Cols).
//   - Stage 2: allocate a rs.Len()×cs.Len() result (a zero-length axis is legal).
//   - Stage 3: nested walk; dst(rs.Index(), cs.Index()) = src(rs.Value(), cs.Value()).
//
// Errors:
//   - ErrNilMatrix, ranges.ErrOutOfBounds (interval binding), ErrOutOfRange (position).
//
// Determinism:
//   - Fixed rows→cols order.
//
// Complexity:
//   - Time O(len(rs)*len(cs)), Space O(len(rs)*len(cs)).
//
// Notes:
//   - The result carries the numeric policy resolved from opts.
func Get(m Matrix, rs, cs ranges.Range, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	_, cols, err := bindSelection(m, rs, cs, o.strictSelection)
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}

	out, err := newDenseZeroOK(rs.Len(), cs.Len(), o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opGet, err)
	}

	// Fast path: positions are already proven in range, read the flat buffer.
	src, isDense := m.(*Dense)
	fast := isDense && o.strictSelection

	var r, i, dst int
	var v float64
	for ; rs.HasMore(); rs.Next() {
		if err = cs.Init(0, cols); err != nil {
			return nil, matrixErrorf(opGet, fmt.Errorf("%s: %w", axisCols, err))
		}
		r, i = rs.Value(), rs.Index()
		for ; cs.HasMore(); cs.Next() {
			if dst, err = out.blockOffset(i, cs.Index()); err != nil {
				return nil, matrixErrorf(opGet, err)
			}
			if fast {
				out.data[dst] = src.data[r*src.c+cs.Value()]
				continue
			}
			if v, err = m.At(r, cs.Value()); err != nil {
				return nil, matrixErrorf(opGet, err)
			}
			out.data[dst] = v
		}
	}

	return out, nil
}

// Put scatters x into the block of m selected by rs × cs.
// MAIN DESCRIPTION:
//   - The write half of the slicing driver: m(rs.Value(), cs.Value()) = x(rs.Index(), cs.Index()).
//
// Implementation:
//   - Stage 1: validate m, x and ranges; bind ranges to m's axes.
//   - Stage 2: require x to be exactly rs.Len()×cs.Len().
//   - Stage 3: snapshot x when it shares storage with m; under strict
//     selection also pre-check x against m's numeric policy.
//   - Stage 4: nested walk writing through m.Set.
//
// Errors:
//   - ErrNilMatrix, ranges.ErrOutOfBounds, ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
//
// Behavior highlights:
//   - Repeated positions in a selection are written in step order (last write wins).
//   - Under strict selection no element of m changes when an error is returned.
//
// Complexity:
//   - Time O(len(rs)*len(cs)), Space O(1) (O(x) when x aliases m).
func Put(m Matrix, rs, cs ranges.Range, x Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(x); err != nil {
		return matrixErrorf(opPut, err)
	}
	_, cols, err := bindSelection(m, rs, cs, o.strictSelection)
	if err != nil {
		return matrixErrorf(opPut, err)
	}
	if x.Rows() != rs.Len() || x.Cols() != cs.Len() {
		return matrixErrorf(opPut, fmt.Errorf("source %dx%d for %dx%d selection: %w",
			x.Rows(), x.Cols(), rs.Len(), cs.Len(), ErrDimensionMismatch))
	}
	if sharesStorage(m, x) {
		x = x.Clone() // read the pre-write state only
	}
	if o.strictSelection && policyOf(m) {
		if err = ValidateFinite(x); err != nil {
			return matrixErrorf(opPut, err)
		}
	}

	var r, i int
	var v float64
	for ; rs.HasMore(); rs.Next() {
		if err = cs.Init(0, cols); err != nil {
			return matrixErrorf(opPut, fmt.Errorf("%s: %w", axisCols, err))
		}
		r, i = rs.Value(), rs.Index()
		for ; cs.HasMore(); cs.Next() {
			if v, err = x.At(i, cs.Index()); err != nil {
				return matrixErrorf(opPut, err)
			}
			if err = m.Set(r, cs.Value(), v); err != nil {
				return matrixErrorf(opPut, err)
			}
		}
	}

	return nil
}

// PutScalar writes v into every cell of the block selected by rs × cs.
//
// Errors:
//   - ErrNilMatrix, ranges.ErrOutOfBounds, ErrOutOfRange, ErrNaNInf.
//
// Complexity: O(len(rs)*len(cs)).
func PutScalar(m Matrix, rs, cs ranges.Range, v float64, opts ...Option) error {
	o := gatherOptions(opts...)
	_, cols, err := bindSelection(m, rs, cs, o.strictSelection)
	if err != nil {
		return matrixErrorf(opPutScalar, err)
	}
	if policyOf(m) && isNonFinite(v) {
		return matrixErrorf(opPutScalar, ErrNaNInf)
	}

	for ; rs.HasMore(); rs.Next() {
		if err = cs.Init(0, cols); err != nil {
			return matrixErrorf(opPutScalar, fmt.Errorf("%s: %w", axisCols, err))
		}
		for ; cs.HasMore(); cs.Next() {
			if err = m.Set(rs.Value(), cs.Value(), v); err != nil {
				return matrixErrorf(opPutScalar, err)
			}
		}
	}

	return nil
}

// GetRows copies whole rows selected by rs.
func GetRows(m Matrix, rs ranges.Range, opts ...Option) (*Dense, error) {
	out, err := Get(m, rs, ranges.All(), opts...)
	if err != nil {
		return nil, matrixErrorf(opGetRows, err)
	}

	return out, nil
}

// GetColumns copies whole columns selected by cs.
func GetColumns(m Matrix, cs ranges.Range, opts ...Option) (*Dense, error) {
	out, err := Get(m, ranges.All(), cs, opts...)
	if err != nil {
		return nil, matrixErrorf(opGetCols, err)
	}

	return out, nil
}

// GetRow copies the columns cs of row r as a 1×len(cs) matrix.
func GetRow(m Matrix, r int, cs ranges.Range, opts ...Option) (*Dense, error) {
	out, err := Get(m, ranges.Point(r), cs, opts...)
	if err != nil {
		return nil, matrixErrorf(opGetRow, err)
	}

	return out, nil
}

// GetColumn copies the rows rs of column c as a len(rs)×1 matrix.
func GetColumn(m Matrix, rs ranges.Range, c int, opts ...Option) (*Dense, error) {
	out, err := Get(m, rs, ranges.Point(c), opts...)
	if err != nil {
		return nil, matrixErrorf(opGetCol, err)
	}

	return out, nil
}

// GetMasked copies the rows and columns whose mask entries are nonzero
// (logical indexing). Masks need not match the axis length, but every
// nonzero position must fall inside it.
func GetMasked(m Matrix, rowMask, colMask []float64, opts ...Option) (*Dense, error) {
	out, err := Get(m, ranges.Find(rowMask), ranges.Find(colMask), opts...)
	if err != nil {
		return nil, matrixErrorf(opGetMasked, err)
	}

	return out, nil
}

// ---------- *Dense method forms ----------

// Get is the method form of the package-level Get. The result inherits m's
// numeric policy unless opts override it.
func (m *Dense) Get(rs, cs ranges.Range, opts ...Option) (*Dense, error) {
	return Get(m, rs, cs, withPolicyOf(m, opts)...)
}

// Put is the method form of the package-level Put.
func (m *Dense) Put(rs, cs ranges.Range, x Matrix, opts ...Option) error {
	return Put(m, rs, cs, x, opts...)
}

// PutScalar is the method form of the package-level PutScalar.
func (m *Dense) PutScalar(rs, cs ranges.Range, v float64, opts ...Option) error {
	return PutScalar(m, rs, cs, v, opts...)
}

// ---------- internal helpers ----------

// bindSelection validates m and both ranges and binds them to m's axes.
// Under strict policy each range is also proven in-bounds (and rewound).
func bindSelection(m Matrix, rs, cs ranges.Range, strict bool) (rows, cols int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, err
	}
	if isNilRange(rs) || isNilRange(cs) {
		return 0, 0, ErrNilMatrix
	}
	rows, cols = m.Rows(), m.Cols()
	if err = bindAxis(rs, rows, strict, axisRows); err != nil {
		return 0, 0, err
	}
	if err = bindAxis(cs, cols, strict, axisCols); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// bindAxis runs r.Init(0, n) and, when strict, ValidateSelection.
func bindAxis(r ranges.Range, n int, strict bool, axis string) error {
	if strict {
		if err := ValidateSelection(r, n); err != nil {
			return fmt.Errorf("%s: %w", axis, err)
		}

		return nil
	}
	if err := r.Init(0, n); err != nil {
		return fmt.Errorf("%s: %w", axis, err)
	}

	return nil
}

// blockOffset maps a block coordinate to the result buffer. A Range that
// yields more steps than its Len() is reported, not allowed to overrun.
func (m *Dense) blockOffset(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("block cell (%d,%d) of %dx%d: %w", i, j, m.r, m.c, ErrDimensionMismatch)
	}

	return i*m.c + j, nil
}

// policyOf reports whether m rejects non-finite writes (known implementations only).
func policyOf(m Matrix) bool {
	switch t := m.(type) {
	case *Dense:
		return t.validateNaNInf
	case *MatrixView:
		return t.base.validateNaNInf
	default:
		return false
	}
}

// withPolicyOf prepends m's numeric policy so explicit opts still win.
func withPolicyOf(m *Dense, opts []Option) []Option {
	base := WithNoValidateNaNInf()
	if m.validateNaNInf {
		base = WithValidateNaNInf()
	}

	return append([]Option{base}, opts...)
}

// sharesStorage reports whether writes to m may be observed through x
// (same *Dense, views over the same base, or overlapping gonum storage).
func sharesStorage(m, x Matrix) bool {
	if gm, ok := m.(*gonumMatrix); ok {
		gx, ok := x.(*gonumMatrix)

		return ok && gm.overlaps(gx)
	}
	baseOf := func(a Matrix) *Dense {
		switch t := a.(type) {
		case *Dense:
			return t
		case *MatrixView:
			return t.base
		default:
			return nil
		}
	}
	bm, bx := baseOf(m), baseOf(x)

	return bm != nil && bm == bx
}
