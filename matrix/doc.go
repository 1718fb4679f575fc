// Package matrix offers a row-major Dense matrix and MATLAB-style sub-matrix
// selection driven by ranges.Range values.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major float64 matrix, and MatrixView, a
//     no-copy window over it.
//   - The slicing driver: Get (read a block), Put / PutScalar (write a block),
//     plus GetRows, GetColumns, GetRow, GetColumn and GetMasked.
//   - Validators and sentinel errors shared by every operation.
//   - Interop with gonum (mat.Matrix, mat.Vector) and gorgonia tensors.
//
// A selection is declared per axis with the ranges factory and bound to the
// matrix when the driver runs:
//
//	A, _ := matrix.NewDenseFrom(3, 4, data)
//	col0, _ := matrix.Get(A, ranges.All(), ranges.Point(0))      // 3×1
//	block, _ := matrix.Get(A, ranges.Interval(1, 2), ranges.Point(3)) // 2×1
//
// See the examples in this package and in ranges for usage patterns.
package matrix
