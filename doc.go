// Package lvslice brings MATLAB-style sub-matrix selection to Go: pick rows
// and columns with small declarative ranges, then read or write the block.
//
// 🚀 What is lvslice?
//
//	A compact library built from two layers:
//		• ranges: Point, Interval (end-inclusive), Indices, Find and All selections
//		• matrix: a bounds-checked Dense matrix and the slicing driver
//		  (Get, Put, PutScalar, GetRows/GetColumns, GetMasked)
//		• interop: the same selections over gonum matrices and gorgonia tensors
//
// ✨ Why choose lvslice?
//
//   - Declarative – a selection is built once and bound to any axis later
//   - Safe – every failure is a sentinel error, never a panic
//   - All-or-nothing writes – positions are proven before any element moves
//
// Under the hood, everything is organized under two subpackages:
//
//	ranges/ : the Range contract, its four variants and the factory
//	matrix/ : Dense, MatrixView, the slicing driver, validators and bridges
//
// Quick example (A is 3×4):
//
//	A(:, 1)       →  matrix.Get(A, ranges.All(), ranges.Point(0))
//	A(2:3, 4)     →  matrix.Get(A, ranges.Interval(1, 2), ranges.Point(3))
//	A(1, [1 3 2]) →  matrix.Get(A, ranges.Point(0), ranges.Indices([]int{0, 2, 1}))
//
//	go get github.com/katalvlaran/lvslice
package lvslice
