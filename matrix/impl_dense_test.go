// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvslice/matrix"
	"github.com/katalvlaran/lvslice/ranges"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom covers length checks, copying and the numeric policy.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	data[0] = 99 // caller buffer is copied
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN())) // relaxed policy carried by the instance
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = clone.At(0, 0)
	require.Equal(t, 3.0, v)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestRowAndData covers the copying accessors.
func TestRowAndData(t *testing.T) {
	m := Fixture3x4(t)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8, 11}, row)
	row[0] = -1
	v, _ := m.At(1, 0)
	require.Equal(t, 2.0, v)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	r, c := m.Shape()
	require.Len(t, m.Data(), r*c)
}

// TestFindIndices covers the nonzero-positions query used by find selections.
func TestFindIndices(t *testing.T) {
	v := MustDenseFrom(t, 1, 4, 0, 5, 0, 3)
	require.Equal(t, []int{1, 3}, v.FindIndices())

	m := MustDenseFrom(t, 2, 2, 0, 1, 1, 0)
	require.Equal(t, []int{1, 2}, m.FindIndices()) // row-major linear positions

	upper := MustDenseFrom(t, 2, 2, 0, 1, 0, 0)
	require.Equal(t, []int{1}, upper.FindIndices()) // column-major numbering would give 2
}

// TestDo covers the visitor and its early stop.
func TestDo(t *testing.T) {
	m := MustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	var sum float64
	m.Do(func(_, _ int, v float64) bool { sum += v; return true })
	require.Equal(t, 10.0, sum)

	var cells [][2]int
	m.Do(func(i, j int, _ float64) bool {
		cells = append(cells, [2]int{i, j})
		return len(cells) < 3
	})
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}}, cells)
}

// TestViewSharesStorage covers the no-copy window and its Matrix conformance.
func TestViewSharesStorage(t *testing.T) {
	m := Fixture3x4(t)
	v, err := m.View(1, 2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	x, err := v.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, x)

	require.NoError(t, v.Set(1, 1, -12))
	x, _ = m.At(2, 3)
	require.Equal(t, -12.0, x) // write-through

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	cp := v.Clone().(*matrix.Dense)
	requireDense(t, cp, 2, 2, 8, 11, 9, -12)

	_, err = m.View(2, 0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestViewOf binds interval selections to the matrix axes.
func TestViewOf(t *testing.T) {
	m := Fixture3x4(t)
	v, err := m.ViewOf(ranges.Interval(0, 1), ranges.Interval(1, 3))
	require.NoError(t, err)
	requireDense(t, v.Clone().(*matrix.Dense), 2, 3, 4, 7, 10, 5, 8, 11)

	_, err = m.ViewOf(ranges.Interval(1, 3), ranges.Interval(0, 0))
	require.ErrorIs(t, err, ranges.ErrOutOfBounds)

	_, err = m.ViewOf(nil, ranges.Interval(0, 0))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInduced covers copy extraction from explicit index lists.
func TestInduced(t *testing.T) {
	m := Fixture3x4(t)
	sub, err := m.Induced([]int{2, 0, 2}, []int{3})
	require.NoError(t, err)
	requireDense(t, sub, 3, 1, 12, 10, 12)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	empty, err := m.Induced(nil, []int{0, 1})
	require.NoError(t, err)
	requireDense(t, empty, 0, 2)
}

// TestFacades covers the thin constructors.
func TestFacades(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireDense(t, I, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1)

	z, err := matrix.ZerosLike(Fixture3x4(t))
	require.NoError(t, err)
	requireDense(t, z, 3, 4, make([]float64, 12)...)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewZeros(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cp := matrix.CloneMatrix(I)
	ok, err := matrix.AllClose(I, cp, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
