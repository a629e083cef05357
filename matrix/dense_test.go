// Package matrix_test contains unit tests for the Dense implementation
// and the integer algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affnet/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRows covers the copy semantics and the rectangular guard.
func TestNewFromRows(t *testing.T) {
	src := [][]int{{1, 0}, {0, 1}, {1, 1}}
	m, err := matrix.NewFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	src[0][0] = 9 // the matrix owns its buffer
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	require.False(t, matrix.Equal(m, c))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestMulIncidenceProjection checks B·Bᵀ on the two-person, two-group example.
func TestMulIncidenceProjection(t *testing.T) {
	b, err := matrix.NewFromRows([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)

	p, err := matrix.Mul(b, bt)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 2}, {2, 2}}, p.ToRows())
}

// TestMulRectangular checks a non-square product and the inner-dimension guard.
func TestMulRectangular(t *testing.T) {
	a, _ := matrix.NewFromRows([][]int{{1, 0, 1}, {0, 1, 1}})
	bt, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {0, 1}, {1, 1}}, bt.ToRows())

	p, err := matrix.Mul(a, bt)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2, 1}, {1, 2}}, p.ToRows())
	require.True(t, matrix.IsSymmetric(p))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestThresholdOffDiagonal covers the helpers used by the projection.
func TestThresholdOffDiagonal(t *testing.T) {
	m, _ := matrix.NewFromRows([][]int{{4, 1, 0}, {1, 1, 0}, {0, 0, 2}})

	bin, err := matrix.Threshold(m, 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}}, bin.ToRows())

	sum, err := matrix.SumOffDiagonal(m)
	require.NoError(t, err)
	require.Equal(t, 2, sum)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.SumOffDiagonal(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.False(t, matrix.IsSymmetric(rect))
}

// TestDoEarlyStop verifies row-major visiting and early termination.
func TestDoEarlyStop(t *testing.T) {
	m, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(i, j, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestEqualNil covers the nil conventions of Equal.
func TestEqualNil(t *testing.T) {
	m, _ := matrix.NewDense(1, 1)
	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(m, nil))
	other, _ := matrix.NewDense(1, 2)
	require.False(t, matrix.Equal(m, other))
}
