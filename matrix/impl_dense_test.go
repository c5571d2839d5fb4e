// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/moldesc/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
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

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNumericPolicy covers the default guard and the distance exception.
func TestNumericPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)

	d, err := matrix.NewDense(2, 2, matrix.WithAllowInfDistances())
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, math.Inf(1)))
	require.ErrorIs(t, d.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, d.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	u, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, u.Set(0, 0, math.NaN()))
}

// TestCloneIndependence ensures a clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFilled(2, 2, 0.5)
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	require.Equal(t, 0.5, v)
	v, _ = c.At(0, 0)
	require.Equal(t, 9.0, v)
}

// TestDiagonalAndColumn covers the diagonal overlay used by weighted matrices.
func TestDiagonalAndColumn(t *testing.T) {
	m, err := matrix.NewFilled(3, 3, 0.001)
	require.NoError(t, err)

	require.NoError(t, m.SetDiagonal([]float64{1, 2, 3}))
	require.Equal(t, []float64{1, 2, 3}, m.Diagonal())

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.001, 2, 0.001}, col)

	_, err = m.Column(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.SetDiagonal([]float64{1}), matrix.ErrDimensionMismatch)

	// A rejected value leaves the diagonal untouched.
	require.ErrorIs(t, m.SetDiagonal([]float64{7, math.NaN(), 7}), matrix.ErrNaNInf)
	require.Equal(t, []float64{1, 2, 3}, m.Diagonal())
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1.5))
	require.Equal(t, "[0, 1.5]\n[0, 0]\n", m.String())
}
