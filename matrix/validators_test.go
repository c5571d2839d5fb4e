package matrix_test

import (
	"testing"

	"github.com/katalvlaran/moldesc/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
	require.NoError(t, matrix.ValidateSymmetric(sq, 0))

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)

	require.NoError(t, sq.Set(0, 1, 1e-12))
	require.NoError(t, matrix.ValidateSymmetric(sq, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(sq, 0), matrix.ErrAsymmetry)
}
