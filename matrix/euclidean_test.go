// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/matrix"
)

func TestEuclidean_UnitSquare(t *testing.T) {
	m, err := matrix.Euclidean([]float64{0, 0, 1, 1}, []float64{0, 1, 1, 0})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(m, 0))

	w := m.Values()
	assert.Equal(t, 1.0, w[0*4+1])
	assert.InDelta(t, math.Sqrt2, w[0*4+2], 1e-15)
	assert.Equal(t, w[0*4+2], w[2*4+0], "mirrored entries must be bit-identical")
}

func TestEuclidean_Errors(t *testing.T) {
	_, err := matrix.Euclidean([]float64{0}, []float64{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Euclidean(nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Euclidean([]float64{0, math.NaN()}, []float64{0, 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// Squaring 1e200 overflows; the distance itself does not.
func TestEuclidean_LargeCoordinates(t *testing.T) {
	m, err := matrix.Euclidean([]float64{0, 1e200, 0}, []float64{0, 0, 1e200})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(m, 0))

	w := m.Values()
	assert.Equal(t, 1e200, w[0*3+1])
	assert.InEpsilon(t, math.Sqrt2*1e200, w[1*3+2], 1e-12)
}

func TestEuclidean_OverflowingDifference(t *testing.T) {
	_, err := matrix.Euclidean([]float64{1e308, -1e308}, []float64{0, 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Euclidean([]float64{0, 0}, []float64{-math.MaxFloat64, math.MaxFloat64})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
