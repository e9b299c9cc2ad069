// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, make([]float64, 6), m.Values())
}

func TestDense_ValuesIsACopy(t *testing.T) {
	m, err := matrix.Euclidean([]float64{0, 3}, []float64{0, 4})
	require.NoError(t, err)

	vals := m.Values()
	vals[1] = 42
	require.Equal(t, 5.0, m.Values()[1], "Values must return a copy")
}

func TestDense_Induced(t *testing.T) {
	m, err := matrix.Euclidean([]float64{0, 3, 0, 10}, []float64{0, 0, 4, 10})
	require.NoError(t, err)

	sub, err := m.Induced([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.InDelta(t, 5.0, sub.Values()[1], 1e-12) // (3,0)-(0,4)

	_, err = m.Induced([]int{0, 4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
