package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/tsp"
)

func TestDivideAndConquer_SmallIsExact(t *testing.T) {
	in := unitSquare(t)
	res := tsp.DivideAndConquer(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)
	assert.Equal(t, 4.0, res.Distance)
	assert.True(t, res.Optimal, "whole instance within the base case is solved exactly")
	assert.Equal(t, tsp.MethodDivideConquer, res.Method)
}

func TestDivideAndConquer_TwoClusters(t *testing.T) {
	// Two unit squares far apart along x; the splice must join them with two
	// bridges, so the tour is 2*3 (open perimeters) + 2 bridges of length 10.
	in := mustInstance(t,
		0, 0, 0, 1, 1, 1, 1, 0,
		11, 0, 11, 1, 12, 1, 12, 0,
	)
	res := tsp.DivideAndConquer(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)
	assert.False(t, res.Optimal)
	assert.InDelta(t, 26.0, res.Distance, 1e-9)
}

func TestDivideAndConquer_RandomInstancesAreValid(t *testing.T) {
	for _, n := range []int{6, 7, 11, 25, 40} {
		in := randomInstance(t, n, seedDet+int64(n))
		res := tsp.DivideAndConquer(in, tsp.DefaultLimits())
		requireValidResult(t, in, res)
		require.False(t, res.Optimal, "n=%d", n)
	}
}

func TestDivideAndConquer_EqualXFallsBackToRankSplit(t *testing.T) {
	// All cities share x; the median split would leave one side empty.
	in := mustInstance(t, 0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6)
	res := tsp.DivideAndConquer(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)
	assert.InDelta(t, 12.0, res.Distance, 1e-9)
}
