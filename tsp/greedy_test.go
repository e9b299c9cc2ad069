package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/tsp"
)

func TestGreedy_LineVisitsInOrder(t *testing.T) {
	in := mustInstance(t, 0, 0, 1, 0, 3, 0, 6, 0)
	res := tsp.Greedy(in)
	requireValidResult(t, in, res)

	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	assert.InDelta(t, 12.0, res.Distance, 1e-9)
	assert.False(t, res.Optimal)
	assert.Equal(t, tsp.MethodGreedy, res.Method)
}

func TestGreedy_StepTrace(t *testing.T) {
	in := mustInstance(t, 0, 0, 1, 0, 3, 0, 6, 0)
	res := tsp.Greedy(in)

	require.Len(t, res.Steps, 3, "one step per extension")
	assert.Equal(t, []int{0, 1}, res.Steps[0].Tour)
	assert.Equal(t, 1, res.Steps[0].City)
	assert.InDelta(t, 1.0, res.Steps[0].Distance, 1e-9)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Steps[2].Tour)
	assert.InDelta(t, 6.0, res.Steps[2].Distance, 1e-9)
}

func TestGreedy_TiesPickSmallestIndex(t *testing.T) {
	// Cities 1 and 2 are equidistant from 0.
	in := mustInstance(t, 0, 0, 1, 0, -1, 0)
	res := tsp.Greedy(in)
	require.Equal(t, 1, res.Tour[1])
}

func TestGreedy_SingleCity(t *testing.T) {
	in := mustInstance(t, 5, 5)
	res := tsp.Greedy(in)
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Zero(t, res.Distance)
	require.Empty(t, res.Steps)
}
