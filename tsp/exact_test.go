package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/tsp"
)

// Scenario A: the unit square's optimal tour is its perimeter.
func TestHeldKarp_UnitSquare(t *testing.T) {
	in := unitSquare(t)
	res := tsp.HeldKarp(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)

	assert.Equal(t, 4.0, res.Distance)
	assert.True(t, res.Optimal)
	assert.Empty(t, res.Note)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Len(t, res.Steps, 1, "DP reports the final tour as its only step")
}

func TestHeldKarp_TinyInstances(t *testing.T) {
	one := mustInstance(t, 2, 2)
	res := tsp.HeldKarp(one, tsp.Limits{})
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Zero(t, res.Distance)

	two := mustInstance(t, 0, 0, 3, 4)
	res = tsp.HeldKarp(two, tsp.Limits{})
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	require.InDelta(t, 10.0, res.Distance, 1e-9)
}

// Boundary: n=16 exceeds the guard and must redirect to greedy with a note.
func TestHeldKarp_GuardRedirectsAt16(t *testing.T) {
	in := randomInstance(t, 16, seedDet)
	res := tsp.HeldKarp(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)

	assert.False(t, res.Optimal)
	assert.NotEmpty(t, res.Note)
	assert.Contains(t, res.Note, "greedy")
	assert.Equal(t, tsp.MethodGreedy, res.Method)
	assert.Equal(t, tsp.Greedy(in).Tour, res.Tour)
}

// Boundary: n=15 is still within the guard and runs the DP to completion.
func TestHeldKarp_RunsAt15(t *testing.T) {
	in := randomInstance(t, 15, seedDet)
	res := tsp.HeldKarp(in, tsp.DefaultLimits())
	requireValidResult(t, in, res)

	assert.True(t, res.Optimal)
	assert.Empty(t, res.Note)
	assert.Equal(t, tsp.MethodHeldKarp, res.Method)
	assert.LessOrEqual(t, res.Distance, tsp.Greedy(in).Distance+1e-9)
}

func TestHeldKarp_CustomLimit(t *testing.T) {
	in := randomInstance(t, 6, seedDet)
	res := tsp.HeldKarp(in, tsp.Limits{HeldKarp: 5})
	assert.False(t, res.Optimal)
	assert.NotEmpty(t, res.Note)
}
