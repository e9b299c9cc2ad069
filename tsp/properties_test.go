package tsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/tsp"
)

// solvers lists every strategy under the default limits.
func solvers() map[string]func(*tsp.Instance) tsp.Result {
	lim := tsp.DefaultLimits()

	return map[string]func(*tsp.Instance) tsp.Result{
		"greedy":        tsp.Greedy,
		"dp":            func(in *tsp.Instance) tsp.Result { return tsp.HeldKarp(in, lim) },
		"backtracking":  func(in *tsp.Instance) tsp.Result { return tsp.Backtracking(in, lim) },
		"branchbound":   func(in *tsp.Instance) tsp.Result { return tsp.BranchAndBound(in, lim) },
		"divideconquer": func(in *tsp.Instance) tsp.Result { return tsp.DivideAndConquer(in, lim) },
	}
}

// Every tour visits each city once, returns to 0, and its distance equals
// the sum of its edges, for every strategy and a spread of sizes.
func TestProperty_ToursAreHamiltonian(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 11, 21, 23} {
		in := randomInstance(t, n, int64(n)*31)
		for name, solve := range solvers() {
			t.Run(fmt.Sprintf("%s/n=%d", name, n), func(t *testing.T) {
				requireValidResult(t, in, solve(in))
			})
		}
	}
}

// Exact DP never loses to greedy for n ≤ 15.
func TestProperty_DPNotWorseThanGreedy(t *testing.T) {
	for n := 2; n <= 15; n++ {
		in := randomInstance(t, n, seedDet+int64(n))
		dp := tsp.HeldKarp(in, tsp.DefaultLimits())
		gr := tsp.Greedy(in)
		require.True(t, dp.Optimal, "n=%d", n)
		require.LessOrEqual(t, dp.Distance, gr.Distance+1e-9, "n=%d", n)
	}
}

// DP, backtracking and branch-and-bound agree when all three run exactly.
func TestProperty_ExactSolversAgree(t *testing.T) {
	lim := tsp.DefaultLimits()
	for n := 2; n <= 10; n++ {
		for seed := int64(0); seed < 3; seed++ {
			in := randomInstance(t, n, 100*seed+int64(n))
			dp := tsp.HeldKarp(in, lim)
			bt := tsp.Backtracking(in, lim)
			bb := tsp.BranchAndBound(in, lim)
			require.True(t, dp.Optimal && bt.Optimal && bb.Optimal)
			require.InDelta(t, dp.Distance, bt.Distance, epsCost, "n=%d seed=%d", n, seed)
			require.InDelta(t, dp.Distance, bb.Distance, epsCost, "n=%d seed=%d", n, seed)
		}
	}
}

func TestValidateTour_Rejects(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{0, 2, 1, 0}, 3, 0))
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 0}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 1, 0}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 1}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 0}, 3, 5), tsp.ErrStartOutOfRange)
}
