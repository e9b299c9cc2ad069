package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/knapsack"
)

// mustInstance builds an instance or fails the test.
func mustInstance(t *testing.T, weights, values []int, capacity int) *knapsack.Instance {
	t.Helper()
	in, err := knapsack.NewInstance(weights, values, capacity)
	require.NoError(t, err)

	return in
}

// randomInstance returns n items with weights in [1,20], values in [0,30]
// and a capacity of roughly half the total weight.
func randomInstance(t *testing.T, n int, seed int64) *knapsack.Instance {
	t.Helper()
	var (
		rng     = rand.New(rand.NewSource(seed))
		weights = make([]int, n)
		values  = make([]int, n)
		total   int
	)
	for i := 0; i < n; i++ {
		weights[i] = 1 + rng.Intn(20)
		values[i] = rng.Intn(31)
		total += weights[i]
	}

	return mustInstance(t, weights, values, total/2)
}

// scenarioB has two optimal selections of value 5 and weight 4.
func scenarioB(t *testing.T) *knapsack.Instance {
	return mustInstance(t, []int{1, 3, 4}, []int{1, 4, 5}, 4)
}

// requireFeasible checks the selection against the instance and the
// reported totals.
func requireFeasible(t *testing.T, in *knapsack.Instance, res knapsack.Result) {
	t.Helper()
	weight, value, err := knapsack.Validate(in, res.Selected)
	require.NoError(t, err, "selection %v", res.Selected)
	require.Equal(t, weight, res.TotalWeight)
	require.Equal(t, value, res.TotalValue)
	require.IsIncreasing(t, append([]int{-1}, res.Selected...), "selection must be ascending")
}
