// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowtham152/optimization-galaxy/tsp"
)

const (
	// epsCost absorbs the 1e-9 cost stabilization when two different optimal
	// tours are compared.
	epsCost = 1e-8

	// seedDet is the base seed for random instances.
	seedDet = int64(7)
)

// mustInstance builds an instance from (x,y) pairs.
func mustInstance(t *testing.T, xy ...float64) *tsp.Instance {
	t.Helper()
	require.Zero(t, len(xy)%2, "odd coordinate count")
	pts := make([]tsp.Point, len(xy)/2)
	for i := range pts {
		pts[i] = tsp.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	in, err := tsp.NewInstance(pts)
	require.NoError(t, err)

	return in
}

// randomInstance returns a deterministic n-city instance on [0,100)².
func randomInstance(t *testing.T, n int, seed int64) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(tsp.RandomPoints(n, 100, seed))
	require.NoError(t, err)

	return in
}

// unitSquare is scenario A: a perimeter of length 4 is optimal.
func unitSquare(t *testing.T) *tsp.Instance {
	return mustInstance(t, 0, 0, 0, 1, 1, 1, 1, 0)
}

// requireValidResult asserts a closed Hamiltonian cycle from city 0 whose
// reported distance equals the sum of its edges.
func requireValidResult(t *testing.T, in *tsp.Instance, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, in.Len(), 0), "tour %v", res.Tour)
	got, err := tsp.TourCost(in, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, got, res.Distance, 1e-9, "reported distance must equal edge sum")
}
