// Package tsp - cost utilities shared by exact and heuristic solvers.
//
// Design:
//   - Solvers prefetch the distance matrix once into a flat distTable and
//     index w[u*n+v] in hot loops, without interface or bounds-check overhead.
//   - Stable summation: returned costs are rounded to 1e-9 so different
//     summation orders of the same tour compare equal.
package tsp

import (
	"math"

	"github.com/gowtham152/optimization-galaxy/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// distTable is a dense prefetch of an n×n distance matrix.
type distTable struct {
	n int
	w []float64
}

// newTable prefetches d (assumed square) into a distTable.
func newTable(d *matrix.Dense) distTable {
	return distTable{n: d.Rows(), w: d.Values()}
}

// table prefetches the instance distances.
func (in *Instance) table() distTable { return newTable(in.Dist) }

// at is a fast accessor into the dense weight buffer.
func (t distTable) at(u, v int) float64 { return t.w[u*t.n+v] }

// tourCost sums consecutive edges of a closed tour; indices are trusted.
func (t distTable) tourCost(tour []int) float64 { return round1e9(t.rawCost(tour)) }

// rawCost is tourCost without stabilization, for incumbent comparisons.
func (t distTable) rawCost(tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += t.at(tour[i], tour[i+1])
	}

	return sum
}

// TourCost returns the length of a closed tour over in, including the
// closing edge tour[n-1]→tour[n].
//
// Errors: ErrInvalidTour when tour is not a closed Hamiltonian cycle.
// Complexity: O(n).
func TourCost(in *Instance, tour []int) (float64, error) {
	if in == nil || in.Len() == 0 {
		return 0, ErrEmptyInstance
	}
	if len(tour) == 0 {
		return 0, ErrInvalidTour
	}
	if err := ValidateTour(tour, in.Len(), tour[0]); err != nil {
		return 0, err
	}

	return in.table().tourCost(tour), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision. Values too large
// to scale are returned as is; they carry no sub-1e-9 digits anyway.
func round1e9(x float64) float64 {
	var s = x * roundScale
	if math.IsInf(s, 0) {
		return x
	}

	return math.Round(s) / roundScale
}
