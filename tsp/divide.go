package tsp

import (
	"math"
	"sort"
)

// DivideAndConquer splits the cities at the median x-coordinate, builds a
// tour for each half, and splices the two tours at the single edge pair
// whose exchange adds the least length: remove (a_i,a_i+1) and
// (b_j,b_j+1), then reconnect the two open paths with two bridges.
//
// A half with at most lim.DivideBase cities is solved exactly by Held–Karp,
// a larger half by nearest neighbour. When the whole instance has at most
// lim.DivideBase cities it is solved exactly and reported optimal; otherwise
// the splice is a local heuristic and the result is never optimal.
//
// Complexity: O(n²) for the halves and O(|A|·|B|) for the splice search.
func DivideAndConquer(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	t := in.table()
	if t.n <= lim.DivideBase {
		res := heldKarp(t)
		res.Method = MethodDivideConquer

		return res
	}

	left, right := splitMedianX(in.Points)
	a := halfTour(in, left, lim)
	b := halfTour(in, right, lim)
	tour := rotateToStart(splice(t, a, b), 0)

	return Result{
		Tour:     tour,
		Distance: t.tourCost(tour),
		Optimal:  false,
		Method:   MethodDivideConquer,
	}
}

// splitMedianX partitions city indices into x ≤ median and x > median,
// with the median of an even count taken as the mean of the middle pair.
// When ties leave one side empty, cities are split by rank on (x, y, index)
// instead so both halves are non-empty (n ≥ 2).
func splitMedianX(pts []Point) (left, right []int) {
	var (
		n  = len(pts)
		xs = make([]float64, n)
		i  int
	)
	for i = 0; i < n; i++ {
		xs[i] = pts[i].X
	}
	sort.Float64s(xs)
	med := xs[n/2]
	if n%2 == 0 {
		med = (xs[n/2-1] + xs[n/2]) / 2
	}
	for i = 0; i < n; i++ {
		if pts[i].X <= med {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) > 0 && len(right) > 0 {
		return left, right
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(p, q int) bool {
		a, b := pts[order[p]], pts[order[q]]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}

		return order[p] < order[q]
	})
	k := (n + 1) / 2
	left = append([]int(nil), order[:k]...)
	right = append([]int(nil), order[k:]...)
	sort.Ints(left)
	sort.Ints(right)

	return left, right
}

// halfTour solves the sub-instance induced by idx and returns its closed
// tour in global city indices.
func halfTour(in *Instance, idx []int, lim Limits) []int {
	sub, _ := in.Dist.Induced(idx) // idx holds valid indices by construction
	st := newTable(sub)

	var res Result
	if st.n <= lim.DivideBase {
		res = heldKarp(st)
	} else {
		res = nearestNeighbor(st)
	}
	out := make([]int, len(res.Tour))
	for i, local := range res.Tour {
		out[i] = idx[local]
	}

	return out
}

// splice joins closed tours a and b at the cheapest edge-pair exchange.
// Removing (a_i,a_i+1) and (b_j,b_j+1) leaves two ways to reconnect:
//
//	crossed:  (a_i,b_j)   + (a_i+1,b_j+1), b walked backwards from b_j
//	parallel: (a_i,b_j+1) + (a_i+1,b_j),   b walked forwards from b_j+1
//
// Both are tried for every pair. The result is a closed tour starting at a[0].
func splice(t distTable, a, b []int) []int {
	var (
		ka, kb   = len(a) - 1, len(b) - 1
		bi, bj   int
		parallel bool
		best     = math.Inf(1)
		i, j     int
		removed  float64
		c        float64
	)
	for i = 0; i < ka; i++ {
		for j = 0; j < kb; j++ {
			removed = t.at(a[i], a[i+1]) + t.at(b[j], b[j+1])
			c = t.at(a[i], b[j]) + t.at(a[i+1], b[j+1]) - removed
			if c < best {
				best, bi, bj, parallel = c, i, j, false
			}
			c = t.at(a[i], b[j+1]) + t.at(a[i+1], b[j]) - removed
			if c < best {
				best, bi, bj, parallel = c, i, j, true
			}
		}
	}

	out := make([]int, 0, ka+kb+1)
	out = append(out, a[:bi+1]...)
	var s int
	for s = 0; s < kb; s++ {
		if parallel {
			out = append(out, b[(bj+1+s)%kb])
		} else {
			out = append(out, b[((bj-s)%kb+kb)%kb])
		}
	}

	return append(out, a[bi+1:]...)
}
