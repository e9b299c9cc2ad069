package tsp

import "math"

// HeldKarp solves the instance exactly with the Held–Karp subset DP.
//
// State (mask, pos): the cities in mask are visited (bit 0 always set) and
// the tour currently stands at pos. cost(mask,pos) is the cheapest way to
// visit every remaining city and return to 0:
//
//	cost(full, pos) = dist(pos, 0)
//	cost(mask, pos) = min over c∉mask of dist(pos,c) + cost(mask|1<<c, c)
//
// The table is a dense slice indexed mask*n+pos, filled from the full mask
// downwards (every state depends only on strict supersets), so no recursion
// and no hashing is involved. next[] stores the argmin for reconstruction.
//
// Guard: n > lim.HeldKarp (default 15) runs Greedy with a Note instead.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	t := in.table()
	if t.n > lim.HeldKarp {
		return redirect(t, MethodHeldKarp, lim.HeldKarp)
	}

	return heldKarp(t)
}

// heldKarp runs the DP on a prefetched table; callers enforce the size guard.
func heldKarp(t distTable) Result {
	var (
		n    = t.n
		full = 1<<n - 1
		cost = make([]float64, (full+1)*n)
		next = make([]int8, (full+1)*n)
	)

	var (
		mask, pos, c int
		best, cand   float64
		arg          int
	)
	// Base case: every city visited, only the closing edge remains.
	for pos = 0; pos < n; pos++ {
		cost[full*n+pos] = t.at(pos, 0)
		next[full*n+pos] = -1
	}
	for mask = full - 1; mask >= 1; mask-- {
		if mask&1 == 0 {
			continue // unreachable: the start city is always visited
		}
		for pos = 0; pos < n; pos++ {
			if mask&(1<<pos) == 0 {
				continue
			}
			best, arg = math.Inf(1), -1
			for c = 1; c < n; c++ {
				if mask&(1<<c) != 0 {
					continue
				}
				cand = t.at(pos, c) + cost[(mask|1<<c)*n+c]
				if cand < best {
					best, arg = cand, c
				}
			}
			cost[mask*n+pos] = best
			next[mask*n+pos] = int8(arg)
		}
	}

	// Reconstruct from (mask={0}, pos=0).
	tour := make([]int, 1, n+1)
	mask, pos = 1, 0
	for len(tour) < n {
		c = int(next[mask*n+pos])
		tour = append(tour, c)
		mask |= 1 << c
		pos = c
	}
	tour = append(tour, 0)
	dist := round1e9(cost[1*n+0])

	return Result{
		Tour:     tour,
		Distance: dist,
		Optimal:  true,
		Steps:    []Step{{Tour: CopyTour(tour), City: 0, Distance: dist}},
		Method:   MethodHeldKarp,
	}
}
