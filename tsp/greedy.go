package tsp

import "math"

// Greedy builds a nearest-neighbour tour from city 0: repeatedly move to the
// closest unvisited city (ties → smaller index), then close the cycle.
// Every extension is recorded in Result.Steps with the partial tour and the
// cumulative distance. Never optimal.
//
// Complexity: O(n²) time, O(n²) for the trace.
func Greedy(in *Instance) Result {
	return nearestNeighbor(in.table())
}

// nearestNeighbor is Greedy over a prefetched table; used directly by the
// size-guard redirects and by DivideAndConquer on sub-matrices.
func nearestNeighbor(t distTable) Result {
	var (
		n       = t.n
		visited = make([]bool, n)
		tour    = make([]int, 1, n+1)
		steps   = make([]Step, 0, n)
		cur     int
		total   float64
	)
	visited[0] = true

	var (
		k, v, next int
		best, d    float64
	)
	for k = 1; k < n; k++ {
		next, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if d = t.at(cur, v); d < best {
				next, best = v, d
			}
		}
		visited[next] = true
		total += best
		tour = append(tour, next)
		steps = append(steps, Step{Tour: CopyTour(tour), City: next, Distance: round1e9(total)})
		cur = next
	}
	total += t.at(cur, 0)
	tour = append(tour, 0)

	return Result{
		Tour:     tour,
		Distance: round1e9(total),
		Optimal:  false,
		Steps:    steps,
		Method:   MethodGreedy,
	}
}
