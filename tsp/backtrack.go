package tsp

import "math"

// btEngine holds the DFS state of the backtracking search.
type btEngine struct {
	t       distTable
	visited []bool
	path    []int // path[0:depth], path[0] == 0

	bestTour []int
	bestCost float64
}

// dfs extends the partial path ending at last. A branch is cut as soon as
// its partial distance meets or exceeds the best complete tour.
func (e *btEngine) dfs(last int, depth int, costSoFar float64) {
	var n = e.t.n
	if depth == n {
		total := costSoFar + e.t.at(last, 0)
		if total < e.bestCost {
			e.bestCost = total
			copy(e.bestTour, e.path[:n])
			e.bestTour[n] = 0
		}

		return
	}

	var (
		v int
		c float64
	)
	for v = 1; v < n; v++ {
		if e.visited[v] {
			continue
		}
		c = costSoFar + e.t.at(last, v)
		if c >= e.bestCost {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, c)
		e.visited[v] = false
	}
}

// Backtracking enumerates permutations starting at city 0 depth-first,
// pruning partial tours whose distance already meets or exceeds the
// incumbent. Exact when it runs.
//
// Guard: n > lim.Backtracking (default 10) runs Greedy with a Note instead.
//
// Complexity: O(n!) worst case; O(n) memory.
func Backtracking(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	t := in.table()
	if t.n > lim.Backtracking {
		return redirect(t, MethodBacktracking, lim.Backtracking)
	}

	e := btEngine{
		t:        t,
		visited:  make([]bool, t.n),
		path:     make([]int, t.n+1),
		bestTour: make([]int, t.n+1),
		bestCost: math.Inf(1),
	}
	e.visited[0] = true
	e.dfs(0, 1, 0)

	return Result{
		Tour:     e.bestTour,
		Distance: round1e9(e.bestCost),
		Optimal:  true,
		Method:   MethodBacktracking,
	}
}
