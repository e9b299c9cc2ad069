package knapsack

import (
	"fmt"
	"sort"
)

// bbEngine holds the include/exclude search state. Items are visited in
// ratio order so the fractional bound is a greedy fill of the remainder.
type bbEngine struct {
	in    *Instance
	order []int

	chosen []int

	bestValue int
	bestSet   []int
}

// upperBound is the fractional-relaxation bound from position k: fill the
// remaining capacity in ratio order, taking the first item that does not
// fit fractionally.
func (e *bbEngine) upperBound(k, weight, value int) float64 {
	var (
		rem   = e.in.Capacity - weight
		bound = float64(value)
		i     int
	)
	for ; k < len(e.order); k++ {
		i = e.order[k]
		if e.in.Weights[i] <= rem {
			rem -= e.in.Weights[i]
			bound += float64(e.in.Values[i])
			continue
		}
		bound += float64(e.in.Values[i]) * float64(rem) / max(ratioFloor, float64(e.in.Weights[i]))
		break
	}

	return bound
}

// dfs explores "take order[k]" before "skip order[k]".
func (e *bbEngine) dfs(k, weight, value int) {
	if k == len(e.order) {
		if value > e.bestValue {
			e.bestValue = value
			e.bestSet = append(e.bestSet[:0], e.chosen...)
		}

		return
	}
	if e.upperBound(k, weight, value) <= float64(e.bestValue) {
		return
	}

	i := e.order[k]
	if e.in.Weights[i] <= e.in.Capacity-weight {
		e.chosen = append(e.chosen, i)
		e.dfs(k+1, weight+e.in.Weights[i], value+e.in.Values[i])
		e.chosen = e.chosen[:len(e.chosen)-1]
	}
	e.dfs(k+1, weight, value)
}

// Backtracking runs the bounded include/exclude search. A branch is cut as
// soon as its fractional bound cannot beat the best value found so far.
// Exact when it runs.
//
// Guard: n > lim.Backtracking (default 24) runs Greedy with a Note instead.
//
// Complexity: O(2ⁿ·n) worst case; O(n) memory.
func Backtracking(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	if in.Len() > lim.Backtracking {
		return redirect(in, fmt.Sprintf("backtracking too slow for n=%d (limit %d)", in.Len(), lim.Backtracking))
	}

	e := bbEngine{in: in, order: ratioOrder(in)}
	e.dfs(0, 0, 0)

	sel := append([]int{}, e.bestSet...)
	sort.Ints(sel)
	var weight int
	for _, i := range sel {
		weight += in.Weights[i]
	}

	return Result{
		Selected:    sel,
		TotalValue:  e.bestValue,
		TotalWeight: weight,
		Optimal:     true,
		Method:      MethodBacktracking,
	}
}

// BranchAndBound is the same bounded search as Backtracking: the fractional
// bound already turns the DFS into a depth-first branch-and-bound.
func BranchAndBound(in *Instance, lim Limits) Result {
	return Backtracking(in, lim)
}
