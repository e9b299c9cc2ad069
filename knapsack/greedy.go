package knapsack

import "sort"

// ratioOrder returns item indices sorted by value/weight descending; the
// weight is floored at 1e-9 so zero-weight items sort first. Ties keep
// index order.
func ratioOrder(in *Instance) []int {
	var (
		n     = in.Len()
		order = make([]int, n)
		ratio = make([]float64, n)
		i     int
	)
	for i = 0; i < n; i++ {
		order[i] = i
		ratio[i] = float64(in.Values[i]) / max(ratioFloor, float64(in.Weights[i]))
	}
	sort.SliceStable(order, func(a, b int) bool { return ratio[order[a]] > ratio[order[b]] })

	return order
}

// Greedy fills the knapsack in ratio order, taking every item that still
// fits. Never optimal.
//
// Complexity: O(n log n).
func Greedy(in *Instance) Result {
	var (
		weight, value int
		selected      []int
	)
	for _, i := range ratioOrder(in) {
		if in.Weights[i] <= in.Capacity-weight {
			selected = append(selected, i)
			weight += in.Weights[i]
			value += in.Values[i]
		}
	}
	sort.Ints(selected)

	return Result{
		Selected:    nonNil(selected),
		TotalValue:  value,
		TotalWeight: weight,
		Optimal:     false,
		Method:      MethodGreedy,
	}
}

// nonNil keeps empty selections serialised as [] rather than null.
func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}

	return s
}
