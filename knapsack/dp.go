package knapsack

import "fmt"

// DP solves the instance exactly with the (n+1)×(capacity+1) table
//
//	table[i][w] = max(table[i-1][w], table[i-1][w-weight[i-1]] + value[i-1])
//
// (the second term only when the item fits), then recovers the selection by
// walking back from table[n][capacity]: item i-1 is taken exactly when
// table[i][w] differs from table[i-1][w].
//
// Guard: a table larger than lim.DPCells runs Greedy with a Note instead.
//
// Complexity: O(n·capacity) time and memory.
func DP(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	var (
		n     = in.Len()
		cols  = in.Capacity + 1
		cells = (n + 1) * cols
	)
	if cells/cols != n+1 || cells > lim.DPCells {
		return redirect(in, fmt.Sprintf("dp table of %d×%d too large (limit %d cells)", n+1, cols, lim.DPCells))
	}

	table := make([]int, cells)
	var (
		i, w   int
		wi, vi int
		take   int
	)
	for i = 1; i <= n; i++ {
		wi, vi = in.Weights[i-1], in.Values[i-1]
		for w = 0; w < cols; w++ {
			table[i*cols+w] = table[(i-1)*cols+w]
			if wi <= w {
				if take = table[(i-1)*cols+w-wi] + vi; take > table[i*cols+w] {
					table[i*cols+w] = take
				}
			}
		}
	}

	// Backward trace.
	var (
		selected = make([]int, 0, n)
		weight   int
	)
	w = in.Capacity
	for i = n; i >= 1; i-- {
		if table[i*cols+w] != table[(i-1)*cols+w] {
			selected = append(selected, i-1)
			w -= in.Weights[i-1]
			weight += in.Weights[i-1]
		}
	}
	reverse(selected)

	return Result{
		Selected:    selected,
		TotalValue:  table[n*cols+in.Capacity],
		TotalWeight: weight,
		Optimal:     true,
		Method:      MethodDP,
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
