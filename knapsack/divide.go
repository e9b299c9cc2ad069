package knapsack

import "fmt"

// DivideAndConquer hands instances of at most lim.DivideConquer items
// (default 26) to the exact DP and larger ones to Greedy. No split-and-merge
// step is performed; the name is kept for the uniform strategy surface.
func DivideAndConquer(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	if in.Len() <= lim.DivideConquer {
		return DP(in, lim)
	}

	return redirect(in, fmt.Sprintf("divide-and-conquer delegates to greedy above %d items (n=%d)", lim.DivideConquer, in.Len()))
}
