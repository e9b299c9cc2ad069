package matching

// Greedy scans the edges once in input order and keeps every edge whose
// endpoints are both still free. The result is maximal, not maximum.
//
// Complexity: O(V + E).
func Greedy(in *Instance) Result {
	var (
		usedL = make([]bool, len(in.Left))
		usedR = make([]bool, len(in.Right))
		byL   = make([]int, len(in.Left))
		l, r  int
	)
	for l = range byL {
		byL[l] = -1
	}
	for _, e := range in.Edges {
		l, r = in.leftIdx[e.Left], in.rightIdx[e.Right]
		if usedL[l] || usedR[r] {
			continue
		}
		usedL[l], usedR[r] = true, true
		byL[l] = r
	}
	pairs := collect(in, byL)

	return Result{Matching: pairs, Size: len(pairs), Optimal: false, Method: MethodGreedy}
}

// collect turns a left→right index assignment into pairs in Left order.
func collect(in *Instance, byL []int) []Pair {
	pairs := make([]Pair, 0, len(byL))
	for l, r := range byL {
		if r >= 0 {
			pairs = append(pairs, Pair{Left: in.Left[l], Right: in.Right[r]})
		}
	}

	return pairs
}

// DivideAndConquer is an alias of Greedy.
func DivideAndConquer(in *Instance) Result { return Greedy(in) }
