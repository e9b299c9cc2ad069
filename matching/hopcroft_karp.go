package matching

import "math"

const free = -1

// hkEngine holds the Hopcroft–Karp state over dense side indices.
type hkEngine struct {
	adj   [][]int // left index → right indices
	pairL []int   // left → matched right, or free
	pairR []int   // right → matched left, or free
	dist  []int   // BFS layer of each left node
	queue []int
}

func newHK(in *Instance) *hkEngine {
	e := &hkEngine{
		adj:   make([][]int, len(in.Left)),
		pairL: make([]int, len(in.Left)),
		pairR: make([]int, len(in.Right)),
		dist:  make([]int, len(in.Left)),
		queue: make([]int, 0, len(in.Left)),
	}
	var l int
	for _, p := range in.Edges {
		l = in.leftIdx[p.Left]
		e.adj[l] = append(e.adj[l], in.rightIdx[p.Right])
	}
	for l = range e.pairL {
		e.pairL[l] = free
	}
	for r := range e.pairR {
		e.pairR[r] = free
	}

	return e
}

// bfs layers the graph from every free left node and reports whether some
// augmenting path reaches a free right node.
func (e *hkEngine) bfs() bool {
	var (
		found bool
		l, r  int
		next  int
	)
	e.queue = e.queue[:0]
	for l = range e.pairL {
		if e.pairL[l] == free {
			e.dist[l] = 0
			e.queue = append(e.queue, l)
		} else {
			e.dist[l] = math.MaxInt
		}
	}
	for head := 0; head < len(e.queue); head++ {
		l = e.queue[head]
		for _, r = range e.adj[l] {
			next = e.pairR[r]
			if next == free {
				found = true
				continue
			}
			if e.dist[next] == math.MaxInt {
				e.dist[next] = e.dist[l] + 1
				e.queue = append(e.queue, next)
			}
		}
	}

	return found
}

// dfs augments along a shortest alternating path starting at left node l.
// A dead end is marked so later searches in this phase skip it.
func (e *hkEngine) dfs(l int) bool {
	var next int
	for _, r := range e.adj[l] {
		next = e.pairR[r]
		if next == free || (e.dist[next] == e.dist[l]+1 && e.dfs(next)) {
			e.pairL[l] = r
			e.pairR[r] = l

			return true
		}
	}
	e.dist[l] = math.MaxInt

	return false
}

// Maximum returns a maximum-cardinality matching using Hopcroft–Karp:
// each phase finds a maximal set of vertex-disjoint shortest augmenting
// paths, and at most O(√V) phases are needed.
//
// Complexity: O(E·√V) time, O(V + E) memory.
func Maximum(in *Instance) Result {
	e := newHK(in)
	for e.bfs() {
		for l := range e.pairL {
			if e.pairL[l] == free {
				e.dfs(l)
			}
		}
	}
	pairs := collect(in, e.pairL)

	return Result{Matching: pairs, Size: len(pairs), Optimal: true, Method: MethodHopcroftKarp}
}

// Backtracking is an alias of Maximum.
func Backtracking(in *Instance) Result { return Maximum(in) }

// BranchAndBound is an alias of Maximum.
func BranchAndBound(in *Instance) Result { return Maximum(in) }
