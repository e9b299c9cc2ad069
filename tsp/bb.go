// Package tsp - Branch-and-Bound (exact best-first search with an admissible
// lower bound).
//
// BranchAndBound keeps open partial tours in a priority queue ordered by
//
//	LB = partialDistance + Σ_{c unvisited} half[c]
//	half[c] = (two cheapest edges incident to c) / 2
//
// In any completion every unvisited city is entered once and left once, so
// its two tour edges cost at least its two cheapest incident edges. Each
// remaining edge touches at most two unvisited cities and is therefore
// counted at most once in the halved sum, which makes LB admissible (≤ OPT).
//
// Search:
//  1. Seed the incumbent (UB) with the nearest-neighbour tour; a good UB
//     shrinks the queue dramatically and never affects exactness.
//  2. Pop the node with the lowest LB (ties: deeper first, then FIFO).
//     Prune it when LB ≥ UB − eps.
//  3. A full permutation closes the cycle at 0 and may improve UB.
//  4. Children are pushed only when their LB beats UB.
//
// Complexity:
//   - Worst case exponential in n (exact search); practical speed comes from pruning.
//   - Per expansion: O(n) children, O(log Q) heap operations.
package tsp

import (
	"container/heap"
	"math"
)

// bbEps is the strict improvement threshold for pruning.
const bbEps = 1e-12

// bbNode is one partial tour in the open list.
type bbNode struct {
	bound float64 // cost + rest
	cost  float64 // distance of path
	rest  float64 // Σ half[c] over unvisited c
	mask  uint64  // visited set

	parent *bbNode // nil at the root
	city   int     // last city of the partial tour
	depth  int     // cities on the path, 1 at the root
	seq    int     // insertion order for deterministic ties
}

// bbQueue implements heap.Interface as a min-heap on bound.
type bbQueue []*bbNode

func (q bbQueue) Len() int { return len(q) }
func (q bbQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.bound != b.bound {
		return a.bound < b.bound
	}
	if a.depth != b.depth {
		return a.depth > b.depth
	}

	return a.seq < b.seq
}
func (q bbQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *bbQueue) Push(x any)   { *q = append(*q, x.(*bbNode)) }
func (q *bbQueue) Pop() any {
	old := *q
	k := len(old) - 1
	it := old[k]
	old[k] = nil
	*q = old[:k]

	return it
}

// bbEngine holds the search data: prefetched weights, per-city halves and
// the incumbent.
type bbEngine struct {
	t    distTable
	half []float64
	pq   bbQueue
	seq  int

	bestTour []int
	bestCost float64
}

// precomputeHalves fills half[c] with half the sum of the two cheapest edges
// incident to c (a single edge when n==2, nothing when n==1).
func (e *bbEngine) precomputeHalves() {
	var (
		n         = e.t.n
		c, u      int
		m1, m2, d float64
		inf       = math.Inf(1)
	)
	e.half = make([]float64, n)
	for c = 0; c < n; c++ {
		m1, m2 = inf, inf
		for u = 0; u < n; u++ {
			if u == c {
				continue
			}
			d = e.t.at(c, u)
			if d < m1 {
				m1, m2 = d, m1
			} else if d < m2 {
				m2 = d
			}
		}
		switch {
		case math.IsInf(m1, 1):
			e.half[c] = 0
		case math.IsInf(m2, 1):
			e.half[c] = m1 / 2
		default:
			e.half[c] = (m1 + m2) / 2
		}
	}
}

func (e *bbEngine) push(nd *bbNode) {
	nd.seq = e.seq
	e.seq++
	heap.Push(&e.pq, nd)
}

// run drains the queue.
func (e *bbEngine) run() {
	var (
		n    = e.t.n
		full = uint64(1)<<uint(n) - 1
		nd   *bbNode
		last int
		v    int
		c, r float64
	)
	for e.pq.Len() > 0 {
		nd = heap.Pop(&e.pq).(*bbNode)
		if nd.bound >= e.bestCost-bbEps {
			continue
		}
		last = nd.city

		if nd.mask == full {
			total := nd.cost + e.t.at(last, 0)
			if total < e.bestCost-bbEps {
				e.bestCost = total
				e.record(nd)
			}
			continue
		}

		for v = 1; v < n; v++ {
			if nd.mask&(1<<uint(v)) != 0 {
				continue
			}
			c = nd.cost + e.t.at(last, v)
			r = nd.rest - e.half[v]
			if c+r >= e.bestCost-bbEps {
				continue
			}
			e.push(&bbNode{
				bound:  c + r,
				cost:   c,
				rest:   r,
				mask:   nd.mask | 1<<uint(v),
				parent: nd,
				city:   v,
				depth:  nd.depth + 1,
			})
		}
	}
}

// record writes the complete path ending at nd into bestTour, closing it at 0.
func (e *bbEngine) record(nd *bbNode) {
	var k = nd.depth - 1
	for p := nd; p != nil; p = p.parent {
		e.bestTour[k] = p.city
		k--
	}
	e.bestTour[nd.depth] = 0
}

// BranchAndBound is the exact best-first search described above.
//
// Guard: n > lim.BranchAndBound (default 20) runs Greedy with a Note instead.
// Runtime grows steeply near the guard: random instances take well under a
// second at n=18 but can take tens of seconds at n=20. Interactive callers
// should lower Limits.BranchAndBound.
//
// Open nodes share their prefix through parent links, so a child costs one
// allocation regardless of depth.
func BranchAndBound(in *Instance, lim Limits) Result {
	lim = lim.normalized()
	t := in.table()
	if t.n > lim.BranchAndBound {
		return redirect(t, MethodBranchAndBound, lim.BranchAndBound)
	}

	e := bbEngine{t: t}
	e.precomputeHalves()

	// Incumbent seed.
	seed := nearestNeighbor(t)
	e.bestTour = CopyTour(seed.Tour)
	e.bestCost = t.rawCost(seed.Tour)

	var (
		rest float64
		c    int
	)
	for c = 1; c < t.n; c++ {
		rest += e.half[c]
	}
	e.push(&bbNode{bound: rest, cost: 0, rest: rest, mask: 1, city: 0, depth: 1})
	e.run()

	return Result{
		Tour:     e.bestTour,
		Distance: round1e9(e.bestCost),
		Optimal:  true,
		Method:   MethodBranchAndBound,
	}
}
