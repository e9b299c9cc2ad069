// Package matching solves maximum-cardinality bipartite matching.
//
// An Instance holds two disjoint node-id lists (Left, Right) and edges
// oriented left→right. Solvers never mutate the instance.
//
// Strategies:
//
//   - Greedy: one pass over the edges in input order; the result is
//     maximal (no edge can be added) but not necessarily maximum.
//   - Maximum: Hopcroft–Karp. BFS builds alternating layers from the free
//     left nodes, DFS augments along vertex-disjoint shortest paths.
//     O(E·√V), exact.
//   - Backtracking, BranchAndBound: aliases of Maximum.
//   - DivideAndConquer: alias of Greedy.
//
// Loading never fails: Load returns the 3×3 sample instance with
// UsedFallback set whenever the source cannot be parsed.
package matching
