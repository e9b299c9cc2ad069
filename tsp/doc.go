// Package tsp provides symmetric Travelling Salesman Problem solvers over a
// Euclidean distance matrix built from planar city coordinates.
//
// Five strategies share one contract (an *Instance in, a Result out):
//
//   - Greedy: nearest-neighbour construction from city 0 with a step
//     trace. O(n²).
//   - HeldKarp: exact bitmask dynamic programming over (subset, city).
//     O(n²·2ⁿ) time, O(n·2ⁿ) memory in a dense table indexed mask*n+city.
//   - Backtracking: exact DFS over permutations, pruned by the incumbent.
//   - BranchAndBound: exact best-first search ordered by an admissible
//     lower bound (half the two cheapest incident edges of every unvisited city).
//   - DivideAndConquer: median-x split, per-half tours, single best
//     edge-pair splice. Heuristic; flagged optimal only when the whole
//     instance fits the exact base case.
//
// Exact solvers carry size guards (see Limits). Above the guard they run
// Greedy instead and report Optimal=false with an explanatory Note.
//
// Instances come from Parse/Load (TSPLIB-style NODE_COORD_SECTION text).
// Load never fails: malformed input yields a deterministic 10-city
// Fallback instance with UsedFallback set.
package tsp
