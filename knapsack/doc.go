// Package knapsack provides 0/1 knapsack solvers.
//
// Five strategies share one contract (an *Instance in, a Result out):
//
//   - Greedy: items by value/weight ratio, descending; O(n log n); never optimal.
//   - DP: the classic (n+1)×(capacity+1) table with a backward trace; exact.
//   - Backtracking: include/exclude DFS in ratio order, pruned by the
//     fractional-relaxation upper bound; exact below its size guard.
//   - BranchAndBound: the same bounded search as Backtracking.
//   - DivideAndConquer: exact DP up to 26 items, greedy above.
//
// Selected item indices are always reported in ascending order.
//
// Instances come from Parse/Load (CSV with weight, value and capacity
// columns). Load never fails: malformed input yields the fixed 5-item
// Fallback instance with UsedFallback set.
package knapsack
