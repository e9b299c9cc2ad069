// Package engine dispatches optimization requests to the solver packages.
//
// A request names a problem family (tsp, knapsack, matching), a strategy
// (greedy, dp, backtracking, branchbound, divideconquer) and a Source. The
// engine looks the family up in a fixed capability table, loads a fresh
// Instance from the source, runs the strategy, and wraps the outcome into
// an Envelope stamped with timing and a run id.
//
// Instances are built per call and never shared, so an Engine may be used
// from many goroutines at once.
//
// Errors:
//
//   - ErrUnknownProblemType, ErrUnknownAlgorithm for bad tags.
//   - ErrNoAlgorithms when HybridSolve gets an empty list.
//
// Malformed sources are not errors: the family's fallback instance is
// solved instead and the Envelope says so (UsedFallback, FallbackReason).
package engine
