// Package optgalaxy is a combinatorial-optimization engine for three
// classic problems, each behind the same five strategies.
//
//	tsp/       symmetric Euclidean TSP: nearest neighbour, Held–Karp,
//	           backtracking, best-first branch-and-bound, median split
//	knapsack/  0/1 knapsack: ratio greedy, DP table, bounded search
//	matching/  bipartite matching: greedy maximal, Hopcroft–Karp
//	matrix/    dense distance matrices shared by tsp
//	engine/    tags, capability table, Solve and HybridSolve
//	cmd/optgalaxy command-line front end
//
// Every request loads a fresh instance. A malformed source is never an
// error: the family's fixed fallback instance is solved instead and the
// result says so. Exact strategies carry size guards; past a guard the
// engine runs greedy and explains why in the result's note.
//
// Quick example:
//
//	eng := engine.New()
//	env, err := eng.Solve(ctx, engine.TSP, engine.DP, engine.FromFile("cities.tsp"))
//	if err != nil {
//		return err
//	}
//	fmt.Println(env.Objective(), env.Solution.Optimal())
package optgalaxy
