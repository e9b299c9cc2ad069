package engine

import (
	"github.com/gowtham152/optimization-galaxy/knapsack"
	"github.com/gowtham152/optimization-galaxy/matching"
	"github.com/gowtham152/optimization-galaxy/tsp"
)

// instance is the closed variant of the three families. Exactly one field
// is set.
type instance struct {
	tsp      *tsp.Instance
	knapsack *knapsack.Instance
	matching *matching.Instance
}

func (in instance) size() int {
	switch {
	case in.tsp != nil:
		return in.tsp.Len()
	case in.knapsack != nil:
		return in.knapsack.Len()
	default:
		return in.matching.Len()
	}
}

func (in instance) fallback() (bool, string) {
	switch {
	case in.tsp != nil:
		return in.tsp.UsedFallback, in.tsp.FallbackReason
	case in.knapsack != nil:
		return in.knapsack.UsedFallback, in.knapsack.FallbackReason
	default:
		return in.matching.UsedFallback, in.matching.FallbackReason
	}
}

type solverFunc func(in instance, lim Limits) Solution

// family is one row of the capability table.
type family struct {
	load     func(data []byte) instance
	fallback func(reason error) instance
	solvers  map[Algorithm]solverFunc
}

func tspSolution(r tsp.Result) Solution { return Solution{TSP: &r} }
func knapsackSolution(r knapsack.Result) Solution { return Solution{Knapsack: &r} }
func matchingSolution(r matching.Result) Solution { return Solution{Matching: &r} }

// families is the capability table. It is read-only after init.
var families = map[ProblemType]family{
	TSP: {
		load:     func(data []byte) instance { return instance{tsp: tsp.LoadBytes(data)} },
		fallback: func(reason error) instance { return instance{tsp: tsp.Fallback(reason)} },
		solvers: map[Algorithm]solverFunc{
			Greedy: func(in instance, _ Limits) Solution { return tspSolution(tsp.Greedy(in.tsp)) },
			DP: func(in instance, lim Limits) Solution {
				return tspSolution(tsp.HeldKarp(in.tsp, lim.TSP))
			},
			Backtracking: func(in instance, lim Limits) Solution {
				return tspSolution(tsp.Backtracking(in.tsp, lim.TSP))
			},
			BranchBound: func(in instance, lim Limits) Solution {
				return tspSolution(tsp.BranchAndBound(in.tsp, lim.TSP))
			},
			DivideConquer: func(in instance, lim Limits) Solution {
				return tspSolution(tsp.DivideAndConquer(in.tsp, lim.TSP))
			},
		},
	},
	Knapsack: {
		load:     func(data []byte) instance { return instance{knapsack: knapsack.LoadBytes(data)} },
		fallback: func(reason error) instance { return instance{knapsack: knapsack.Fallback(reason)} },
		solvers: map[Algorithm]solverFunc{
			Greedy: func(in instance, _ Limits) Solution {
				return knapsackSolution(knapsack.Greedy(in.knapsack))
			},
			DP: func(in instance, lim Limits) Solution {
				return knapsackSolution(knapsack.DP(in.knapsack, lim.Knapsack))
			},
			Backtracking: func(in instance, lim Limits) Solution {
				return knapsackSolution(knapsack.Backtracking(in.knapsack, lim.Knapsack))
			},
			BranchBound: func(in instance, lim Limits) Solution {
				return knapsackSolution(knapsack.BranchAndBound(in.knapsack, lim.Knapsack))
			},
			DivideConquer: func(in instance, lim Limits) Solution {
				return knapsackSolution(knapsack.DivideAndConquer(in.knapsack, lim.Knapsack))
			},
		},
	},
	Matching: {
		load:     func(data []byte) instance { return instance{matching: matching.LoadBytes(data)} },
		fallback: func(reason error) instance { return instance{matching: matching.Fallback(reason)} },
		solvers: map[Algorithm]solverFunc{
			Greedy:        func(in instance, _ Limits) Solution { return matchingSolution(matching.Greedy(in.matching)) },
			DP:            func(in instance, _ Limits) Solution { return matchingSolution(matching.Maximum(in.matching)) },
			Backtracking:  func(in instance, _ Limits) Solution { return matchingSolution(matching.Backtracking(in.matching)) },
			BranchBound:   func(in instance, _ Limits) Solution { return matchingSolution(matching.BranchAndBound(in.matching)) },
			DivideConquer: func(in instance, _ Limits) Solution { return matchingSolution(matching.DivideAndConquer(in.matching)) },
		},
	},
}

// Limits bundles the size guards of the families that have them.
type Limits struct {
	TSP      tsp.Limits      `json:"tsp" yaml:"tsp"`
	Knapsack knapsack.Limits `json:"knapsack" yaml:"knapsack"`
}

// DefaultLimits returns every family's default guards.
func DefaultLimits() Limits {
	return Limits{TSP: tsp.DefaultLimits(), Knapsack: knapsack.DefaultLimits()}
}
