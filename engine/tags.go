package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every message is prefixed with "engine: ".
var (
	// ErrUnknownProblemType is returned for a problem tag outside ProblemTypes().
	ErrUnknownProblemType = errors.New("engine: unknown problem type")

	// ErrUnknownAlgorithm is returned for an algorithm tag outside Algorithms().
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrNoAlgorithms is returned by HybridSolve for an empty algorithm list.
	ErrNoAlgorithms = errors.New("engine: no algorithms given")

	// ErrNilSource is the fallback reason when Solve is handed a nil Source.
	ErrNilSource = errors.New("engine: nil source")
)

// ProblemType names a problem family.
type ProblemType string

// Problem families.
const (
	TSP      ProblemType = "tsp"
	Knapsack ProblemType = "knapsack"
	Matching ProblemType = "matching"
)

// Algorithm names a solving strategy.
type Algorithm string

// Strategies. Every family accepts all five.
const (
	Greedy        Algorithm = "greedy"
	DP            Algorithm = "dp"
	Backtracking  Algorithm = "backtracking"
	BranchBound   Algorithm = "branchbound"
	DivideConquer Algorithm = "divideconquer"
)

// ProblemTypes lists the supported families in display order.
func ProblemTypes() []ProblemType { return []ProblemType{TSP, Knapsack, Matching} }

// Algorithms lists the supported strategies in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Greedy, DP, Backtracking, BranchBound, DivideConquer}
}

// ParseProblemType accepts a tag in any case, surrounding spaces ignored.
func ParseProblemType(s string) (ProblemType, error) {
	p := ProblemType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := families[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProblemType, s)
	}

	return p, nil
}

// ParseAlgorithm accepts a tag in any case, surrounding spaces ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseAlgorithms parses a list such as "greedy,dp" and rejects the empty
// list.
func ParseAlgorithms(list []string) ([]Algorithm, error) {
	out := make([]Algorithm, 0, len(list))
	for _, s := range list {
		for _, part := range strings.Split(s, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			a, err := ParseAlgorithm(part)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoAlgorithms
	}

	return out, nil
}
