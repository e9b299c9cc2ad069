package engine

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gowtham152/optimization-galaxy/knapsack"
	"github.com/gowtham152/optimization-galaxy/matching"
	"github.com/gowtham152/optimization-galaxy/tsp"
)

// Solution holds the result of exactly one family.
type Solution struct {
	TSP      *tsp.Result
	Knapsack *knapsack.Result
	Matching *matching.Result
}

// MarshalJSON writes the populated result directly, without a wrapper.
func (s Solution) MarshalJSON() ([]byte, error) {
	switch {
	case s.TSP != nil:
		return json.Marshal(s.TSP)
	case s.Knapsack != nil:
		return json.Marshal(s.Knapsack)
	case s.Matching != nil:
		return json.Marshal(s.Matching)
	}

	return []byte("null"), nil
}

// HasDistance reports whether the objective is a distance to minimize.
func (s Solution) HasDistance() bool { return s.TSP != nil }

// Objective is the tour distance for TSP, the total value for knapsack and
// the matching size for matching.
func (s Solution) Objective() float64 {
	switch {
	case s.TSP != nil:
		return s.TSP.Distance
	case s.Knapsack != nil:
		return float64(s.Knapsack.TotalValue)
	case s.Matching != nil:
		return float64(s.Matching.Size)
	}

	return 0
}

// Optimal reports the solver's optimality flag.
func (s Solution) Optimal() bool {
	switch {
	case s.TSP != nil:
		return s.TSP.Optimal
	case s.Knapsack != nil:
		return s.Knapsack.Optimal
	case s.Matching != nil:
		return s.Matching.Optimal
	}

	return false
}

// Note returns the size-guard note, if any.
func (s Solution) Note() string {
	switch {
	case s.TSP != nil:
		return s.TSP.Note
	case s.Knapsack != nil:
		return s.Knapsack.Note
	case s.Matching != nil:
		return s.Matching.Note
	}

	return ""
}

// Redirected reports whether a size guard replaced the requested strategy.
func (s Solution) Redirected() bool { return s.Note() != "" }

// better reports whether s beats other: shorter distance for TSP, larger
// objective otherwise. Ties keep other.
func (s Solution) better(other Solution) bool {
	if s.HasDistance() {
		return s.Objective() < other.Objective()
	}

	return s.Objective() > other.Objective()
}

// Envelope is the outcome of one Solve call. It is a value; nothing in it
// is shared with the engine after return.
type Envelope struct {
	RunID    uuid.UUID `json:"run_id"`
	Solution Solution  `json:"solution"`

	// ExecutionTime is the solver wall time in seconds, loading excluded.
	ExecutionTime float64     `json:"execution_time"`
	Algorithm     Algorithm   `json:"algorithm"`
	ProblemType   ProblemType `json:"problem_type"`
	Timestamp     time.Time   `json:"timestamp"`

	UsedFallback   bool   `json:"used_fallback"`
	FallbackReason string `json:"fallback_reason,omitempty"`
	InstanceSize   int    `json:"instance_size"`
}

// Objective is shorthand for Solution.Objective.
func (e Envelope) Objective() float64 { return e.Solution.Objective() }

// HybridResult collects the envelopes of a HybridSolve run.
type HybridResult struct {
	Best   Envelope   `json:"best_solution"`
	All    []Envelope `json:"all_results"`
	Method string     `json:"hybrid_method"`
}

// hybridMethod labels a run as best_of_<a>_<b>...
func hybridMethod(algs []Algorithm) string {
	parts := make([]string, len(algs))
	for i, a := range algs {
		parts[i] = string(a)
	}

	return "best_of_" + strings.Join(parts, "_")
}
