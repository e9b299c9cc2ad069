package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "tsp: ".
var (
	// ErrEmptyInstance is returned when an instance has no cities.
	ErrEmptyInstance = errors.New("tsp: instance has no cities")

	// ErrMissingDimension is returned when the source declares no DIMENSION.
	ErrMissingDimension = errors.New("tsp: missing DIMENSION declaration")

	// ErrMissingCoordSection is returned when NODE_COORD_SECTION is absent.
	ErrMissingCoordSection = errors.New("tsp: missing NODE_COORD_SECTION")

	// ErrBadCoordinate is returned for a coordinate line that is not "id x y".
	ErrBadCoordinate = errors.New("tsp: malformed coordinate line")

	// ErrDimensionMismatch is returned when DIMENSION disagrees with the
	// number of coordinate lines.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidTour is returned by ValidateTour/TourCost for a sequence that
	// is not a closed Hamiltonian cycle over 0..n-1.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrStartOutOfRange indicates that the start vertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Method labels reported in Result.Method.
const (
	MethodGreedy         = "greedy"
	MethodHeldKarp       = "held_karp"
	MethodBacktracking   = "backtracking"
	MethodBranchAndBound = "branch_and_bound"
	MethodDivideConquer  = "divide_conquer"
)

// Step is one extension of a partial tour, recorded for visualization.
type Step struct {
	Tour     []int   `json:"current_tour"`
	City     int     `json:"current_city"`
	Distance float64 `json:"distance_so_far"`
}

// Result holds the outcome of a TSP solver.
type Result struct {
	// Tour is the closed cycle: len(Tour)==n+1 and Tour[0]==Tour[n]==0.
	Tour []int `json:"tour"`

	// Distance is the total cycle length, stabilized to 1e-9.
	Distance float64 `json:"distance"`

	// Optimal is true only when an exact strategy ran to completion.
	Optimal bool `json:"optimal"`

	// Steps is the optional construction trace.
	Steps []Step `json:"steps,omitempty"`

	// Note explains a size-guard redirect; empty otherwise.
	Note string `json:"note,omitempty"`

	// Method names the strategy that actually produced Tour.
	Method string `json:"method,omitempty"`
}

// Limits are the size guards of the exact strategies: an instance with
// more cities than the limit is solved by Greedy instead.
// A zero field means "use the default".
type Limits struct {
	HeldKarp       int `json:"held_karp" yaml:"held_karp"`
	Backtracking   int `json:"backtracking" yaml:"backtracking"`
	BranchAndBound int `json:"branch_and_bound" yaml:"branch_and_bound"`
	// DivideBase is the size at or below which DivideAndConquer solves a
	// part (or the whole instance) exactly with HeldKarp.
	DivideBase int `json:"divide_base" yaml:"divide_base"`
}

// Hard caps: HeldKarp memory is n·2ⁿ entries; BranchAndBound keeps the
// visited set in a uint64.
const (
	maxHeldKarp       = 20
	maxBranchAndBound = 63
)

// DefaultLimits returns the standard guards: Held–Karp 15, backtracking 10,
// branch-and-bound 20, divide-and-conquer base case 5.
func DefaultLimits() Limits {
	return Limits{HeldKarp: 15, Backtracking: 10, BranchAndBound: 20, DivideBase: 5}
}

// normalized fills zero fields with defaults and clamps to the hard caps.
func (l Limits) normalized() Limits {
	def := DefaultLimits()
	if l.HeldKarp <= 0 {
		l.HeldKarp = def.HeldKarp
	}
	if l.HeldKarp > maxHeldKarp {
		l.HeldKarp = maxHeldKarp
	}
	if l.Backtracking <= 0 {
		l.Backtracking = def.Backtracking
	}
	if l.BranchAndBound <= 0 {
		l.BranchAndBound = def.BranchAndBound
	}
	if l.BranchAndBound > maxBranchAndBound {
		l.BranchAndBound = maxBranchAndBound
	}
	if l.DivideBase <= 0 {
		l.DivideBase = def.DivideBase
	}
	if l.DivideBase > l.HeldKarp {
		l.DivideBase = l.HeldKarp
	}

	return l
}

// redirect runs Greedy and annotates the result as a size-guard fallback.
func redirect(t distTable, method string, limit int) Result {
	res := nearestNeighbor(t)
	res.Optimal = false
	res.Note = fmt.Sprintf("%s too slow for n=%d (limit %d), used greedy instead", method, t.n, limit)

	return res
}
