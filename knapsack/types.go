package knapsack

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Every message is prefixed with "knapsack: ".
var (
	// ErrLengthMismatch is returned when weights and values differ in length.
	ErrLengthMismatch = errors.New("knapsack: weights and values differ in length")

	// ErrNegative is returned for a negative weight, value or capacity.
	ErrNegative = errors.New("knapsack: negative weight, value or capacity")

	// ErrMissingColumn is returned when the CSV header lacks a required column.
	ErrMissingColumn = errors.New("knapsack: missing column")

	// ErrNoRows is returned when the CSV has a header but no items.
	ErrNoRows = errors.New("knapsack: no item rows")

	// ErrBadNumber is returned for a cell that is not a non-negative integer.
	ErrBadNumber = errors.New("knapsack: malformed number")

	// ErrOverCapacity is returned by Validate when a selection is too heavy.
	ErrOverCapacity = errors.New("knapsack: selection exceeds capacity")

	// ErrBadSelection is returned by Validate for out-of-range or repeated items.
	ErrBadSelection = errors.New("knapsack: invalid selection")
)

// Method labels reported in Result.Method.
const (
	MethodGreedy        = "greedy"
	MethodDP            = "dp"
	MethodBacktracking  = "backtracking"
	MethodDivideConquer = "divide_conquer"
)

// MaxTotal bounds the capacity and the summed weights and values of an
// instance, leaving headroom so no solver sum or DP column count overflows.
const MaxTotal = math.MaxInt >> 2

// ratioFloor guards the value/weight ratio against zero weights.
const ratioFloor = 1e-9

// Result is the outcome of a knapsack solver.
type Result struct {
	// Selected holds unique item indices in ascending order.
	Selected []int `json:"selected_items"`

	TotalValue  int `json:"total_value"`
	TotalWeight int `json:"total_weight"`

	// Optimal is true only when an exact strategy ran to completion.
	Optimal bool `json:"optimal"`

	// Note explains a size-guard redirect; empty otherwise.
	Note string `json:"note,omitempty"`

	// Method names the strategy that actually produced Selected.
	Method string `json:"method,omitempty"`
}

// Limits are the size guards. A zero field means "use the default".
type Limits struct {
	// Backtracking is the largest item count searched exhaustively by
	// Backtracking and BranchAndBound.
	Backtracking int `json:"backtracking" yaml:"backtracking"`

	// DivideConquer is the largest item count DivideAndConquer hands to DP.
	DivideConquer int `json:"divide_conquer" yaml:"divide_conquer"`

	// DPCells caps the (n+1)×(capacity+1) table; larger tables run Greedy.
	DPCells int `json:"dp_cells" yaml:"dp_cells"`
}

// DefaultLimits returns the standard guards: backtracking 24, divide-and-
// conquer 26, and a 16M-cell DP table.
func DefaultLimits() Limits {
	return Limits{Backtracking: 24, DivideConquer: 26, DPCells: 1 << 24}
}

func (l Limits) normalized() Limits {
	def := DefaultLimits()
	if l.Backtracking <= 0 {
		l.Backtracking = def.Backtracking
	}
	if l.DivideConquer <= 0 {
		l.DivideConquer = def.DivideConquer
	}
	if l.DPCells <= 0 {
		l.DPCells = def.DPCells
	}

	return l
}

// redirect runs Greedy and annotates the result as a size-guard fallback.
func redirect(in *Instance, why string) Result {
	res := Greedy(in)
	res.Note = fmt.Sprintf("%s, used greedy instead", why)

	return res
}
