package knapsack

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Fallback sample used whenever a source cannot be parsed.
var (
	fallbackWeights  = []int{2, 3, 4, 5, 6}
	fallbackValues   = []int{3, 4, 5, 6, 7}
	fallbackCapacity = 15
)

// Instance is a 0/1 knapsack instance: item i weighs Weights[i] and is
// worth Values[i]. An Instance is read-only once built.
type Instance struct {
	Weights  []int
	Values   []int
	Capacity int

	// UsedFallback is set when the source could not be parsed and this
	// instance is the fixed substitute; FallbackReason keeps the error text.
	UsedFallback   bool
	FallbackReason string
}

// NewInstance validates and copies the item arrays.
//
// Errors: ErrLengthMismatch, ErrNegative, or ErrBadNumber when the capacity,
// the total weight or the total value exceeds MaxTotal.
func NewInstance(weights, values []int, capacity int) (*Instance, error) {
	if len(weights) != len(values) {
		return nil, ErrLengthMismatch
	}
	if capacity < 0 {
		return nil, ErrNegative
	}
	if capacity > MaxTotal {
		return nil, fmt.Errorf("%w: capacity %d exceeds %d", ErrBadNumber, capacity, MaxTotal)
	}
	var (
		i               int
		tweight, tvalue int
	)
	for i = range weights {
		if weights[i] < 0 || values[i] < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrNegative, i)
		}
		if weights[i] > MaxTotal-tweight || values[i] > MaxTotal-tvalue {
			return nil, fmt.Errorf("%w: totals exceed %d at item %d", ErrBadNumber, MaxTotal, i)
		}
		tweight += weights[i]
		tvalue += values[i]
	}
	in := &Instance{
		Weights:  make([]int, len(weights)),
		Values:   make([]int, len(values)),
		Capacity: capacity,
	}
	copy(in.Weights, weights)
	copy(in.Values, values)

	return in, nil
}

// Len returns the number of items.
func (in *Instance) Len() int { return len(in.Weights) }

// Parse reads CSV rows with a header naming at least the weight, value and
// capacity columns (any order, case-insensitive, extra columns ignored):
//
//	weight,value,capacity
//	1,1,4
//	3,4,
//	4,5,
//
// The capacity is taken from the first data row; later capacity cells are
// ignored and may be empty.
func Parse(r io.Reader) (*Instance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty source", ErrMissingColumn)
		}
		return nil, err
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var (
		wi, vi, ci int
		ok         bool
	)
	if wi, ok = col["weight"]; !ok {
		return nil, fmt.Errorf("%w: weight", ErrMissingColumn)
	}
	if vi, ok = col["value"]; !ok {
		return nil, fmt.Errorf("%w: value", ErrMissingColumn)
	}
	if ci, ok = col["capacity"]; !ok {
		return nil, fmt.Errorf("%w: capacity", ErrMissingColumn)
	}

	var (
		weights, values []int
		capacity        int
		row             int
		rec             []string
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		w, err := cell(rec, wi, row)
		if err != nil {
			return nil, err
		}
		v, err := cell(rec, vi, row)
		if err != nil {
			return nil, err
		}
		if row == 1 {
			if capacity, err = cell(rec, ci, row); err != nil {
				return nil, err
			}
		}
		weights = append(weights, w)
		values = append(values, v)
	}
	if row == 0 {
		return nil, ErrNoRows
	}

	return NewInstance(weights, values, capacity)
}

// cell parses rec[i] as a non-negative integer.
func cell(rec []string, i, row int) (int, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("%w: row %d has no column %d", ErrBadNumber, row, i)
	}
	s := strings.TrimSpace(rec[i])
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %q", ErrBadNumber, row, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: row %d: %d", ErrNegative, row, v)
	}

	return v, nil
}

// Load parses r and never fails: on any parse error it returns the fixed
// Fallback instance carrying the error text.
func Load(r io.Reader) *Instance {
	in, err := Parse(r)
	if err != nil {
		return Fallback(err)
	}

	return in
}

// LoadBytes is Load over an in-memory source.
func LoadBytes(data []byte) *Instance { return Load(bytes.NewReader(data)) }

// Fallback returns the 5-item sample (weights 2..6, values 3..7,
// capacity 15) with UsedFallback set. reason may be nil.
func Fallback(reason error) *Instance {
	in, _ := NewInstance(fallbackWeights, fallbackValues, fallbackCapacity)
	in.UsedFallback = true
	if reason != nil {
		in.FallbackReason = reason.Error()
	}

	return in
}

// Validate checks that selected is a set of distinct in-range items whose
// weight fits the capacity, and returns its total weight and value.
// Totals that would overflow int report ErrBadNumber.
func Validate(in *Instance, selected []int) (weight, value int, err error) {
	seen := make([]bool, in.Len())
	for _, i := range selected {
		if i < 0 || i >= in.Len() || seen[i] {
			return 0, 0, fmt.Errorf("%w: item %d", ErrBadSelection, i)
		}
		seen[i] = true
		if in.Weights[i] > math.MaxInt-weight || in.Values[i] > math.MaxInt-value {
			return 0, 0, fmt.Errorf("%w: totals overflow at item %d", ErrBadNumber, i)
		}
		weight += in.Weights[i]
		value += in.Values[i]
	}
	if weight > in.Capacity {
		return weight, value, fmt.Errorf("%w: %d > %d", ErrOverCapacity, weight, in.Capacity)
	}

	return weight, value, nil
}
