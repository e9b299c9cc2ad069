package matching

import (
	"encoding/json"
	"errors"
)

// Sentinel errors. Every message is prefixed with "matching: ".
var (
	// ErrMissingField is returned when left_nodes or right_nodes is absent.
	ErrMissingField = errors.New("matching: missing field")

	// ErrDuplicateNode is returned when an id repeats within one side.
	ErrDuplicateNode = errors.New("matching: duplicate node id")

	// ErrOverlap is returned when an id appears on both sides.
	ErrOverlap = errors.New("matching: node id on both sides")

	// ErrBadEdge is returned for an edge that is not a pair of ids.
	ErrBadEdge = errors.New("matching: malformed edge")

	// ErrUnknownNode is returned for an edge whose endpoints are not one left
	// and one right node.
	ErrUnknownNode = errors.New("matching: edge endpoint is not a left/right node")

	// ErrNotMatching is returned by Validate for pairs that are not instance
	// edges or that share an endpoint.
	ErrNotMatching = errors.New("matching: pairs do not form a matching")
)

// Method labels reported in Result.Method.
const (
	MethodGreedy       = "greedy"
	MethodHopcroftKarp = "hopcroft_karp"
)

// Pair is an edge oriented left→right.
type Pair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// MarshalJSON writes a pair as the two-element array [left, right], the
// same shape the edges take in a source document.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Left, p.Right})
}

// Result is the outcome of a matching solver.
type Result struct {
	// Matching holds vertex-disjoint pairs, ordered by their left node's
	// position in Instance.Left.
	Matching []Pair `json:"matching"`
	Size     int    `json:"matching_size"`

	// Optimal is true when the matching is of maximum cardinality by
	// construction.
	Optimal bool `json:"optimal"`

	Note   string `json:"note,omitempty"`
	Method string `json:"method,omitempty"`
}
