package matching

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fallback sample used whenever a source cannot be parsed.
var (
	fallbackLeft  = []int{0, 1, 2}
	fallbackRight = []int{3, 4, 5}
	fallbackEdges = []Pair{{0, 3}, {0, 4}, {1, 3}, {1, 5}, {2, 4}, {2, 5}}
)

// Instance is a bipartite graph. Left and Right are disjoint; every edge
// joins a Left id to a Right id. An Instance is read-only once built.
type Instance struct {
	Left  []int
	Right []int
	Edges []Pair

	// UsedFallback is set when the source could not be parsed and this
	// instance is the fixed substitute; FallbackReason keeps the error text.
	UsedFallback   bool
	FallbackReason string

	// Dense side indices, filled by NewInstance.
	leftIdx  map[int]int
	rightIdx map[int]int
}

// document is the on-disk shape. JSON sources decode as YAML flow style.
type document struct {
	Left  *[]int  `yaml:"left_nodes"`
	Right *[]int  `yaml:"right_nodes"`
	Edges [][]int `yaml:"edges"`
}

// NewInstance validates the sides and orients each edge left→right. An
// edge given as (right, left) is swapped.
//
// Errors: ErrDuplicateNode, ErrOverlap, ErrUnknownNode.
func NewInstance(left, right []int, edges []Pair) (*Instance, error) {
	in := &Instance{
		Left:     append([]int{}, left...),
		Right:    append([]int{}, right...),
		Edges:    make([]Pair, 0, len(edges)),
		leftIdx:  make(map[int]int, len(left)),
		rightIdx: make(map[int]int, len(right)),
	}
	var (
		i, id int
		dup   bool
	)
	for i, id = range in.Left {
		if _, dup = in.leftIdx[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
		}
		in.leftIdx[id] = i
	}
	for i, id = range in.Right {
		if _, dup = in.rightIdx[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
		}
		if _, dup = in.leftIdx[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrOverlap, id)
		}
		in.rightIdx[id] = i
	}

	for _, e := range edges {
		switch {
		case in.isLeft(e.Left) && in.isRight(e.Right):
			in.Edges = append(in.Edges, e)
		case in.isLeft(e.Right) && in.isRight(e.Left):
			in.Edges = append(in.Edges, Pair{Left: e.Right, Right: e.Left})
		default:
			return nil, fmt.Errorf("%w: (%d,%d)", ErrUnknownNode, e.Left, e.Right)
		}
	}

	return in, nil
}

func (in *Instance) isLeft(id int) bool {
	_, ok := in.leftIdx[id]

	return ok
}

func (in *Instance) isRight(id int) bool {
	_, ok := in.rightIdx[id]

	return ok
}

// Len returns the total node count |Left|+|Right|.
func (in *Instance) Len() int { return len(in.Left) + len(in.Right) }

// Parse decodes a {left_nodes, right_nodes, edges} document, JSON or YAML:
//
//	{"left_nodes": [0, 1], "right_nodes": [2, 3], "edges": [[0, 2], [1, 3]]}
func Parse(r io.Reader) (*Instance, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("matching: decode: %w", err)
	}
	if doc.Left == nil {
		return nil, fmt.Errorf("%w: left_nodes", ErrMissingField)
	}
	if doc.Right == nil {
		return nil, fmt.Errorf("%w: right_nodes", ErrMissingField)
	}
	edges := make([]Pair, len(doc.Edges))
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrBadEdge, i, len(e))
		}
		edges[i] = Pair{Left: e[0], Right: e[1]}
	}

	return NewInstance(*doc.Left, *doc.Right, edges)
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

// Fallback returns the 3×3 sample graph with UsedFallback set. reason may
// be nil.
func Fallback(reason error) *Instance {
	in, _ := NewInstance(fallbackLeft, fallbackRight, fallbackEdges)
	in.UsedFallback = true
	if reason != nil {
		in.FallbackReason = reason.Error()
	}

	return in
}

// Validate checks that every pair is an instance edge and that no node is
// used twice.
func Validate(in *Instance, pairs []Pair) error {
	edge := make(map[Pair]struct{}, len(in.Edges))
	for _, e := range in.Edges {
		edge[e] = struct{}{}
	}
	var (
		usedL = make(map[int]struct{}, len(pairs))
		usedR = make(map[int]struct{}, len(pairs))
		ok    bool
	)
	for _, p := range pairs {
		if _, ok = edge[p]; !ok {
			return fmt.Errorf("%w: (%d,%d) is not an edge", ErrNotMatching, p.Left, p.Right)
		}
		if _, ok = usedL[p.Left]; ok {
			return fmt.Errorf("%w: left %d matched twice", ErrNotMatching, p.Left)
		}
		if _, ok = usedR[p.Right]; ok {
			return fmt.Errorf("%w: right %d matched twice", ErrNotMatching, p.Right)
		}
		usedL[p.Left] = struct{}{}
		usedR[p.Right] = struct{}{}
	}

	return nil
}
