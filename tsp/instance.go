package tsp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gowtham152/optimization-galaxy/matrix"
)

// Fallback instance shape: 10 cities in [0,100)².
const (
	fallbackCities = 10
	fallbackSide   = 100.0
)

// Point is a city location in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Instance is a symmetric Euclidean TSP instance. Cities are 0..n-1 in the
// order of Points; Dist is fully populated at construction time.
// An Instance is read-only once built; solvers never mutate it.
type Instance struct {
	Name   string
	Points []Point
	Dist   *matrix.Dense

	// UsedFallback is set when the source could not be parsed and this
	// instance is the deterministic substitute. FallbackReason keeps the
	// parse error text.
	UsedFallback   bool
	FallbackReason string
}

// NewInstance builds an instance and its distance matrix from points.
// The matrix is checked with matrix.ValidateDistance, and n times the
// longest edge must stay finite so that no tour sum can reach +Inf.
//
// Errors: ErrEmptyInstance, or matrix.ErrNaNInf for non-finite coordinates,
// distances or tour sums.
// Complexity: O(n²).
func NewInstance(points []Point) (*Instance, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrEmptyInstance
	}
	var (
		xs = make([]float64, n)
		ys = make([]float64, n)
		i  int
	)
	for i = 0; i < n; i++ {
		xs[i], ys[i] = points[i].X, points[i].Y
	}
	dist, err := matrix.Euclidean(xs, ys)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateDistance(dist, 0); err != nil {
		return nil, err
	}
	var longest float64
	for _, d := range dist.Values() {
		if d > longest {
			longest = d
		}
	}
	if math.IsInf(longest*float64(n), 0) {
		return nil, fmt.Errorf("%w: tour over %d cities with edge %g", matrix.ErrNaNInf, n, longest)
	}
	pts := make([]Point, n)
	copy(pts, points)

	return &Instance{Points: pts, Dist: dist}, nil
}

// Len returns the number of cities.
func (in *Instance) Len() int { return len(in.Points) }

// Parse reads TSPLIB-style text:
//
//	NAME: sample
//	DIMENSION: 4
//	NODE_COORD_SECTION
//	1 0 0
//	2 0 1
//	...
//	EOF
//
// Header lines other than NAME and DIMENSION are ignored. The EOF marker is
// optional at end of input. Every coordinate line must be "id x y".
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc       = bufio.NewScanner(r)
		dim      = -1
		inCoords bool
		name     string
		points   []Point
		line     string
		lineNo   int
	)
scan:
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "EOF"):
			break scan
		case inCoords:
			p, err := parseCoordLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			points = append(points, p)
		case strings.HasPrefix(line, "NODE_COORD_SECTION"):
			inCoords = true
		case strings.HasPrefix(line, "DIMENSION"):
			v, err := strconv.Atoi(headerValue(line))
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMissingDimension, line)
			}
			dim = v
		case strings.HasPrefix(line, "NAME"):
			name = headerValue(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if dim < 0 {
		return nil, ErrMissingDimension
	}
	if !inCoords {
		return nil, ErrMissingCoordSection
	}
	if len(points) != dim {
		return nil, fmt.Errorf("%w: DIMENSION %d, %d coordinates", ErrDimensionMismatch, dim, len(points))
	}

	in, err := NewInstance(points)
	if err != nil {
		return nil, err
	}
	in.Name = name

	return in, nil
}

// headerValue returns the trimmed text after the first ':' of a header line,
// or after the keyword when no colon is present ("DIMENSION 5").
func headerValue(line string) string {
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	f := strings.Fields(line)
	if len(f) < 2 {
		return ""
	}

	return f[1]
}

func parseCoordLine(line string) (Point, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, line)
	}
	if _, err := strconv.Atoi(f[0]); err != nil {
		return Point{}, fmt.Errorf("%w: id %q", ErrBadCoordinate, f[0])
	}
	x, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: x %q", ErrBadCoordinate, f[1])
	}
	y, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: y %q", ErrBadCoordinate, f[2])
	}

	return Point{X: x, Y: y}, nil
}

// Load parses r and never fails: on any parse error it returns the
// deterministic Fallback instance carrying the error text.
func Load(r io.Reader) *Instance {
	in, err := Parse(r)
	if err != nil {
		return Fallback(err)
	}

	return in
}

// LoadBytes is Load over an in-memory source.
func LoadBytes(data []byte) *Instance { return Load(bytes.NewReader(data)) }

// Fallback returns the synthetic 10-city instance (seed 42, [0,100)²)
// with UsedFallback set. reason may be nil.
func Fallback(reason error) *Instance {
	in, _ := NewInstance(RandomPoints(fallbackCities, fallbackSide, fallbackSeed))
	in.Name = "fallback"
	in.UsedFallback = true
	if reason != nil {
		in.FallbackReason = reason.Error()
	}

	return in
}
