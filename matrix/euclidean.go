// SPDX-License-Identifier: MIT

// Package matrix - builders and validators for symmetric distance matrices.
package matrix

import "math"

// Euclidean builds the full n×n distance matrix for the points (xs[i], ys[i]).
// The result is symmetric with an exact zero diagonal: each pair is computed
// once and mirrored, so dist[i][j]==dist[j][i] holds bit-for-bit.
//
// Distances use math.Hypot, so large but finite coordinates do not overflow
// in the squares. A pair whose difference itself overflows is rejected.
//
// Errors: ErrDimensionMismatch (len(xs)!=len(ys)), ErrInvalidDimensions (n==0),
// ErrNaNInf (non-finite coordinate or distance).
//
// Complexity: O(n²) time and memory.
func Euclidean(xs, ys []float64) (*Dense, error) {
	if len(xs) != len(ys) {
		return nil, ErrDimensionMismatch
	}
	var n = len(xs)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, ErrNaNInf
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = xs[i] - xs[j]
			dy = ys[i] - ys[j]
			d = math.Hypot(dx, dy)
			if !isFinite(d) {
				return nil, ErrNaNInf
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

// ValidateDistance checks the invariants every solver relies on:
// square shape, finite non-negative entries, zero diagonal and symmetry
// within eps.
//
// Complexity: O(n²).
func ValidateDistance(m *Dense, eps float64) error {
	if m == nil || m.r == 0 {
		return ErrInvalidDimensions
	}
	if m.r != m.c {
		return ErrNonSquare
	}
	var (
		n    = m.r
		i, j int
		a, b float64
	)
	for i = 0; i < n; i++ {
		if math.Abs(m.data[i*n+i]) > eps {
			return ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			a, b = m.data[i*n+j], m.data[j*n+i]
			if !isFinite(a) || !isFinite(b) || a < 0 || b < 0 {
				return ErrNaNInf
			}
			if math.Abs(a-b) > eps {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
