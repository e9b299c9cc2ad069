// SPDX-License-Identifier: MIT

// Package matrix - Dense is a row-major float64 matrix stored in a flat slice
// for cache friendliness. It is the distance model shared by the solvers.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Values returns a copy of the flat row-major backing slice.
// Solvers prefetch it once to index w[u*n+v] in their hot loops
// without bounds-checked method calls.
//
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Induced returns the square sub-matrix selected by idx on both axes:
// out[i][j] = m[idx[i]][idx[j]]. Used to carve a sub-problem out of a
// distance matrix while keeping the original pairwise costs.
//
// Contracts:
//   - m must be square; idx non-empty with entries in [0..n-1].
//
// Complexity: O(k²) for k=len(idx).
func (m *Dense) Induced(idx []int) (*Dense, error) {
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	var k = len(idx)
	if k == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		i, j int
		v    int
	)
	for _, v = range idx {
		if v < 0 || v >= m.r {
			return nil, denseErrorf("Induced", v, v, ErrOutOfRange)
		}
	}
	out := &Dense{r: k, c: k, data: make([]float64, k*k)}
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			out.data[i*k+j] = m.data[idx[i]*m.c+idx[j]]
		}
	}

	return out, nil
}
