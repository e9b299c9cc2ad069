// Package matrix provides the dense distance model shared by the solvers.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix with a flat Values prefetch and
//     Induced sub-matrices.
//   - Euclidean: builds a symmetric, zero-diagonal distance matrix from
//     planar coordinates.
//   - ValidateDistance: the shape/symmetry/finiteness checks solvers assume.
//
// All failures are reported through the sentinels in errors.go.
package matrix
