package tsp

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrEmptyInstance
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// rotateToStart returns a fresh closed tour equal to the closed cycle tour
// but beginning and ending at start. tour must contain start in [0..n-1].
//
// Complexity: O(n).
func rotateToStart(tour []int, start int) []int {
	var (
		n   = len(tour) - 1
		pos = -1
		i   int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return CopyTour(tour)
	}
	out := make([]int, 0, n+1)
	out = append(out, tour[pos:n]...)
	out = append(out, tour[:pos]...)

	return append(out, start)
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
