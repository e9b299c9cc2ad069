// Package tsp - RNG utilities for deterministic synthetic instances.
//
// Goals:
//   - Determinism: same seed ⇒ identical instance across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every call builds its own stream.
package tsp

import "math/rand"

// fallbackSeed is the fixed seed of the synthetic fallback instance.
const fallbackSeed int64 = 42

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomPoints draws n points uniformly from [0,side)² using a deterministic
// stream for seed. For each city x is drawn before y.
//
// Complexity: O(n).
func RandomPoints(n int, side float64, seed int64) []Point {
	if n <= 0 {
		return nil
	}
	var (
		r   = rngFromSeed(seed)
		out = make([]Point, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i].X = r.Float64() * side
		out[i].Y = r.Float64() * side
	}

	return out
}
