package core

import "math"

const (
	// Epsilon is the tolerance for exact-zero comparisons
	Epsilon = 1e-10

	// ParallelEpsilon is the smallest direction component treated as
	// non-parallel by slab and triangle tests
	ParallelEpsilon = 1e-8

	// SingularEpsilon is the largest determinant treated as singular
	SingularEpsilon = 1e-12
)

// NearZero reports whether x is within Epsilon of zero
func NearZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
