package core

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed interval [lo, hi].
//
// Used throughout the engine to guard acos/asin arguments against
// floating round-off drifting outside [−1, 1].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
