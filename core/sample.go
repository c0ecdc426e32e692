package core

import "gonum.org/v1/gonum/floats"

// Linspace returns n uniformly spaced samples over [lo, hi] inclusive.
//
// The caller-provided n is a hard bound on work: n=0 yields an empty
// slice (not an error) and n=1 yields {lo}.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Map applies f to every sample, returning the dependent curve values.
func Map(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
