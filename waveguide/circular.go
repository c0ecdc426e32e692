package waveguide

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// Bessel-function roots fixing the dominant circular-guide cutoffs.
const (
	// te11Root is p'₁₁, the first zero of J₁'.
	te11Root = 1.8412
	// tm01Root is p₀₁, the first zero of J₀.
	tm01Root = 2.4049
)

// CircularTE11Cutoff returns the dominant-mode cutoff of a circular
// guide, f_c = p'₁₁·v/(2πr).
func CircularTE11Cutoff(radius, epsilonR, muR float64) (float64, error) {
	return circularCutoff(te11Root, radius, epsilonR, muR)
}

// CircularTM01Cutoff returns the first TM cutoff, f_c = p₀₁·v/(2πr).
func CircularTM01Cutoff(radius, epsilonR, muR float64) (float64, error) {
	return circularCutoff(tm01Root, radius, epsilonR, muR)
}

func circularCutoff(root, radius, epsilonR, muR float64) (float64, error) {
	if radius <= 0 {
		return 0, ErrBadGeometry
	}
	if epsilonR <= 0 || muR <= 0 {
		return 0, ErrBadMedium
	}
	v := core.C0 / math.Sqrt(epsilonR*muR)
	return root * v / (2.0 * math.Pi * radius), nil
}
