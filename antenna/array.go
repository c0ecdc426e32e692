package antenna

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// mainBeamTol bounds |sin(ψ/2)| below which the array factor is at a
// grating maximum and evaluates to one.
const mainBeamTol = 1e-12

// UniformLinearArray is N identical elements on the z-axis with
// spacing Spacing wavelengths and progressive phase Beta radians.
type UniformLinearArray struct {
	Elements int
	Spacing  float64
	Beta     float64
}

// NewUniformLinearArray builds an array with an explicit progressive
// phase.
func NewUniformLinearArray(elements int, spacing, beta float64) (UniformLinearArray, error) {
	if elements < 2 {
		return UniformLinearArray{}, ErrTooFewElements
	}
	if spacing <= 0 {
		return UniformLinearArray{}, ErrBadGeometry
	}
	return UniformLinearArray{Elements: elements, Spacing: spacing, Beta: beta}, nil
}

// Broadside builds an array with β = 0 and its main beam at θ = 90°.
func Broadside(elements int, spacing float64) (UniformLinearArray, error) {
	return NewUniformLinearArray(elements, spacing, 0)
}

// Endfire builds an array with β = −kd and its main beam on the
// axis.
func Endfire(elements int, spacing float64) (UniformLinearArray, error) {
	return NewUniformLinearArray(elements, spacing, -2.0*math.Pi*spacing)
}

// Scanned builds an array whose main beam is steered to theta0 via
// β = −kd·cosθ₀.
func Scanned(elements int, spacing, theta0 float64) (UniformLinearArray, error) {
	return NewUniformLinearArray(elements, spacing, -2.0*math.Pi*spacing*math.Cos(theta0))
}

// Psi is the inter-element phase ψ = kd·cosθ + β with d in
// wavelengths.
func (a UniformLinearArray) Psi(theta float64) float64 {
	return 2.0*math.Pi*a.Spacing*math.Cos(theta) + a.Beta
}

// ArrayFactor is the normalized |sin(Nψ/2)/(N·sinψ/2)|, one at the
// main beam.
func (a UniformLinearArray) ArrayFactor(theta float64) float64 {
	n := float64(a.Elements)
	half := a.Psi(theta) / 2.0
	denom := math.Sin(half)
	if math.Abs(denom) < mainBeamTol {
		return 1.0
	}
	return math.Abs(math.Sin(n*half) / (n * denom))
}

// FirstNullBeamwidth is 2·asin(1/Nd̂) radians for a broadside array,
// or π when the aperture Nd̂ is below one wavelength.
func (a UniformLinearArray) FirstNullBeamwidth() float64 {
	nd := float64(a.Elements) * a.Spacing
	if nd <= 1.0 {
		return math.Pi
	}
	return 2.0 * math.Asin(1.0/nd)
}

// DirectivityApprox is the long-array estimate D ≈ 2Nd̂.
func (a UniformLinearArray) DirectivityApprox() float64 {
	return 2.0 * float64(a.Elements) * a.Spacing
}

// HalfPowerBeamwidth scans the pattern at n points for the −3 dB
// crossings around the strongest lobe and returns their angular
// separation. It falls back to π when the pattern never drops below
// half power.
func (a UniformLinearArray) HalfPowerBeamwidth(n int) float64 {
	if n < 3 {
		n = 3
	}
	thetas := core.Linspace(0, math.Pi, n)
	af := core.Map(thetas, a.ArrayFactor)

	peak := 0
	for i, v := range af {
		if v > af[peak] {
			peak = i
		}
	}
	threshold := af[peak] / math.Sqrt2

	left := thetas[0]
	found := false
	for i := peak; i > 0; i-- {
		if af[i-1] < threshold {
			frac := (af[i] - threshold) / (af[i] - af[i-1])
			left = thetas[i] - frac*(thetas[i]-thetas[i-1])
			found = true
			break
		}
	}
	right := thetas[n-1]
	foundRight := false
	for i := peak; i < n-1; i++ {
		if af[i+1] < threshold {
			frac := (af[i] - threshold) / (af[i] - af[i+1])
			right = thetas[i] + frac*(thetas[i+1]-thetas[i])
			foundRight = true
			break
		}
	}
	if !found && !foundRight {
		return math.Pi
	}
	return right - left
}

// SamplePattern tabulates the array factor over θ ∈ [0, π].
func (a UniformLinearArray) SamplePattern(n int) (thetas, af []float64) {
	thetas = core.Linspace(0, math.Pi, n)
	af = core.Map(thetas, a.ArrayFactor)
	return thetas, af
}

// SampleTotalPattern tabulates the element×array product using a
// short-dipole sinθ element pattern.
func (a UniformLinearArray) SampleTotalPattern(n int) (thetas, pattern []float64) {
	thetas = core.Linspace(0, math.Pi, n)
	pattern = core.Map(thetas, func(theta float64) float64 {
		return math.Sin(theta) * a.ArrayFactor(theta)
	})
	return thetas, pattern
}
