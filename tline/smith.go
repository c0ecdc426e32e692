package tline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// SmithPoint is one location on the Smith chart: a normalized impedance
// z, its reflection coefficient Γ = (z−1)/(z+1), and the normalized
// admittance y = 1/z.
type SmithPoint struct {
	Z     complex128
	Gamma complex128
	Y     complex128
}

// PointFromImpedance maps a normalized impedance onto the chart.
func PointFromImpedance(z complex128) SmithPoint {
	return SmithPoint{
		Z:     z,
		Gamma: (z - 1) / (z + 1),
		Y:     1 / z,
	}
}

// PointFromGamma inverts the bilinear map: z = (1+Γ)/(1−Γ).
func PointFromGamma(gamma complex128) SmithPoint {
	z := (1 + gamma) / (1 - gamma)
	return SmithPoint{Z: z, Gamma: gamma, Y: 1 / z}
}

// PointFromLoad normalizes Z_L by Z₀ and maps it onto the chart.
func PointFromLoad(z0 float64, zLoad complex128) (SmithPoint, error) {
	if z0 <= 0 || math.IsNaN(z0) || math.IsInf(z0, 0) {
		return SmithPoint{}, ErrBadImpedance
	}
	return PointFromImpedance(zLoad / complex(z0, 0)), nil
}

// Impedance denormalizes the point back to ohms.
func (p SmithPoint) Impedance(z0 float64) complex128 { return p.Z * complex(z0, 0) }

// VSWR reports the standing-wave ratio of the point's SWR circle.
func (p SmithPoint) VSWR() float64 { return VSWR(p.Gamma) }

// TowardGenerator rotates the point clockwise by electrical length βl
// (Γ → Γ·e^{−j2βl}); the input impedance is periodic in βl with period π.
func (p SmithPoint) TowardGenerator(betaL float64) SmithPoint {
	return PointFromGamma(p.Gamma * cmplx.Rect(1.0, -2.0*betaL))
}

// TowardLoad rotates the point counterclockwise by βl.
func (p SmithPoint) TowardLoad(betaL float64) SmithPoint {
	return PointFromGamma(p.Gamma * cmplx.Rect(1.0, 2.0*betaL))
}

// ConstResistanceCircle returns the locus of constant normalized
// resistance r: center (r/(1+r), 0), radius 1/(1+r).
func ConstResistanceCircle(r float64) Circle {
	return Circle{CenterX: r / (1.0 + r), CenterY: 0, Radius: 1.0 / (1.0 + r)}
}

// ConstReactanceCircle returns the locus of constant normalized
// reactance x: center (1, 1/x), radius |1/x|. The x = 0 locus is the
// real axis, not a circle, and is rejected.
func ConstReactanceCircle(x float64) (Circle, error) {
	if x == 0 {
		return Circle{}, ErrZeroReactance
	}
	return Circle{CenterX: 1.0, CenterY: 1.0 / x, Radius: math.Abs(1.0 / x)}, nil
}

// SWRCircle samples the |Γ| = const circle over a full turn.
// n bounds the work; n = 0 yields empty curves.
func SWRCircle(gammaMag float64, n int) (xs, ys []float64) {
	angles := core.Linspace(0, 2.0*math.Pi, n)
	xs = make([]float64, len(angles))
	ys = make([]float64, len(angles))
	for i, a := range angles {
		xs[i] = gammaMag * math.Cos(a)
		ys[i] = gammaMag * math.Sin(a)
	}
	return xs, ys
}

// TraceTowardGenerator samples the input impedance seen looking into
// the line as the observation point moves from the load toward the
// generator, up to electrical length betaLMax.
//
// Returns the βl samples and the real/imaginary parts of Zin (ohms).
func TraceTowardGenerator(z0 float64, zLoad complex128, betaLMax float64, n int) (betaL, re, im []float64, err error) {
	p, err := PointFromLoad(z0, zLoad)
	if err != nil {
		return nil, nil, nil, err
	}
	betaL = core.Linspace(0, betaLMax, n)
	re = make([]float64, len(betaL))
	im = make([]float64, len(betaL))
	for i, bl := range betaL {
		z := p.TowardGenerator(bl).Impedance(z0)
		re[i] = real(z)
		im[i] = imag(z)
	}
	return betaL, re, im, nil
}
