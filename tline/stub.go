package tline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// SingleStub solves the single-stub matching problem for a complex
// load on a line with characteristic impedance z0.
//
// The stub distance d from the load places the line admittance on the
// unit-conductance circle: cos φ = −|Γ_L| with φ = θ_Γ − 2βd, which has
// two solutions φ = ±acos(−|Γ_L|). The stub then cancels the residual
// susceptance: tan βl = −1/b for a shorted stub, tan βl = b for an open
// stub. Both (d, l) pairs are returned; lengths fold into [0, λ/2).
//
// A solution exists whenever |Γ_L| < 1; otherwise ErrFullReflection.
func SingleStub(z0 float64, zLoad complex128, frequency, phaseVelocity float64, kind StubKind) ([2]StubSolution, error) {
	var none [2]StubSolution
	if frequency <= 0 || phaseVelocity <= 0 {
		return none, ErrBadFrequency
	}
	gamma, err := Reflection(z0, zLoad)
	if err != nil {
		return none, err
	}
	// Tolerance absorbs round-off for lossless reactive loads whose
	// exact |Γ| is 1.
	gammaMag := cmplx.Abs(gamma)
	if gammaMag >= 1.0-1e-9 {
		return none, ErrFullReflection
	}

	wavelength := phaseVelocity / frequency
	beta := 2.0 * math.Pi / wavelength
	thetaR := cmplx.Phase(gamma)

	phi1 := math.Acos(core.Clamp(-gammaMag, -1.0, 1.0))
	phi2 := -phi1

	distanceFor := func(phi float64) float64 {
		d := (thetaR - phi) / (2.0 * beta)
		d = math.Mod(d, wavelength/2.0)
		if d < 0 {
			d += wavelength / 2.0
		}
		return d
	}

	// Normalized line susceptance at distance d, to be cancelled.
	susceptanceAt := func(d float64) float64 {
		gammaD := gamma * cmplx.Rect(1.0, -2.0*beta*d)
		y := (1 - gammaD) / (1 + gammaD)
		return imag(y)
	}

	lengthFor := func(b float64) float64 {
		target := -b
		var l float64
		switch kind {
		case ShortStub:
			l = math.Atan(-1.0/target) / beta
		default:
			l = math.Atan(target) / beta
		}
		l = math.Mod(l, wavelength/2.0)
		if l < 0 {
			l += wavelength / 2.0
		}
		return l
	}

	build := func(phi float64) StubSolution {
		d := distanceFor(phi)
		l := lengthFor(susceptanceAt(d))
		return StubSolution{
			Distance:            d,
			Length:              l,
			DistanceWavelengths: d / wavelength,
			LengthWavelengths:   l / wavelength,
			Kind:                kind,
		}
	}

	return [2]StubSolution{build(phi1), build(phi2)}, nil
}

// VerifyStub computes the residual |Γ| at the stub junction for a
// candidate solution; a correct design makes it vanish.
func VerifyStub(z0 float64, zLoad complex128, sol StubSolution, frequency, phaseVelocity float64) (float64, error) {
	if frequency <= 0 || phaseVelocity <= 0 {
		return 0, ErrBadFrequency
	}
	if z0 <= 0 {
		return 0, ErrBadImpedance
	}
	beta := 2.0 * math.Pi * frequency / phaseVelocity

	zAtStub := InputImpedanceLossless(z0, zLoad, beta*sol.Distance)

	// Stub input impedance: jZ₀·tan βl (short) or −jZ₀·cot βl (open).
	// A zero-length open stub is an open circuit and leaves the
	// junction impedance untouched.
	zTotal := zAtStub
	t := math.Tan(beta * sol.Length)
	switch sol.Kind {
	case ShortStub:
		zStub := complex(0, z0*t)
		zTotal = zAtStub * zStub / (zAtStub + zStub)
	default:
		if t != 0 {
			zStub := complex(0, -z0/t)
			zTotal = zAtStub * zStub / (zAtStub + zStub)
		}
	}
	gamma, err := Reflection(z0, zTotal)
	if err != nil {
		return 0, err
	}
	return cmplx.Abs(gamma), nil
}
