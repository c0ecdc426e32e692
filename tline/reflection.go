package tline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// vswrEps keeps 1−|Γ| away from zero so VSWR stays finite.
const vswrEps = 1e-12

// Reflection computes the load reflection coefficient
// Γ = (Z_L − Z₀)/(Z_L + Z₀).
func Reflection(z0 float64, zLoad complex128) (complex128, error) {
	if z0 <= 0 || math.IsNaN(z0) || math.IsInf(z0, 0) {
		return 0, ErrBadImpedance
	}
	z0c := complex(z0, 0)
	return (zLoad - z0c) / (zLoad + z0c), nil
}

// VSWR computes the voltage standing-wave ratio (1+|Γ|)/(1−|Γ|).
// |Γ| is clamped below 1 so the ratio remains finite for full reflection.
func VSWR(gamma complex128) float64 {
	mag := core.Clamp(cmplx.Abs(gamma), 0.0, 1.0-vswrEps)
	return (1.0 + mag) / (1.0 - mag)
}

// ReturnLossDB computes −20·log₁₀|Γ|; undefined for a perfect match.
func ReturnLossDB(gamma complex128) core.Maybe {
	mag := cmplx.Abs(gamma)
	if mag == 0 {
		return core.None()
	}
	return core.Some(-20.0 * math.Log10(mag))
}

// MismatchLossDB computes −10·log₁₀(1−|Γ|²), the power lost to the
// reflection expressed in dB.
func MismatchLossDB(gamma complex128) float64 {
	mag := core.Clamp(cmplx.Abs(gamma), 0.0, 1.0-vswrEps)
	return -10.0 * math.Log10(1.0-mag*mag)
}

// DeliveredFraction computes 1−|Γ|², the share of incident power
// absorbed by the load.
func DeliveredFraction(gamma complex128) float64 {
	mag := core.Clamp(cmplx.Abs(gamma), 0.0, 1.0)
	return 1.0 - mag*mag
}

// Analyze bundles the reflection metrics of a load on a line with
// characteristic impedance z0.
//
// Example: Analyze(50, 100+0i) yields Γ=1/3 and VSWR=2.
func Analyze(z0 float64, zLoad complex128) (MatchReport, error) {
	gamma, err := Reflection(z0, zLoad)
	if err != nil {
		return MatchReport{}, err
	}
	return MatchReport{
		Gamma:          gamma,
		GammaMagnitude: cmplx.Abs(gamma),
		GammaPhase:     cmplx.Phase(gamma),
		VSWR:           VSWR(gamma),
		ReturnLossDB:   ReturnLossDB(gamma),
		MismatchLossDB: MismatchLossDB(gamma),
		Delivered:      DeliveredFraction(gamma),
	}, nil
}

// InputImpedanceLossless transforms Z_L through a lossless line of
// electrical length βl:
//
//	Zin = Z₀ · (Z_L + jZ₀·tan βl) / (Z₀ + jZ_L·tan βl)
func InputImpedanceLossless(z0 float64, zLoad complex128, betaL float64) complex128 {
	z0c := complex(z0, 0)
	t := complex(math.Tan(betaL), 0)
	return z0c * (zLoad + 1i*z0c*t) / (z0c + 1i*zLoad*t)
}

// InputImpedanceLossy transforms Z_L through a lossy line with complex
// propagation constant γ and physical length l using tanh(γl).
func InputImpedanceLossy(z0 complex128, zLoad complex128, gamma complex128, length float64) complex128 {
	th := cmplx.Tanh(gamma * complex(length, 0))
	return z0 * (zLoad + z0*th) / (z0 + zLoad*th)
}
