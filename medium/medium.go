package medium

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// Medium holds the material parameters governing wave propagation.
type Medium struct {
	// EpsilonR is the relative permittivity εᵣ.
	EpsilonR float64
	// MuR is the relative permeability μᵣ.
	MuR float64
	// Conductivity is σ in S/m.
	Conductivity float64
}

// NewLossless builds a dielectric with μᵣ = 1 and σ = 0.
func NewLossless(epsilonR float64) (Medium, error) {
	return NewMedium(epsilonR, 1.0, 0.0)
}

// NewLossy builds a dielectric with μᵣ = 1 and the given conductivity.
func NewLossy(epsilonR, conductivity float64) (Medium, error) {
	return NewMedium(epsilonR, 1.0, conductivity)
}

// FreeSpace returns vacuum.
func FreeSpace() Medium {
	return Medium{EpsilonR: 1.0, MuR: 1.0}
}

// NewConductor builds a non-magnetic conductor with εᵣ = 1.
func NewConductor(conductivity float64) (Medium, error) {
	return NewMedium(1.0, 1.0, conductivity)
}

// NewMedium validates and builds a general medium.
func NewMedium(epsilonR, muR, conductivity float64) (Medium, error) {
	if epsilonR <= 0 || muR <= 0 || conductivity < 0 ||
		math.IsNaN(epsilonR) || math.IsNaN(muR) || math.IsNaN(conductivity) {
		return Medium{}, ErrBadMedium
	}
	return Medium{EpsilonR: epsilonR, MuR: muR, Conductivity: conductivity}, nil
}

// Epsilon returns the absolute permittivity ε₀εᵣ.
func (m Medium) Epsilon() float64 { return core.Epsilon0 * m.EpsilonR }

// Mu returns the absolute permeability μ₀μᵣ.
func (m Medium) Mu() float64 { return core.Mu0 * m.MuR }

// ComplexPermittivity returns ε_c = ε − jσ/ω.
func (m Medium) ComplexPermittivity(frequency float64) (complex128, error) {
	if frequency <= 0 {
		return 0, ErrBadFrequency
	}
	omega := 2.0 * math.Pi * frequency
	return complex(m.Epsilon(), -m.Conductivity/omega), nil
}

// LossTangent returns tan δ = σ/(ωε).
func (m Medium) LossTangent(frequency float64) (float64, error) {
	if frequency <= 0 {
		return 0, ErrBadFrequency
	}
	omega := 2.0 * math.Pi * frequency
	return m.Conductivity / (omega * m.Epsilon()), nil
}

// Classify places the medium in a loss regime at one frequency.
func (m Medium) Classify(frequency float64) (LossClass, error) {
	tan, err := m.LossTangent(frequency)
	if err != nil {
		return Lossless, err
	}
	switch {
	case m.Conductivity == 0:
		return Lossless, nil
	case tan < LowLossThreshold:
		return LowLoss, nil
	case tan > GoodConductorThreshold:
		return GoodConductor, nil
	default:
		return Lossy, nil
	}
}

// PropagationConstant returns γ = α + jβ = √(jωμ(σ + jωε)). The
// principal square root keeps α ≥ 0.
func (m Medium) PropagationConstant(frequency float64) (complex128, error) {
	if frequency <= 0 {
		return 0, ErrBadFrequency
	}
	omega := 2.0 * math.Pi * frequency
	jwmu := complex(0, omega*m.Mu())
	sigmaPlusJwe := complex(m.Conductivity, omega*m.Epsilon())
	return cmplx.Sqrt(jwmu * sigmaPlusJwe), nil
}

// Alpha returns the attenuation constant Re γ in Np/m.
func (m Medium) Alpha(frequency float64) (float64, error) {
	gamma, err := m.PropagationConstant(frequency)
	if err != nil {
		return 0, err
	}
	return real(gamma), nil
}

// Beta returns the phase constant Im γ in rad/m.
func (m Medium) Beta(frequency float64) (float64, error) {
	gamma, err := m.PropagationConstant(frequency)
	if err != nil {
		return 0, err
	}
	return imag(gamma), nil
}

// IntrinsicImpedance returns η = √(jωμ/(σ + jωε)).
func (m Medium) IntrinsicImpedance(frequency float64) (complex128, error) {
	if frequency <= 0 {
		return 0, ErrBadFrequency
	}
	omega := 2.0 * math.Pi * frequency
	jwmu := complex(0, omega*m.Mu())
	sigmaPlusJwe := complex(m.Conductivity, omega*m.Epsilon())
	return cmplx.Sqrt(jwmu / sigmaPlusJwe), nil
}

// PhaseVelocity returns ω/β.
func (m Medium) PhaseVelocity(frequency float64) (float64, error) {
	beta, err := m.Beta(frequency)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Pi * frequency / beta, nil
}

// Wavelength returns 2π/β.
func (m Medium) Wavelength(frequency float64) (float64, error) {
	beta, err := m.Beta(frequency)
	if err != nil {
		return 0, err
	}
	return 2.0 * math.Pi / beta, nil
}

// SkinDepth returns 1/α, or None when the medium does not attenuate.
func (m Medium) SkinDepth(frequency float64) (core.Maybe, error) {
	alpha, err := m.Alpha(frequency)
	if err != nil {
		return core.None(), err
	}
	if alpha < 1e-30 {
		return core.None(), nil
	}
	return core.Some(1.0 / alpha), nil
}
