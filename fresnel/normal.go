package fresnel

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// NormalIncidence describes a wave hitting the boundary head on,
// characterized by the two intrinsic impedances.
type NormalIncidence struct {
	Eta1 float64
	Eta2 float64
}

// NewNormalIncidence builds the pair from explicit impedances.
func NewNormalIncidence(eta1, eta2 float64) NormalIncidence {
	return NormalIncidence{Eta1: eta1, Eta2: eta2}
}

// NormalFromEpsilonR derives the impedances of two non-magnetic
// lossless dielectrics, η = η₀/√εᵣ.
func NormalFromEpsilonR(er1, er2 float64) (NormalIncidence, error) {
	if er1 <= 0 || er2 <= 0 {
		return NormalIncidence{}, ErrBadMedium
	}
	return NormalIncidence{
		Eta1: core.Eta0 / math.Sqrt(er1),
		Eta2: core.Eta0 / math.Sqrt(er2),
	}, nil
}

// Gamma returns the reflection coefficient (η₂−η₁)/(η₂+η₁).
func (ni NormalIncidence) Gamma() float64 {
	return (ni.Eta2 - ni.Eta1) / (ni.Eta2 + ni.Eta1)
}

// Tau returns the transmission coefficient 2η₂/(η₂+η₁).
func (ni NormalIncidence) Tau() float64 {
	return 2.0 * ni.Eta2 / (ni.Eta2 + ni.Eta1)
}

// Reflectance returns the reflected power fraction Γ².
func (ni NormalIncidence) Reflectance() float64 {
	g := ni.Gamma()
	return g * g
}

// Transmittance returns the transmitted power fraction 1−Γ².
func (ni NormalIncidence) Transmittance() float64 {
	return 1.0 - ni.Reflectance()
}
