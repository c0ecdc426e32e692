package antenna

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// Half-wave dipole constants for an exact λ/2 resonator.
const (
	halfWaveResistance  = 73.1
	halfWaveReactance   = 42.5
	halfWaveDirectivity = 1.643
)

// axisTol bounds sinθ below which the half-wave pattern is taken as
// its on-axis limit of zero.
const axisTol = 1e-15

// HertzianDipole is an infinitesimal current element along the
// z-axis, length much smaller than the wavelength.
type HertzianDipole struct {
	Length    float64
	Current   float64
	Frequency float64
}

// NewHertzianDipole builds the element.
func NewHertzianDipole(length, current, frequency float64) (HertzianDipole, error) {
	if length <= 0 {
		return HertzianDipole{}, ErrBadGeometry
	}
	if frequency <= 0 {
		return HertzianDipole{}, ErrBadFrequency
	}
	return HertzianDipole{Length: length, Current: current, Frequency: frequency}, nil
}

// Wavelength is λ = c₀/f.
func (d HertzianDipole) Wavelength() float64 {
	return core.C0 / d.Frequency
}

// WaveNumber is k = 2π/λ.
func (d HertzianDipole) WaveNumber() float64 {
	return 2.0 * math.Pi * d.Frequency / core.C0
}

// Pattern is the normalized far-field magnitude |sinθ|.
func (d HertzianDipole) Pattern(theta float64) float64 {
	return math.Abs(math.Sin(theta))
}

// RadiationResistance is R = 80π²(l/λ)².
func (d HertzianDipole) RadiationResistance() float64 {
	ratio := d.Length / d.Wavelength()
	return 80.0 * math.Pi * math.Pi * ratio * ratio
}

// Directivity is 3/2 for the infinitesimal element.
func (d HertzianDipole) Directivity() float64 {
	return 1.5
}

// DirectivityDBi is the directivity in dB over isotropic.
func (d HertzianDipole) DirectivityDBi() float64 {
	return core.PowerToDB(d.Directivity())
}

// EffectiveArea is A_e = λ²D/4π.
func (d HertzianDipole) EffectiveArea() float64 {
	lambda := d.Wavelength()
	return lambda * lambda * d.Directivity() / (4.0 * math.Pi)
}

// RadiatedPower is P = ½I²R.
func (d HertzianDipole) RadiatedPower() float64 {
	return 0.5 * d.Current * d.Current * d.RadiationResistance()
}

// SamplePattern tabulates the E-plane pattern over θ ∈ [0, π].
func (d HertzianDipole) SamplePattern(n int) (thetas, pattern []float64) {
	thetas = core.Linspace(0, math.Pi, n)
	pattern = core.Map(thetas, d.Pattern)
	return thetas, pattern
}

// HalfWaveDipole is a resonant λ/2 dipole along the z-axis.
type HalfWaveDipole struct {
	Frequency float64
	Current   float64
}

// NewHalfWaveDipole builds the dipole from its operating frequency
// and feed current.
func NewHalfWaveDipole(frequency, current float64) (HalfWaveDipole, error) {
	if frequency <= 0 {
		return HalfWaveDipole{}, ErrBadFrequency
	}
	return HalfWaveDipole{Frequency: frequency, Current: current}, nil
}

// Wavelength is λ = c₀/f.
func (d HalfWaveDipole) Wavelength() float64 {
	return core.C0 / d.Frequency
}

// Length is the physical length λ/2.
func (d HalfWaveDipole) Length() float64 {
	return d.Wavelength() / 2.0
}

// Pattern is |cos(π/2·cosθ)/sinθ|, zero on the axis.
func (d HalfWaveDipole) Pattern(theta float64) float64 {
	sinT := math.Sin(theta)
	if math.Abs(sinT) < axisTol {
		return 0
	}
	return math.Abs(math.Cos(math.Pi/2.0*math.Cos(theta)) / sinT)
}

// RadiationResistance is the standard 73.1 Ω.
func (d HalfWaveDipole) RadiationResistance() float64 {
	return halfWaveResistance
}

// InputImpedance is 73.1+j42.5 Ω for an exact λ/2 length.
func (d HalfWaveDipole) InputImpedance() complex128 {
	return complex(halfWaveResistance, halfWaveReactance)
}

// Directivity is 1.643.
func (d HalfWaveDipole) Directivity() float64 {
	return halfWaveDirectivity
}

// DirectivityDBi is the directivity in dB over isotropic.
func (d HalfWaveDipole) DirectivityDBi() float64 {
	return core.PowerToDB(d.Directivity())
}

// EffectiveArea is A_e = λ²D/4π.
func (d HalfWaveDipole) EffectiveArea() float64 {
	lambda := d.Wavelength()
	return lambda * lambda * d.Directivity() / (4.0 * math.Pi)
}

// RadiatedPower is P = ½I²R.
func (d HalfWaveDipole) RadiatedPower() float64 {
	return 0.5 * d.Current * d.Current * d.RadiationResistance()
}

// SamplePattern tabulates the E-plane pattern over θ ∈ [0, π].
func (d HalfWaveDipole) SamplePattern(n int) (thetas, pattern []float64) {
	thetas = core.Linspace(0, math.Pi, n)
	pattern = core.Map(thetas, d.Pattern)
	return thetas, pattern
}
