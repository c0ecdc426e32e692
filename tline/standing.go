package tline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// StandingWave describes the interference pattern on a lossless line
// terminated by zLoad. Distances d are measured from the load toward
// the generator.
type StandingWave struct {
	Z0    float64
	ZLoad complex128
	Beta  float64

	gamma complex128
}

// NewStandingWave validates the line parameters and precomputes Γ.
func NewStandingWave(z0 float64, zLoad complex128, beta float64) (*StandingWave, error) {
	gamma, err := Reflection(z0, zLoad)
	if err != nil {
		return nil, err
	}
	if beta <= 0 {
		return nil, ErrBadFrequency
	}
	return &StandingWave{Z0: z0, ZLoad: zLoad, Beta: beta, gamma: gamma}, nil
}

// Gamma returns the load reflection coefficient.
func (s *StandingWave) Gamma() complex128 { return s.gamma }

// VSWR returns the standing-wave ratio of the pattern.
func (s *StandingWave) VSWR() float64 { return VSWR(s.gamma) }

// Wavelength returns 2π/β.
func (s *StandingWave) Wavelength() float64 { return 2.0 * math.Pi / s.Beta }

// VoltageMagnitude returns |1 + Γ·e^{−j2βd}|, the normalized voltage
// envelope at distance d from the load.
func (s *StandingWave) VoltageMagnitude(d float64) float64 {
	return cmplx.Abs(1 + s.gamma*cmplx.Rect(1.0, -2.0*s.Beta*d))
}

// CurrentMagnitude returns |1 − Γ·e^{−j2βd}|, the normalized current
// envelope; its extrema interleave with the voltage pattern.
func (s *StandingWave) CurrentMagnitude(d float64) float64 {
	return cmplx.Abs(1 - s.gamma*cmplx.Rect(1.0, -2.0*s.Beta*d))
}

// ImpedanceAt returns the line impedance at distance d from the load.
func (s *StandingWave) ImpedanceAt(d float64) complex128 {
	return InputImpedanceLossless(s.Z0, s.ZLoad, s.Beta*d)
}

// FirstMinimum locates the voltage minimum closest to the load:
// d_min = (π − θ_Γ)/(2β), folded into [0, λ/2).
func (s *StandingWave) FirstMinimum() float64 {
	d := (math.Pi - cmplx.Phase(s.gamma)) / (2.0 * s.Beta)
	if d < 0 {
		d += s.Wavelength() / 2.0
	}
	return d
}

// FirstMaximum locates the voltage maximum closest to the load:
// d_max = −θ_Γ/(2β), folded into [0, λ/2).
func (s *StandingWave) FirstMaximum() float64 {
	d := -cmplx.Phase(s.gamma) / (2.0 * s.Beta)
	if d < 0 {
		d += s.Wavelength() / 2.0
	}
	return d
}

// SampleVoltage samples the voltage envelope over [0, length].
func (s *StandingWave) SampleVoltage(length float64, n int) (ds, vs []float64) {
	ds = core.Linspace(0, length, n)
	vs = core.Map(ds, s.VoltageMagnitude)
	return ds, vs
}

// SampleCurrent samples the current envelope over [0, length].
func (s *StandingWave) SampleCurrent(length float64, n int) (ds, is []float64) {
	ds = core.Linspace(0, length, n)
	is = core.Map(ds, s.CurrentMagnitude)
	return ds, is
}

// SampleImpedance samples Re/Im of the line impedance over [0, length].
func (s *StandingWave) SampleImpedance(length float64, n int) (ds, re, im []float64) {
	ds = core.Linspace(0, length, n)
	re = make([]float64, len(ds))
	im = make([]float64, len(ds))
	for i, d := range ds {
		z := s.ImpedanceAt(d)
		re[i] = real(z)
		im[i] = imag(z)
	}
	return ds, re, im
}
