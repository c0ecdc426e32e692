package circuit

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// MagneticFlux is Φ = BA·cosθ through a flat loop whose normal makes
// angle theta with the field.
func MagneticFlux(b, area, theta float64) float64 {
	return b * area * math.Cos(theta)
}

// MotionalEMF is the EMF vBL of a straight conductor of length l
// moving at speed v perpendicular to B.
func MotionalEMF(velocity, b, length float64) float64 {
	return velocity * b * length
}

// SinusoidalFlux is a stationary loop threaded by
// B(t) = B₀cos(ωt+φ), so Φ = B₀A·cos(ωt+φ) and the induced EMF is
// −dΦ/dt = B₀Aω·sin(ωt+φ).
type SinusoidalFlux struct {
	BPeak float64
	Area  float64
	Omega float64
	Phase float64
}

// NewSinusoidalFlux builds a zero-phase sinusoidal flux.
func NewSinusoidalFlux(bPeak, area, omega float64) (SinusoidalFlux, error) {
	if area <= 0 {
		return SinusoidalFlux{}, ErrBadGeometry
	}
	if omega <= 0 {
		return SinusoidalFlux{}, ErrBadFrequency
	}
	return SinusoidalFlux{BPeak: bPeak, Area: area, Omega: omega}, nil
}

// WithPhase returns a copy offset by phase radians.
func (s SinusoidalFlux) WithPhase(phase float64) SinusoidalFlux {
	s.Phase = phase
	return s
}

// FluxAt is Φ(t).
func (s SinusoidalFlux) FluxAt(t float64) float64 {
	return s.BPeak * s.Area * math.Cos(s.Omega*t+s.Phase)
}

// EMFAt is the induced EMF at time t.
func (s SinusoidalFlux) EMFAt(t float64) float64 {
	return s.BPeak * s.Area * s.Omega * math.Sin(s.Omega*t+s.Phase)
}

// PeakEMF is B₀Aω.
func (s SinusoidalFlux) PeakEMF() float64 {
	return s.BPeak * s.Area * s.Omega
}

// Sample tabulates flux and EMF over [0, tEnd] at n points.
func (s SinusoidalFlux) Sample(tEnd float64, n int) (ts, flux, emf []float64) {
	ts = core.Linspace(0, tEnd, n)
	flux = core.Map(ts, s.FluxAt)
	emf = core.Map(ts, s.EMFAt)
	return ts, flux, emf
}

// AcGenerator is a loop of Turns turns rotating at Omega rad/s in a
// uniform field, producing EMF = NBAω·sin(ωt).
type AcGenerator struct {
	Turns int
	Field float64
	Area  float64
	Omega float64
}

// NewAcGenerator builds a generator from its rotation speed in rad/s.
func NewAcGenerator(turns int, field, area, omega float64) (AcGenerator, error) {
	if turns < 1 {
		return AcGenerator{}, ErrBadTurns
	}
	if area <= 0 {
		return AcGenerator{}, ErrBadGeometry
	}
	if omega <= 0 {
		return AcGenerator{}, ErrBadFrequency
	}
	return AcGenerator{Turns: turns, Field: field, Area: area, Omega: omega}, nil
}

// NewAcGeneratorRPM builds a generator from its shaft speed in
// revolutions per minute.
func NewAcGeneratorRPM(turns int, field, area, rpm float64) (AcGenerator, error) {
	return NewAcGenerator(turns, field, area, rpm*2.0*math.Pi/60.0)
}

// PeakEMF is NBAω.
func (g AcGenerator) PeakEMF() float64 {
	return float64(g.Turns) * g.Field * g.Area * g.Omega
}

// EMFAt is the instantaneous EMF.
func (g AcGenerator) EMFAt(t float64) float64 {
	return g.PeakEMF() * math.Sin(g.Omega*t)
}

// RMS is the root-mean-square voltage, peak/√2.
func (g AcGenerator) RMS() float64 {
	return g.PeakEMF() / math.Sqrt2
}

// Frequency is the electrical frequency in Hz.
func (g AcGenerator) Frequency() float64 {
	return g.Omega / (2.0 * math.Pi)
}

// Period is one electrical cycle in seconds.
func (g AcGenerator) Period() float64 {
	return 1.0 / g.Frequency()
}

// IdealTransformer is a lossless transformer defined by its primary
// and secondary turn counts.
type IdealTransformer struct {
	Primary   int
	Secondary int
}

// NewIdealTransformer builds a transformer; both windings need at
// least one turn.
func NewIdealTransformer(primary, secondary int) (IdealTransformer, error) {
	if primary < 1 || secondary < 1 {
		return IdealTransformer{}, ErrBadTurns
	}
	return IdealTransformer{Primary: primary, Secondary: secondary}, nil
}

// TurnsRatio is n = N₂/N₁.
func (tr IdealTransformer) TurnsRatio() float64 {
	return float64(tr.Secondary) / float64(tr.Primary)
}

// SecondaryVoltage is V₂ = nV₁.
func (tr IdealTransformer) SecondaryVoltage(vPrimary float64) float64 {
	return vPrimary * tr.TurnsRatio()
}

// SecondaryCurrent is I₂ = I₁/n, conserving power.
func (tr IdealTransformer) SecondaryCurrent(iPrimary float64) float64 {
	return iPrimary / tr.TurnsRatio()
}

// ReflectedImpedance is the secondary load seen from the primary,
// Z₂/n².
func (tr IdealTransformer) ReflectedImpedance(zSecondary float64) float64 {
	n := tr.TurnsRatio()
	return zSecondary / (n * n)
}

// IsStepUp reports whether the secondary voltage exceeds the primary.
func (tr IdealTransformer) IsStepUp() bool {
	return tr.Secondary > tr.Primary
}
