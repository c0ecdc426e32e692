package wave

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// TravelingWave is a plane wave y(x,t) = A·e^{∓αx}·cos(ωt ∓ βx + φ)
// propagating along ±x.
type TravelingWave struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	Direction Direction
	// Beta is the phase constant (rad/m).
	Beta float64
	// Alpha is the attenuation constant (Np/m); zero for lossless.
	Alpha float64
}

// NewTravelingWaveFreeSpace builds a lossless wave with β = ω/c₀.
func NewTravelingWaveFreeSpace(amplitude, frequency, phase float64, dir Direction) (TravelingWave, error) {
	if frequency <= 0 {
		return TravelingWave{}, ErrBadFrequency
	}
	return TravelingWave{
		Amplitude: amplitude,
		Frequency: frequency,
		Phase:     phase,
		Direction: dir,
		Beta:      2.0 * math.Pi * frequency / core.C0,
	}, nil
}

// NewTravelingWaveDielectric builds a lossless wave in a dielectric
// with relative permittivity epsilonR: v_p = c₀/√εᵣ.
func NewTravelingWaveDielectric(amplitude, frequency, phase float64, dir Direction, epsilonR float64) (TravelingWave, error) {
	if frequency <= 0 {
		return TravelingWave{}, ErrBadFrequency
	}
	vp := core.C0 / math.Sqrt(epsilonR)
	return TravelingWave{
		Amplitude: amplitude,
		Frequency: frequency,
		Phase:     phase,
		Direction: dir,
		Beta:      2.0 * math.Pi * frequency / vp,
	}, nil
}

// NewTravelingWave builds a wave from explicit propagation constants.
func NewTravelingWave(amplitude, frequency, phase float64, dir Direction, alpha, beta float64) (TravelingWave, error) {
	if frequency <= 0 {
		return TravelingWave{}, ErrBadFrequency
	}
	return TravelingWave{
		Amplitude: amplitude,
		Frequency: frequency,
		Phase:     phase,
		Direction: dir,
		Alpha:     alpha,
		Beta:      beta,
	}, nil
}

// Evaluate returns y(x, t).
func (w TravelingWave) Evaluate(x, t float64) float64 {
	omega := 2.0 * math.Pi * w.Frequency
	if w.Direction == PositiveX {
		return w.Amplitude * math.Exp(-w.Alpha*x) * math.Cos(omega*t-w.Beta*x+w.Phase)
	}
	return w.Amplitude * math.Exp(w.Alpha*x) * math.Cos(omega*t+w.Beta*x+w.Phase)
}

// Wavelength returns 2π/β.
func (w TravelingWave) Wavelength() float64 { return 2.0 * math.Pi / w.Beta }

// PhaseVelocity returns ω/β.
func (w TravelingWave) PhaseVelocity() float64 {
	return 2.0 * math.Pi * w.Frequency / w.Beta
}

// SampleSpace snapshots the wave over [xStart, xEnd] at fixed time t.
func (w TravelingWave) SampleSpace(xStart, xEnd float64, n int, t float64) (xs, ys []float64) {
	xs = core.Linspace(xStart, xEnd, n)
	ys = core.Map(xs, func(x float64) float64 { return w.Evaluate(x, t) })
	return xs, ys
}

// SampleTime records the wave over [tStart, tEnd] at fixed position x.
func (w TravelingWave) SampleTime(tStart, tEnd float64, n int, x float64) (ts, ys []float64) {
	ts = core.Linspace(tStart, tEnd, n)
	ys = core.Map(ts, func(t float64) float64 { return w.Evaluate(x, t) })
	return ts, ys
}
