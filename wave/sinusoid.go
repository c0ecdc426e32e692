package wave

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// Sinusoid is a time-domain waveform A·e^{−αt}·cos(2πf·t + φ).
type Sinusoid struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	// Damping is the exponential decay rate (Np/s); zero for undamped.
	Damping float64
}

// NewSinusoid builds an undamped sinusoid.
func NewSinusoid(amplitude, frequency, phase float64) Sinusoid {
	return Sinusoid{Amplitude: amplitude, Frequency: frequency, Phase: phase}
}

// NewDampedSinusoid builds a sinusoid with an e^{−αt} envelope.
func NewDampedSinusoid(amplitude, frequency, phase, damping float64) Sinusoid {
	return Sinusoid{Amplitude: amplitude, Frequency: frequency, Phase: phase, Damping: damping}
}

// Evaluate returns y(t).
func (s Sinusoid) Evaluate(t float64) float64 {
	envelope := s.Amplitude
	if s.Damping != 0 {
		envelope *= math.Exp(-s.Damping * t)
	}
	return envelope * math.Cos(2.0*math.Pi*s.Frequency*t+s.Phase)
}

// Sample evaluates the waveform on n uniform samples of [tStart, tEnd].
func (s Sinusoid) Sample(tStart, tEnd float64, n int) (ts, ys []float64) {
	ts = core.Linspace(tStart, tEnd, n)
	ys = core.Map(ts, s.Evaluate)
	return ts, ys
}

// Period returns 1/f.
func (s Sinusoid) Period() float64 { return 1.0 / s.Frequency }

// Omega returns the angular frequency 2πf.
func (s Sinusoid) Omega() float64 { return 2.0 * math.Pi * s.Frequency }

// Wavelength returns v_p/f for a given phase velocity.
func (s Sinusoid) Wavelength(phaseVelocity float64) float64 {
	return phaseVelocity / s.Frequency
}

// Phasor converts the waveform to its phasor representation.
func (s Sinusoid) Phasor() core.Phasor {
	return core.NewPhasor(s.Amplitude, s.Phase)
}

// Superpose sums several sinusoids sample by sample over [tStart, tEnd].
func Superpose(waveforms []Sinusoid, tStart, tEnd float64, n int) (ts, ys []float64, err error) {
	if len(waveforms) == 0 {
		return nil, nil, ErrNoWaveforms
	}
	ts = core.Linspace(tStart, tEnd, n)
	ys = core.Map(ts, func(t float64) float64 {
		sum := 0.0
		for _, w := range waveforms {
			sum += w.Evaluate(t)
		}
		return sum
	})
	return ts, ys, nil
}

// PhasorSum adds two equal-frequency sinusoids in the phasor domain,
// returning the resultant waveform.
func PhasorSum(a, b Sinusoid) (Sinusoid, error) {
	if a.Frequency != b.Frequency {
		return Sinusoid{}, ErrFrequencyMismatch
	}
	sum := a.Phasor().Add(b.Phasor())
	return Sinusoid{
		Amplitude: sum.Magnitude,
		Frequency: a.Frequency,
		Phase:     sum.Phase,
	}, nil
}
