package core

import (
	"math"
	"math/cmplx"
)

// Phasor is a complex amplitude in polar form: Magnitude·e^{j·Phase}.
//
// Invariants: Magnitude ≥ 0; Phase normalized to (−π, π].
// NewPhasor and FromComplex enforce both.
type Phasor struct {
	Magnitude float64
	Phase     float64
}

// NewPhasor builds a phasor, folding a negative magnitude into a π
// phase shift and normalizing the phase to (−π, π].
func NewPhasor(magnitude, phase float64) Phasor {
	if magnitude < 0 {
		magnitude = -magnitude
		phase += math.Pi
	}
	return Phasor{Magnitude: magnitude, Phase: NormalizeAngle(phase)}
}

// FromComplex converts a rectangular complex value to a phasor.
func FromComplex(z complex128) Phasor {
	return Phasor{Magnitude: cmplx.Abs(z), Phase: cmplx.Phase(z)}
}

// Complex converts the phasor to rectangular form.
func (p Phasor) Complex() complex128 {
	return cmplx.Rect(p.Magnitude, p.Phase)
}

// PhaseDeg reports the phase in degrees.
func (p Phasor) PhaseDeg() float64 { return p.Phase * 180.0 / math.Pi }

// Mul multiplies two phasors: magnitudes multiply, phases add.
func (p Phasor) Mul(q Phasor) Phasor {
	return NewPhasor(p.Magnitude*q.Magnitude, p.Phase+q.Phase)
}

// Add sums two phasors through rectangular form.
func (p Phasor) Add(q Phasor) Phasor {
	return FromComplex(p.Complex() + q.Complex())
}

// Scale multiplies the magnitude by a non-negative factor k; a negative
// k flips the phase by π, matching NewPhasor.
func (p Phasor) Scale(k float64) Phasor {
	return NewPhasor(p.Magnitude*k, p.Phase)
}

// NormalizeAngle maps any angle (rad) into (−π, π].
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta > math.Pi {
		theta -= 2.0 * math.Pi
	} else if theta <= -math.Pi {
		theta += 2.0 * math.Pi
	}
	return theta
}
