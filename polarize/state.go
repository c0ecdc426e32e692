package polarize

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// classifyEps decides when amplitudes or angles count as degenerate.
const classifyEps = 1e-10

// State is a polarization state given by the two transverse amplitudes
// and their phase difference δ = φ_y − φ_x.
type State struct {
	Ax    float64
	Ay    float64
	Delta float64
}

// NewState validates and builds a state. Both amplitudes zero is
// ErrZeroAmplitude.
func NewState(ax, ay, delta float64) (State, error) {
	if ax == 0 && ay == 0 {
		return State{}, ErrZeroAmplitude
	}
	return State{Ax: ax, Ay: ay, Delta: delta}, nil
}

// LinearX is linear polarization along x.
func LinearX(amplitude float64) State {
	return State{Ax: amplitude}
}

// LinearY is linear polarization along y.
func LinearY(amplitude float64) State {
	return State{Ay: amplitude}
}

// LinearAtAngle is linear polarization tilted theta radians from x.
func LinearAtAngle(amplitude, theta float64) State {
	return State{Ax: amplitude * math.Cos(theta), Ay: amplitude * math.Sin(theta)}
}

// RHCP is right-hand circular polarization, δ = −π/2.
func RHCP(amplitude float64) State {
	return State{Ax: amplitude, Ay: amplitude, Delta: -math.Pi / 2.0}
}

// LHCP is left-hand circular polarization, δ = +π/2.
func LHCP(amplitude float64) State {
	return State{Ax: amplitude, Ay: amplitude, Delta: math.Pi / 2.0}
}

// Classify labels the state Linear, Circular, or Elliptical.
func (s State) Classify() Kind {
	if math.Abs(s.Ax) < classifyEps || math.Abs(s.Ay) < classifyEps {
		return Linear
	}
	delta := core.NormalizeAngle(s.Delta)
	if math.Abs(delta) < classifyEps || math.Abs(math.Abs(delta)-math.Pi) < classifyEps {
		return Linear
	}
	if math.Abs(s.Ax-s.Ay) < classifyEps*math.Abs(s.Ax) &&
		math.Abs(math.Abs(delta)-math.Pi/2.0) < classifyEps {
		return Circular
	}
	return Elliptical
}

// RotationSense returns the handedness, NoSense for linear states.
func (s State) RotationSense() Sense {
	if s.Classify() == Linear {
		return NoSense
	}
	if math.Sin(s.Delta) > 0 {
		return LeftHand
	}
	return RightHand
}

// SemiAxes returns the semi-major and semi-minor axes of the
// polarization ellipse.
func (s State) SemiAxes() (major, minor float64) {
	ax2 := s.Ax * s.Ax
	ay2 := s.Ay * s.Ay
	cosD := math.Cos(s.Delta)

	sum := ax2 + ay2
	disc := math.Sqrt((ax2-ay2)*(ax2-ay2) + 4.0*ax2*ay2*cosD*cosD)

	major = math.Sqrt((sum + disc) / 2.0)
	minor = math.Sqrt(math.Max(sum-disc, 0) / 2.0)
	return major, minor
}

// AxialRatio returns major/minor, None for linear states where the
// minor axis collapses.
func (s State) AxialRatio() core.Maybe {
	major, minor := s.SemiAxes()
	if minor < 1e-15 {
		return core.None()
	}
	return core.Some(major / minor)
}

// TiltAngle returns the ellipse orientation from the x axis,
// ½·atan2(2AₓAᵧcos δ, Aₓ²−Aᵧ²). Zero for circular states, where the
// tilt has no meaning.
func (s State) TiltAngle() float64 {
	ax2 := s.Ax * s.Ax
	ay2 := s.Ay * s.Ay
	if math.Abs(ax2-ay2) < 1e-15 && math.Abs(math.Cos(s.Delta)) < 1e-15 {
		return 0
	}
	return 0.5 * math.Atan2(2.0*s.Ax*s.Ay*math.Cos(s.Delta), ax2-ay2)
}

// StokesParameters returns (S₀, S₁, S₂, S₃).
func (s State) StokesParameters() Stokes {
	return Stokes{
		S0: s.Ax*s.Ax + s.Ay*s.Ay,
		S1: s.Ax*s.Ax - s.Ay*s.Ay,
		S2: 2.0 * s.Ax * s.Ay * math.Cos(s.Delta),
		S3: 2.0 * s.Ax * s.Ay * math.Sin(s.Delta),
	}
}

// PoincarePoint returns the Stokes vector normalized by S₀, the point
// on the Poincaré sphere. Zero vector for a zero-power state.
func (s State) PoincarePoint() core.Vector3 {
	st := s.StokesParameters()
	if math.Abs(st.S0) < 1e-15 {
		return core.Vector3{}
	}
	return core.Vector3{X: st.S1 / st.S0, Y: st.S2 / st.S0, Z: st.S3 / st.S0}
}

// TraceEllipse samples the field vector tip over one period at n
// phases, (Ex, Ey) pairs for plotting. n < 4 yields empty slices.
func (s State) TraceEllipse(n int) (xs, ys []float64) {
	if n < 4 {
		return []float64{}, []float64{}
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	dt := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		xs[i] = s.Ax * math.Cos(t)
		ys[i] = s.Ay * math.Cos(t+s.Delta)
	}
	return xs, ys
}
