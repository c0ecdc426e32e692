package polarize

import "errors"

// ErrZeroAmplitude indicates a wave with no transverse field at all.
var ErrZeroAmplitude = errors.New("polarize: at least one component amplitude must be non-zero")

// Kind classifies a polarization state.
type Kind int

const (
	// Linear traces a line: one component vanishes or δ is 0 or ±π.
	Linear Kind = iota
	// Circular traces a circle: equal amplitudes with δ = ±π/2.
	Circular
	// Elliptical covers everything else.
	Elliptical
)

// String names the kind for report labels.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	default:
		return "elliptical"
	}
}

// Sense is the rotation handedness of the field vector.
type Sense int

const (
	// NoSense applies to linear states, which do not rotate.
	NoSense Sense = iota
	// LeftHand rotation, sin δ > 0.
	LeftHand
	// RightHand rotation, sin δ < 0.
	RightHand
)

// String names the sense for report labels.
func (s Sense) String() string {
	switch s {
	case LeftHand:
		return "left-hand"
	case RightHand:
		return "right-hand"
	default:
		return "none"
	}
}

// Stokes bundles the four Stokes parameters of a fully polarized wave.
type Stokes struct {
	S0 float64
	S1 float64
	S2 float64
	S3 float64
}
