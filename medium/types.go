package medium

import "errors"

var (
	// ErrBadMedium indicates non-physical material parameters.
	ErrBadMedium = errors.New("medium: permittivity and permeability must be positive, conductivity non-negative")

	// ErrBadFrequency indicates a zero or negative frequency.
	ErrBadFrequency = errors.New("medium: frequency must be positive")
)

// Loss-tangent limits separating the propagation regimes.
const (
	// LowLossThreshold bounds tan δ below which a medium counts as
	// low-loss (σ << ωε).
	LowLossThreshold = 0.01

	// GoodConductorThreshold bounds tan δ above which a medium counts
	// as a good conductor (σ >> ωε).
	GoodConductorThreshold = 100.0
)

// LossClass labels the propagation regime of a medium at one frequency.
type LossClass int

const (
	// Lossless means σ = 0 exactly.
	Lossless LossClass = iota
	// LowLoss means 0 < tan δ < LowLossThreshold.
	LowLoss
	// Lossy covers the intermediate regime.
	Lossy
	// GoodConductor means tan δ > GoodConductorThreshold.
	GoodConductor
)

// String names the regime for report labels.
func (c LossClass) String() string {
	switch c {
	case Lossless:
		return "lossless"
	case LowLoss:
		return "low-loss"
	case GoodConductor:
		return "good conductor"
	default:
		return "lossy"
	}
}
