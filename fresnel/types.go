package fresnel

import "errors"

var (
	// ErrBadMedium indicates a non-positive relative permittivity.
	ErrBadMedium = errors.New("fresnel: relative permittivity must be positive")

	// ErrBadIncidence indicates an incidence angle outside [0, pi/2).
	ErrBadIncidence = errors.New("fresnel: incidence angle must lie in [0, pi/2)")
)

// AngleSweep carries Fresnel coefficient magnitudes versus incidence
// angle for plotting.
type AngleSweep struct {
	// Angles are the incidence angles in radians, spanning [0, π/2).
	Angles []float64
	// GammaPerp holds Γ⊥ per angle, 1 inside the TIR region.
	GammaPerp []float64
	// GammaPar holds Γ∥ per angle, 1 inside the TIR region.
	GammaPar []float64
}
