package waveguide

import "errors"

var (
	// ErrBadGeometry indicates impossible guide dimensions.
	ErrBadGeometry = errors.New("waveguide: dimensions must be positive with a >= b")

	// ErrBadFrequency indicates a zero or negative frequency.
	ErrBadFrequency = errors.New("waveguide: frequency must be positive")

	// ErrBadMedium indicates a non-physical filling material.
	ErrBadMedium = errors.New("waveguide: relative permittivity and permeability must be positive")

	// ErrBadMode indicates mode indices outside the family definition.
	ErrBadMode = errors.New("waveguide: invalid mode indices for this mode family")
)

// ModeFamily separates transverse-electric from transverse-magnetic
// modes.
type ModeFamily int

const (
	// TE modes carry no longitudinal E component.
	TE ModeFamily = iota
	// TM modes carry no longitudinal H component.
	TM
)

// String names the family for mode labels.
func (f ModeFamily) String() string {
	if f == TM {
		return "TM"
	}
	return "TE"
}

// Mode describes one rectangular-guide mode at a specific frequency.
type Mode struct {
	Family ModeFamily
	M      int
	N      int

	// CutoffFrequency is f_c in Hz; the mode propagates above it.
	CutoffFrequency float64
	// CutoffWavelength is v/f_c.
	CutoffWavelength float64
	// Propagates reports f > f_c.
	Propagates bool

	// Beta is the propagation constant (rad/m), 0 if evanescent.
	Beta float64
	// GuideWavelength is λ_g, +Inf if evanescent.
	GuideWavelength float64
	// PhaseVelocity is v_p, +Inf if evanescent.
	PhaseVelocity float64
	// GroupVelocity is v_g, 0 if evanescent.
	GroupVelocity float64
	// WaveImpedance is Z_TE or Z_TM, 0 if evanescent.
	WaveImpedance float64
}
