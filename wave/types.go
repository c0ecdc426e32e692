// Package wave defines waveform parameter types and sentinel errors.
package wave

import "errors"

var (
	// ErrNoWaveforms indicates a superposition over an empty set.
	ErrNoWaveforms = errors.New("wave: superposition needs at least one waveform")

	// ErrBadFrequency indicates a zero or negative frequency.
	ErrBadFrequency = errors.New("wave: frequency must be positive")

	// ErrFrequencyMismatch indicates a phasor operation across two
	// different frequencies, where phasor algebra is meaningless.
	ErrFrequencyMismatch = errors.New("wave: phasor sum requires equal frequencies")

	// ErrBadImpedance indicates a non-positive wave impedance.
	ErrBadImpedance = errors.New("wave: impedance must be positive and finite")

	// ErrBadDistance indicates a non-positive range or radius.
	ErrBadDistance = errors.New("wave: distance must be positive")

	// ErrBadPower indicates a negative power or power density.
	ErrBadPower = errors.New("wave: power must be non-negative")
)

// Direction selects the propagation sense of a traveling wave.
type Direction int

const (
	// PositiveX propagates toward +x.
	PositiveX Direction = iota
	// NegativeX propagates toward −x.
	NegativeX
)

// PhaseRelation classifies the lead/lag relationship of two waveforms.
type PhaseRelation int

const (
	// InPhase means the phase difference is zero.
	InPhase PhaseRelation = iota
	// AntiPhase means the waveforms are 180° apart.
	AntiPhase
	// Leading means the first waveform peaks earlier.
	Leading
	// Lagging means the first waveform peaks later.
	Lagging
)

// String names the relation for qualitative UI labels.
func (r PhaseRelation) String() string {
	switch r {
	case InPhase:
		return "in-phase"
	case AntiPhase:
		return "anti-phase"
	case Leading:
		return "leading"
	default:
		return "lagging"
	}
}
