// Package tline defines option types and sentinel errors for the
// transmission-line solver.
package tline

import (
	"errors"

	"github.com/katalvlaran/emfield/core"
)

var (
	// ErrBadImpedance indicates a characteristic impedance that is not a
	// positive finite real number.
	ErrBadImpedance = errors.New("tline: characteristic impedance must be positive and finite")

	// ErrComplexLoad indicates a quarter-wave design attempt on a load
	// with a reactive part; the transformer is defined for real loads only.
	ErrComplexLoad = errors.New("tline: quarter-wave transformer requires a purely resistive load")

	// ErrFullReflection indicates |Γ| ≥ 1; no passive matching solution exists.
	ErrFullReflection = errors.New("tline: load is fully reflective, no matching solution")

	// ErrBadGeometry indicates non-physical conductor geometry, such as an
	// outer radius not larger than the inner radius.
	ErrBadGeometry = errors.New("tline: conductor geometry is non-physical")

	// ErrBadFrequency indicates a zero or negative frequency.
	ErrBadFrequency = errors.New("tline: frequency must be positive")

	// ErrZeroReactance indicates a constant-reactance circle request for
	// x = 0, which degenerates to the real axis rather than a circle.
	ErrZeroReactance = errors.New("tline: constant-reactance circle undefined for x = 0")

	// ErrBadSections indicates a multisection transformer with no sections.
	ErrBadSections = errors.New("tline: transformer needs at least one section")
)

// StubKind selects the termination of the matching stub.
type StubKind int

const (
	// ShortStub is a short-circuit terminated stub.
	ShortStub StubKind = iota
	// OpenStub is an open-circuit terminated stub.
	OpenStub
)

// StubSolution is one of the two placements of a single matching stub.
//
// Distance is measured from the load toward the generator; Length is
// the stub's own length. Both are normalized into [0, λ/2) and also
// reported in wavelengths.
type StubSolution struct {
	Distance            float64
	Length              float64
	DistanceWavelengths float64
	LengthWavelengths   float64
	Kind                StubKind
}

// MatchReport bundles the reflection metrics of one load against one
// characteristic impedance.
//
// ReturnLossDB is undefined for a perfectly matched load (|Γ| = 0),
// where the return loss is infinite.
type MatchReport struct {
	Gamma          complex128
	GammaMagnitude float64
	GammaPhase     float64
	VSWR           float64
	ReturnLossDB   core.Maybe
	MismatchLossDB float64
	// Delivered is the fraction of incident power absorbed by the load.
	Delivered float64
}

// Circle is a circle in the Γ-plane (Smith chart), used for constant
// resistance and constant reactance loci.
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}
