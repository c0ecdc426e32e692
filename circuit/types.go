package circuit

import "errors"

var (
	// ErrBadTurns indicates a winding with fewer than one turn.
	ErrBadTurns = errors.New("circuit: turn count must be at least one")

	// ErrBadComponent indicates a non-positive resistance,
	// inductance, or capacitance.
	ErrBadComponent = errors.New("circuit: component values must be positive")

	// ErrBadGeometry indicates a non-positive area, separation, or
	// radius.
	ErrBadGeometry = errors.New("circuit: geometry dimensions must be positive")

	// ErrBadMaterial indicates non-positive material constants.
	ErrBadMaterial = errors.New("circuit: material constants must be positive")

	// ErrBadFrequency indicates a non-positive angular frequency.
	ErrBadFrequency = errors.New("circuit: angular frequency must be positive")
)

// DampingClass labels the transient regime of a second-order circuit.
type DampingClass int

const (
	Underdamped DampingClass = iota
	CriticallyDamped
	Overdamped
)

// String names the regime for display.
func (d DampingClass) String() string {
	switch d {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return "unknown"
	}
}
