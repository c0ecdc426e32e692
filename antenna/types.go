package antenna

import "errors"

var (
	// ErrBadFrequency indicates a non-positive operating frequency.
	ErrBadFrequency = errors.New("antenna: frequency must be positive")

	// ErrBadGeometry indicates a non-positive length or element
	// spacing.
	ErrBadGeometry = errors.New("antenna: dimensions must be positive")

	// ErrTooFewElements indicates an array with fewer than two
	// elements.
	ErrTooFewElements = errors.New("antenna: array needs at least two elements")

	// ErrBadLink indicates a non-positive power, frequency, or
	// distance in a link budget.
	ErrBadLink = errors.New("antenna: link parameters must be positive")
)
