package mstat

import "errors"

var (
	// ErrBadGeometry indicates non-positive dimensions, an outer
	// radius at or inside the inner one, or a turn count below one.
	ErrBadGeometry = errors.New("mstat: geometry dimensions must be positive with outer > inner")

	// ErrBadDistance indicates a non-positive observation or
	// separation distance.
	ErrBadDistance = errors.New("mstat: distance must be positive")

	// ErrBadSegments indicates too few segments to discretize a
	// current path.
	ErrBadSegments = errors.New("mstat: segment count too small")

	// ErrBadInductance indicates a non-positive inductance value.
	ErrBadInductance = errors.New("mstat: inductance must be positive")

	// ErrNoInductors indicates a series or parallel combination over
	// an empty list.
	ErrNoInductors = errors.New("mstat: combination needs at least one inductor")
)
