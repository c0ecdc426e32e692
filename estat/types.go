package estat

import "errors"

var (
	// ErrInsideSphere indicates an image-charge setup with the real
	// charge at or inside the sphere surface.
	ErrInsideSphere = errors.New("estat: charge must sit outside the sphere, d > a")

	// ErrBadGeometry indicates non-positive dimensions or an outer
	// conductor at or inside the inner one.
	ErrBadGeometry = errors.New("estat: geometry dimensions must be positive with outer > inner")

	// ErrBadDistance indicates a non-positive observation distance.
	ErrBadDistance = errors.New("estat: distance must be positive")

	// ErrNoCapacitors indicates a series or parallel combination over
	// an empty list.
	ErrNoCapacitors = errors.New("estat: combination needs at least one capacitor")
)
