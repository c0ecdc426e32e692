package core

import "math"

// Cartesian is a point (x, y, z) in meters.
type Cartesian struct {
	X, Y, Z float64
}

// Cylindrical is a point (ρ, φ, z): radial distance, azimuth (rad), height.
type Cylindrical struct {
	Rho, Phi, Z float64
}

// Spherical is a point (r, θ, φ): radius, polar angle from +z (rad),
// azimuth (rad).
type Spherical struct {
	R, Theta, Phi float64
}

// NewCartesian constructs a Cartesian point.
func NewCartesian(x, y, z float64) Cartesian { return Cartesian{X: x, Y: y, Z: z} }

// Vector returns the position vector from the origin.
func (c Cartesian) Vector() Vector3 { return Vector3{X: c.X, Y: c.Y, Z: c.Z} }

// ToCylindrical converts to cylindrical coordinates.
func (c Cartesian) ToCylindrical() Cylindrical {
	return Cylindrical{
		Rho: math.Hypot(c.X, c.Y),
		Phi: math.Atan2(c.Y, c.X),
		Z:   c.Z,
	}
}

// ToSpherical converts to spherical coordinates. The origin maps to
// (0, 0, 0).
func (c Cartesian) ToSpherical() Spherical {
	r := math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		R:     r,
		Theta: math.Acos(Clamp(c.Z/r, -1.0, 1.0)),
		Phi:   math.Atan2(c.Y, c.X),
	}
}

// ToCartesian converts cylindrical to Cartesian coordinates.
func (c Cylindrical) ToCartesian() Cartesian {
	return Cartesian{
		X: c.Rho * math.Cos(c.Phi),
		Y: c.Rho * math.Sin(c.Phi),
		Z: c.Z,
	}
}

// ToCartesian converts spherical to Cartesian coordinates.
func (s Spherical) ToCartesian() Cartesian {
	sinT := math.Sin(s.Theta)
	return Cartesian{
		X: s.R * sinT * math.Cos(s.Phi),
		Y: s.R * sinT * math.Sin(s.Phi),
		Z: s.R * math.Cos(s.Theta),
	}
}

// ToSpherical converts cylindrical to spherical coordinates.
func (c Cylindrical) ToSpherical() Spherical { return c.ToCartesian().ToSpherical() }

// ToCylindrical converts spherical to cylindrical coordinates.
func (s Spherical) ToCylindrical() Cylindrical { return s.ToCartesian().ToCylindrical() }

// Distance returns the Euclidean distance between two Cartesian points.
func (c Cartesian) Distance(o Cartesian) float64 {
	return c.Vector().Sub(o.Vector()).Norm()
}

// Midpoint returns the point halfway between c and o.
func (c Cartesian) Midpoint(o Cartesian) Cartesian {
	return Cartesian{X: (c.X + o.X) / 2.0, Y: (c.Y + o.Y) / 2.0, Z: (c.Z + o.Z) / 2.0}
}
