package estat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// ChargeAbovePlane is a point charge held above a grounded conducting
// plane at y = 0. All derived quantities are valid in the y > 0
// half-space.
type ChargeAbovePlane struct {
	// Charge is the real charge in Coulombs.
	Charge float64
	// Height is the charge height above the plane, meters.
	Height float64
	// X and Z locate the charge within its horizontal plane.
	X float64
	Z float64
}

// NewChargeAbovePlane places a charge on the y axis at the given
// height.
func NewChargeAbovePlane(charge, height float64) (ChargeAbovePlane, error) {
	if height <= 0 {
		return ChargeAbovePlane{}, ErrBadGeometry
	}
	return ChargeAbovePlane{Charge: charge, Height: height}, nil
}

// RealCharge returns the physical charge.
func (p ChargeAbovePlane) RealCharge() PointCharge {
	return PointCharge{
		Position: core.Vector3{X: p.X, Y: p.Height, Z: p.Z},
		Charge:   p.Charge,
	}
}

// ImageCharge mirrors the charge through the plane with opposite sign.
func (p ChargeAbovePlane) ImageCharge() PointCharge {
	return PointCharge{
		Position: core.Vector3{X: p.X, Y: -p.Height, Z: p.Z},
		Charge:   -p.Charge,
	}
}

// ChargeSystem returns the real and image charges for superposition.
func (p ChargeAbovePlane) ChargeSystem() []PointCharge {
	return []PointCharge{p.RealCharge(), p.ImageCharge()}
}

// FieldAt evaluates E in the y > 0 half-space.
func (p ChargeAbovePlane) FieldAt(point core.Vector3) core.Vector3 {
	return FieldAt(p.ChargeSystem(), point, core.Epsilon0)
}

// PotentialAt evaluates V in the y > 0 half-space; it vanishes on the
// plane itself.
func (p ChargeAbovePlane) PotentialAt(point core.Vector3) float64 {
	return PotentialAt(p.ChargeSystem(), point, core.Epsilon0)
}

// SurfaceChargeDensity returns the induced density on the plane at
// (x, 0, z), σ = −qh/(2π(ρ²+h²)^{3/2}).
func (p ChargeAbovePlane) SurfaceChargeDensity(x, z float64) float64 {
	rho2 := (x-p.X)*(x-p.X) + (z-p.Z)*(z-p.Z)
	denom := math.Pow(rho2+p.Height*p.Height, 1.5)
	return -p.Charge * p.Height / (2.0 * math.Pi * denom)
}

// TotalInducedCharge is the closed-form integral of the induced
// density, always −q.
func (p ChargeAbovePlane) TotalInducedCharge() float64 {
	return -p.Charge
}

// ForceOnCharge returns the image force, q²/(4πε(2h)²) pulling the
// charge toward the plane.
func (p ChargeAbovePlane) ForceOnCharge() core.Vector3 {
	mag := p.Charge * p.Charge / (4.0 * math.Pi * core.Epsilon0 * (2.0 * p.Height) * (2.0 * p.Height))
	return core.Vector3{Y: -mag}
}

// ChargeNearSphere is a point charge outside a grounded conducting
// sphere centered at the origin. The real charge sits on the +x axis.
type ChargeNearSphere struct {
	Charge float64
	Radius float64
	// Distance is from the sphere center to the real charge, d > a.
	Distance float64
}

// NewChargeNearSphere validates d > a.
func NewChargeNearSphere(charge, radius, distance float64) (ChargeNearSphere, error) {
	if radius <= 0 {
		return ChargeNearSphere{}, ErrBadGeometry
	}
	if distance <= radius {
		return ChargeNearSphere{}, ErrInsideSphere
	}
	return ChargeNearSphere{Charge: charge, Radius: radius, Distance: distance}, nil
}

// ImageChargeValue returns q' = −qa/d.
func (s ChargeNearSphere) ImageChargeValue() float64 {
	return -s.Charge * s.Radius / s.Distance
}

// ImageDistance returns d' = a²/d, always inside the sphere.
func (s ChargeNearSphere) ImageDistance() float64 {
	return s.Radius * s.Radius / s.Distance
}

// ChargeSystem returns the real and image charges for superposition.
func (s ChargeNearSphere) ChargeSystem() []PointCharge {
	return []PointCharge{
		{Position: core.Vector3{X: s.Distance}, Charge: s.Charge},
		{Position: core.Vector3{X: s.ImageDistance()}, Charge: s.ImageChargeValue()},
	}
}

// FieldAt evaluates E outside the sphere.
func (s ChargeNearSphere) FieldAt(point core.Vector3) core.Vector3 {
	return FieldAt(s.ChargeSystem(), point, core.Epsilon0)
}

// PotentialAt evaluates V outside the sphere; it vanishes on the
// surface.
func (s ChargeNearSphere) PotentialAt(point core.Vector3) float64 {
	return PotentialAt(s.ChargeSystem(), point, core.Epsilon0)
}

// ForceOnCharge returns the signed radial force qq'/(4πε(d−d')²);
// negative means attraction toward the sphere.
func (s ChargeNearSphere) ForceOnCharge() float64 {
	sep := s.Distance - s.ImageDistance()
	return s.Charge * s.ImageChargeValue() / (4.0 * math.Pi * core.Epsilon0 * sep * sep)
}
