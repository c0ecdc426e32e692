package mstat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// Solenoid is a tightly wound coil of Turns turns over Length meters
// on a core of relative permeability MuR.
type Solenoid struct {
	Turns   int
	Length  float64
	Current float64
	Radius  float64
	MuR     float64
}

// NewSolenoid builds an air-core solenoid.
func NewSolenoid(turns int, length, current, radius float64) (Solenoid, error) {
	if turns < 1 || length <= 0 || radius <= 0 {
		return Solenoid{}, ErrBadGeometry
	}
	return Solenoid{Turns: turns, Length: length, Current: current, Radius: radius, MuR: 1.0}, nil
}

// WithCore returns a copy wound on a core of relative permeability
// muR.
func (s Solenoid) WithCore(muR float64) Solenoid {
	s.MuR = muR
	return s
}

// TurnsPerLength is n = N/l.
func (s Solenoid) TurnsPerLength() float64 {
	return float64(s.Turns) / s.Length
}

// InteriorField is the ideal uniform interior field B = μ₀μᵣnI.
func (s Solenoid) InteriorField() float64 {
	return core.Mu0 * s.MuR * s.TurnsPerLength() * s.Current
}

// OnAxisField is the finite-solenoid axial field at height z from
// the center, B(z) = ½μ₀μᵣnI(cosθ₁ − cosθ₂) with θ₁, θ₂ the angles
// subtended by the two ends.
func (s Solenoid) OnAxisField(z float64) float64 {
	half := s.Length / 2.0
	z1 := z + half
	z2 := z - half
	cos1 := z1 / math.Sqrt(z1*z1+s.Radius*s.Radius)
	cos2 := z2 / math.Sqrt(z2*z2+s.Radius*s.Radius)
	return core.Mu0 * s.MuR * s.TurnsPerLength() * s.Current * (cos1 - cos2) / 2.0
}

// Inductance is L = μ₀μᵣN²A/l with A = πr².
func (s Solenoid) Inductance() float64 {
	area := math.Pi * s.Radius * s.Radius
	n := float64(s.Turns)
	return core.Mu0 * s.MuR * n * n * area / s.Length
}

// StoredEnergy is W = ½LI².
func (s Solenoid) StoredEnergy() float64 {
	return 0.5 * s.Inductance() * s.Current * s.Current
}

// EnergyDensity is the interior field energy density u = B²/2μ₀μᵣ.
func (s Solenoid) EnergyDensity() float64 {
	b := s.InteriorField()
	return b * b / (2.0 * core.Mu0 * s.MuR)
}

// Toroid is a donut-shaped coil of Turns turns between InnerRadius
// and OuterRadius with a square cross-section of side b−a.
type Toroid struct {
	Turns       int
	InnerRadius float64
	OuterRadius float64
	Current     float64
	MuR         float64
}

// NewToroid builds an air-core toroid.
func NewToroid(turns int, innerRadius, outerRadius, current float64) (Toroid, error) {
	if turns < 1 || innerRadius <= 0 || outerRadius <= innerRadius {
		return Toroid{}, ErrBadGeometry
	}
	return Toroid{Turns: turns, InnerRadius: innerRadius, OuterRadius: outerRadius, Current: current, MuR: 1.0}, nil
}

// WithCore returns a copy wound on a core of relative permeability
// muR.
func (t Toroid) WithCore(muR float64) Toroid {
	t.MuR = muR
	return t
}

// MeanRadius is (a+b)/2.
func (t Toroid) MeanRadius() float64 {
	return (t.InnerRadius + t.OuterRadius) / 2.0
}

// FieldAtRadius is the circulating field at radius r from the torus
// axis, B = μ₀μᵣNI/2πr inside the winding and zero outside.
func (t Toroid) FieldAtRadius(r float64) float64 {
	if r < t.InnerRadius || r > t.OuterRadius {
		return 0
	}
	return core.Mu0 * t.MuR * float64(t.Turns) * t.Current / (2.0 * math.Pi * r)
}

// MeanField is the field at the mean radius.
func (t Toroid) MeanField() float64 {
	return t.FieldAtRadius(t.MeanRadius())
}

// Inductance is L = μ₀μᵣN²h·ln(b/a)/2π for the square cross-section
// with h = b−a.
func (t Toroid) Inductance() float64 {
	h := t.OuterRadius - t.InnerRadius
	n := float64(t.Turns)
	return core.Mu0 * t.MuR * n * n * h * math.Log(t.OuterRadius/t.InnerRadius) / (2.0 * math.Pi)
}

// CoaxialLine carries Current down a solid inner conductor of radius
// InnerRadius and back through a shield spanning ShieldInner to
// ShieldOuter.
type CoaxialLine struct {
	InnerRadius float64
	ShieldInner float64
	ShieldOuter float64
	Current     float64
}

// NewCoaxialLine builds a coaxial line; radii must satisfy
// 0 < a < b < c.
func NewCoaxialLine(innerRadius, shieldInner, shieldOuter, current float64) (CoaxialLine, error) {
	if innerRadius <= 0 || shieldInner <= innerRadius || shieldOuter <= shieldInner {
		return CoaxialLine{}, ErrBadGeometry
	}
	return CoaxialLine{InnerRadius: innerRadius, ShieldInner: shieldInner, ShieldOuter: shieldOuter, Current: current}, nil
}

// FieldAtRadius is the Ampère's-law field magnitude at radius r:
// linear rise inside the inner conductor, 1/r decay in the
// dielectric, ramp-down through the shield, zero beyond it.
func (c CoaxialLine) FieldAtRadius(r float64) float64 {
	a, b, cc := c.InnerRadius, c.ShieldInner, c.ShieldOuter
	switch {
	case r < 0:
		return 0
	case r <= a:
		return core.Mu0 * c.Current * r / (2.0 * math.Pi * a * a)
	case r <= b:
		return core.Mu0 * c.Current / (2.0 * math.Pi * r)
	case r <= cc:
		enclosed := c.Current * (1.0 - (r*r-b*b)/(cc*cc-b*b))
		return core.Mu0 * enclosed / (2.0 * math.Pi * r)
	default:
		return 0
	}
}

// InductancePerLength is the external inductance per meter,
// L' = μ₀·ln(b/a)/2π.
func (c CoaxialLine) InductancePerLength() float64 {
	return core.Mu0 * math.Log(c.ShieldInner/c.InnerRadius) / (2.0 * math.Pi)
}

// SampleFieldProfile tabulates B(r) over [0, rMax] at n points.
func (c CoaxialLine) SampleFieldProfile(rMax float64, n int) (rs, bs []float64) {
	rs = core.Linspace(0, rMax, n)
	bs = core.Map(rs, c.FieldAtRadius)
	return rs, bs
}
