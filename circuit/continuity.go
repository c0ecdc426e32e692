package circuit

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// RelaxingCharge is a uniformly charged sphere whose free charge
// bleeds to the surface as ρ(t) = ρ₀e^{−t/τ} with the dielectric
// relaxation time τ = ε/σ.
type RelaxingCharge struct {
	Rho0   float64
	Tau    float64
	Radius float64
}

// NewRelaxingCharge builds the sphere from an explicit relaxation
// time.
func NewRelaxingCharge(rho0, tau, radius float64) (RelaxingCharge, error) {
	if tau <= 0 {
		return RelaxingCharge{}, ErrBadMaterial
	}
	if radius <= 0 {
		return RelaxingCharge{}, ErrBadGeometry
	}
	return RelaxingCharge{Rho0: rho0, Tau: tau, Radius: radius}, nil
}

// NewRelaxingChargeFromMaterial derives τ = ε₀εᵣ/σ from the material
// constants.
func NewRelaxingChargeFromMaterial(rho0, epsilonR, conductivity, radius float64) (RelaxingCharge, error) {
	if epsilonR <= 0 || conductivity <= 0 {
		return RelaxingCharge{}, ErrBadMaterial
	}
	return NewRelaxingCharge(rho0, core.Epsilon0*epsilonR/conductivity, radius)
}

// DensityAt is ρ(t).
func (r RelaxingCharge) DensityAt(t float64) float64 {
	return r.Rho0 * math.Exp(-t/r.Tau)
}

func (r RelaxingCharge) volume() float64 {
	return 4.0 / 3.0 * math.Pi * r.Radius * r.Radius * r.Radius
}

// TotalChargeAt is Q(t) = ρ(t)·(4/3)πR³.
func (r RelaxingCharge) TotalChargeAt(t float64) float64 {
	return r.DensityAt(t) * r.volume()
}

// SurfaceCurrentDensity is the outward J_r at the surface demanded by
// continuity, ρ₀Re^{−t/τ}/3τ.
func (r RelaxingCharge) SurfaceCurrentDensity(t float64) float64 {
	return r.Rho0 * r.Radius * math.Exp(-t/r.Tau) / (3.0 * r.Tau)
}

// TotalCurrentOut is the current leaving the sphere, J_r·4πR².
func (r RelaxingCharge) TotalCurrentOut(t float64) float64 {
	return r.SurfaceCurrentDensity(t) * 4.0 * math.Pi * r.Radius * r.Radius
}

// ChargeDecayRate is −dQ/dt, which continuity demands equal the
// outward current.
func (r RelaxingCharge) ChargeDecayRate(t float64) float64 {
	return r.Rho0 * r.volume() * math.Exp(-t/r.Tau) / r.Tau
}

// Sample tabulates charge and outward current over [0, tEnd] at n
// points.
func (r RelaxingCharge) Sample(tEnd float64, n int) (ts, qs, is []float64) {
	ts = core.Linspace(0, tEnd, n)
	qs = core.Map(ts, r.TotalChargeAt)
	is = core.Map(ts, r.TotalCurrentOut)
	return ts, qs, is
}
