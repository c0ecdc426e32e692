package estat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// LineChargeField returns E = λ/(2περ) around an infinite line charge.
func LineChargeField(lineDensity, rho, epsilonR float64) (float64, error) {
	if rho <= 0 {
		return 0, ErrBadDistance
	}
	return lineDensity / (2.0 * math.Pi * core.Epsilon0 * epsilonR * rho), nil
}

// SheetChargeField returns E = ρ_s/(2ε) on either side of an infinite
// charged sheet.
func SheetChargeField(surfaceDensity, epsilonR float64) float64 {
	return surfaceDensity / (2.0 * core.Epsilon0 * epsilonR)
}

// ChargedSphereField returns E(r) of a uniformly charged sphere:
// Qr/(4περR³) inside, Q/(4περr²) outside.
func ChargedSphereField(totalCharge, radius, r, epsilonR float64) (float64, error) {
	if radius <= 0 || r < 0 {
		return 0, ErrBadGeometry
	}
	eps := core.Epsilon0 * epsilonR
	if r < radius {
		return totalCharge * r / (4.0 * math.Pi * eps * radius * radius * radius), nil
	}
	return totalCharge / (4.0 * math.Pi * eps * r * r), nil
}

// ChargedSpherePotential returns V(r): Q(3R²−r²)/(8περR³) inside,
// Q/(4περr) outside.
func ChargedSpherePotential(totalCharge, radius, r, epsilonR float64) (float64, error) {
	if radius <= 0 || r < 0 {
		return 0, ErrBadGeometry
	}
	eps := core.Epsilon0 * epsilonR
	if r < radius {
		return totalCharge * (3.0*radius*radius - r*r) / (8.0 * math.Pi * eps * radius * radius * radius), nil
	}
	return totalCharge / (4.0 * math.Pi * eps * r), nil
}

// CoaxialField returns E(r) between coaxial cylinders carrying equal
// and opposite line charge: λ/(2περ r) for a < r < b, zero elsewhere.
func CoaxialField(lineDensity, innerR, outerR, r, epsilonR float64) (float64, error) {
	if innerR <= 0 || outerR <= innerR {
		return 0, ErrBadGeometry
	}
	if r < innerR || r > outerR {
		return 0, nil
	}
	return lineDensity / (2.0 * math.Pi * core.Epsilon0 * epsilonR * r), nil
}

// SphereFieldProfile samples E(r) of a charged sphere over (0, rMax].
// The sample grid starts just off zero to stay finite at the center.
func SphereFieldProfile(totalCharge, radius, epsilonR, rMax float64, n int) (rs, es []float64, err error) {
	if radius <= 0 || rMax <= 0 {
		return nil, nil, ErrBadGeometry
	}
	rs = core.Linspace(rMax*1e-3, rMax, n)
	es = make([]float64, 0, len(rs))
	for _, r := range rs {
		e, ferr := ChargedSphereField(totalCharge, radius, r, epsilonR)
		if ferr != nil {
			return nil, nil, ferr
		}
		es = append(es, e)
	}
	return rs, es, nil
}
