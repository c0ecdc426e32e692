package estat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/field"
)

// singularR2 is the squared distance below which a charge contribution
// is skipped instead of diverging.
const singularR2 = 1e-30

// PointCharge is a charge in Coulombs at a position in meters.
type PointCharge struct {
	Position core.Vector3
	Charge   float64
}

// NewPointCharge places a charge at (x, y, z).
func NewPointCharge(x, y, z, charge float64) PointCharge {
	return PointCharge{Position: core.Vector3{X: x, Y: y, Z: z}, Charge: charge}
}

// FieldAt superposes Coulomb fields of all charges at the observation
// point, E = Σ qᵢ(r−rᵢ)/4πε|r−rᵢ|³. Contributions at the singularity
// are skipped.
func FieldAt(charges []PointCharge, point core.Vector3, epsilon float64) core.Vector3 {
	k := 1.0 / (4.0 * math.Pi * epsilon)
	var total core.Vector3
	for _, c := range charges {
		d := point.Sub(c.Position)
		r2 := d.Dot(d)
		if r2 < singularR2 {
			continue
		}
		total = total.Add(d.Scale(k * c.Charge / (r2 * math.Sqrt(r2))))
	}
	return total
}

// PotentialAt superposes Coulomb potentials, V = Σ qᵢ/4πε|r−rᵢ|.
func PotentialAt(charges []PointCharge, point core.Vector3, epsilon float64) float64 {
	k := 1.0 / (4.0 * math.Pi * epsilon)
	total := 0.0
	for _, c := range charges {
		r := point.Sub(c.Position).Norm()
		if r < 1e-15 {
			continue
		}
		total += k * c.Charge / r
	}
	return total
}

// SampleField maps E over an nx×ny grid in the z = 0 plane.
func SampleField(charges []PointCharge, epsilon, x0, x1, y0, y1 float64, nx, ny int) field.VectorGrid {
	return field.SampleVector(func(x, y, z float64) core.Vector3 {
		return FieldAt(charges, core.Vector3{X: x, Y: y, Z: z}, epsilon)
	}, x0, x1, y0, y1, 0, nx, ny)
}

// SamplePotential maps V over an nx×ny grid in the z = 0 plane.
func SamplePotential(charges []PointCharge, epsilon, x0, x1, y0, y1 float64, nx, ny int) field.ScalarGrid {
	return field.SampleScalar(func(x, y, z float64) float64 {
		return PotentialAt(charges, core.Vector3{X: x, Y: y, Z: z}, epsilon)
	}, x0, x1, y0, y1, 0, nx, ny)
}
