package mstat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/field"
)

// singularR is the distance below which a segment contribution is
// dropped instead of diverging.
const singularR = 1e-15

// CurrentSegment is a straight piece of a current path from Start to
// End, carrying Current amperes in the Start→End direction.
type CurrentSegment struct {
	Start   core.Vector3
	End     core.Vector3
	Current float64
}

// NewCurrentSegment builds a segment between two points.
func NewCurrentSegment(start, end core.Vector3, current float64) CurrentSegment {
	return CurrentSegment{Start: start, End: end, Current: current}
}

// Dl is the directed length element from Start to End.
func (s CurrentSegment) Dl() core.Vector3 {
	return s.End.Sub(s.Start)
}

// Midpoint is the segment center, where the midpoint rule evaluates
// the Biot–Savart integrand.
func (s CurrentSegment) Midpoint() core.Vector3 {
	return s.Start.Add(s.End).Scale(0.5)
}

// SegmentField is one midpoint-rule term of the Biot–Savart integral,
// dB = μ₀I (dl × r) / 4π|r|³ with r from the segment midpoint to the
// observation point. Points at the segment itself yield zero.
func SegmentField(s CurrentSegment, point core.Vector3) core.Vector3 {
	r := point.Sub(s.Midpoint())
	rMag := r.Norm()
	if rMag < singularR {
		return core.Vector3{}
	}
	factor := core.Mu0 * s.Current / (4.0 * math.Pi * rMag * rMag * rMag)
	return s.Dl().Cross(r).Scale(factor)
}

// TotalField superposes the segment contributions at the observation
// point.
func TotalField(segments []CurrentSegment, point core.Vector3) core.Vector3 {
	var total core.Vector3
	for _, s := range segments {
		total = total.Add(SegmentField(s, point))
	}
	return total
}

// InfiniteWireField is the Ampère's-law field of an infinite straight
// wire at perpendicular distance rho, B = μ₀I/2πρ. Direction follows
// the right-hand rule around the wire.
func InfiniteWireField(current, rho float64) (float64, error) {
	if rho <= 0 {
		return 0, ErrBadDistance
	}
	return core.Mu0 * current / (2.0 * math.Pi * rho), nil
}

// DiscretizeWireZ chops a wire on the z-axis spanning ±halfLength
// into n contiguous segments for numerical Biot–Savart.
func DiscretizeWireZ(current, halfLength float64, n int) ([]CurrentSegment, error) {
	if halfLength <= 0 {
		return nil, ErrBadGeometry
	}
	if n < 1 {
		return nil, ErrBadSegments
	}
	dz := 2.0 * halfLength / float64(n)
	segments := make([]CurrentSegment, 0, n)
	for i := 0; i < n; i++ {
		z0 := -halfLength + float64(i)*dz
		segments = append(segments, CurrentSegment{
			Start:   core.Vector3{Z: z0},
			End:     core.Vector3{Z: z0 + dz},
			Current: current,
		})
	}
	return segments, nil
}

// SampleFieldMagnitude maps |B| of a segment set over an nx×ny grid
// in the plane of constant z.
func SampleFieldMagnitude(segments []CurrentSegment, x0, x1, y0, y1, z float64, nx, ny int) field.ScalarGrid {
	return field.SampleScalar(func(x, y, z float64) float64 {
		return TotalField(segments, core.Vector3{X: x, Y: y, Z: z}).Norm()
	}, x0, x1, y0, y1, z, nx, ny)
}

// SampleField maps the B vector of a segment set over an nx×ny grid
// in the plane of constant z.
func SampleField(segments []CurrentSegment, x0, x1, y0, y1, z float64, nx, ny int) field.VectorGrid {
	return field.SampleVector(func(x, y, z float64) core.Vector3 {
		return TotalField(segments, core.Vector3{X: x, Y: y, Z: z})
	}, x0, x1, y0, y1, z, nx, ny)
}
