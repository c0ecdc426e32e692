package mstat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// CurrentLoop is a circular loop of radius Radius in the plane
// z = CenterZ, centered on the z-axis. Positive current circulates
// counterclockwise seen from +z.
type CurrentLoop struct {
	Radius  float64
	Current float64
	CenterZ float64
}

// NewCurrentLoop builds a loop centered at the origin.
func NewCurrentLoop(radius, current float64) (CurrentLoop, error) {
	return NewCurrentLoopAtZ(radius, current, 0)
}

// NewCurrentLoopAtZ builds a loop centered at z on the axis.
func NewCurrentLoopAtZ(radius, current, z float64) (CurrentLoop, error) {
	if radius <= 0 {
		return CurrentLoop{}, ErrBadGeometry
	}
	return CurrentLoop{Radius: radius, Current: current, CenterZ: z}, nil
}

// OnAxisField is the exact axial field at height z,
// B_z = μ₀Ia² / 2(a²+(z−z₀)²)^{3/2}.
func (l CurrentLoop) OnAxisField(z float64) float64 {
	dz := z - l.CenterZ
	a2 := l.Radius * l.Radius
	return core.Mu0 * l.Current * a2 / (2.0 * math.Pow(a2+dz*dz, 1.5))
}

// MagneticMoment is m = Iπa².
func (l CurrentLoop) MagneticMoment() float64 {
	return l.Current * math.Pi * l.Radius * l.Radius
}

// Discretize chops the loop into n chords for numerical Biot–Savart.
// At least three segments are required to close the polygon.
func (l CurrentLoop) Discretize(n int) ([]CurrentSegment, error) {
	if n < 3 {
		return nil, ErrBadSegments
	}
	dphi := 2.0 * math.Pi / float64(n)
	segments := make([]CurrentSegment, 0, n)
	for i := 0; i < n; i++ {
		phi0 := float64(i) * dphi
		phi1 := float64(i+1) * dphi
		segments = append(segments, CurrentSegment{
			Start:   core.Vector3{X: l.Radius * math.Cos(phi0), Y: l.Radius * math.Sin(phi0), Z: l.CenterZ},
			End:     core.Vector3{X: l.Radius * math.Cos(phi1), Y: l.Radius * math.Sin(phi1), Z: l.CenterZ},
			Current: l.Current,
		})
	}
	return segments, nil
}

// FieldAt evaluates B at an arbitrary point by summing n discrete
// Biot–Savart contributions around the loop.
func (l CurrentLoop) FieldAt(point core.Vector3, n int) (core.Vector3, error) {
	segments, err := l.Discretize(n)
	if err != nil {
		return core.Vector3{}, err
	}
	return TotalField(segments, point), nil
}

// HelmholtzPair is two identical coaxial loops separated by their
// common radius, which flattens the axial field around the midpoint.
type HelmholtzPair struct {
	Radius  float64
	Current float64
	Turns   int
}

// NewHelmholtzPair builds a pair of Turns-turn coils at z = ±R/2.
func NewHelmholtzPair(radius, current float64, turns int) (HelmholtzPair, error) {
	if radius <= 0 || turns < 1 {
		return HelmholtzPair{}, ErrBadGeometry
	}
	return HelmholtzPair{Radius: radius, Current: current, Turns: turns}, nil
}

// Separation is the coil spacing, equal to the radius by the
// Helmholtz condition.
func (h HelmholtzPair) Separation() float64 { return h.Radius }

func (h HelmholtzPair) coils() (CurrentLoop, CurrentLoop) {
	effective := float64(h.Turns) * h.Current
	lower := CurrentLoop{Radius: h.Radius, Current: effective, CenterZ: -h.Radius / 2.0}
	upper := CurrentLoop{Radius: h.Radius, Current: effective, CenterZ: +h.Radius / 2.0}
	return lower, upper
}

// OnAxisField is the axial field at height z from the midpoint,
// superposing both coils.
func (h HelmholtzPair) OnAxisField(z float64) float64 {
	lower, upper := h.coils()
	return lower.OnAxisField(z) + upper.OnAxisField(z)
}

// CenterField is the midpoint field, B = μ₀nI(4/5)^{3/2}/R.
func (h HelmholtzPair) CenterField() float64 {
	return h.OnAxisField(0)
}

// SampleOnAxis tabulates B(z) over [z0, z1] at n points.
func (h HelmholtzPair) SampleOnAxis(z0, z1 float64, n int) (zs, bs []float64) {
	zs = core.Linspace(z0, z1, n)
	bs = core.Map(zs, h.OnAxisField)
	return zs, bs
}

// Uniformity is the maximum relative deviation of B(z) from the
// center value over |z| ≤ fraction·R, scanned at n points. Zero means
// perfectly flat.
func (h HelmholtzPair) Uniformity(fraction float64, n int) float64 {
	b0 := h.CenterField()
	if b0 == 0 || n < 1 {
		return 0
	}
	span := fraction * h.Radius
	worst := 0.0
	for _, z := range core.Linspace(-span, span, n) {
		dev := math.Abs((h.OnAxisField(z) - b0) / b0)
		if dev > worst {
			worst = dev
		}
	}
	return worst
}
