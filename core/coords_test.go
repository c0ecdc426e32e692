package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/emfield/core"
	"github.com/stretchr/testify/assert"
)

// TestCartesian_CylindricalRoundTrip verifies that a point survives the
// Cartesian→cylindrical→Cartesian conversion.
func TestCartesian_CylindricalRoundTrip(t *testing.T) {
	p := core.NewCartesian(1.0, 2.0, -3.0)
	q := p.ToCylindrical().ToCartesian()
	assert.InDelta(t, p.X, q.X, 1e-12, "x round-trips")
	assert.InDelta(t, p.Y, q.Y, 1e-12, "y round-trips")
	assert.InDelta(t, p.Z, q.Z, 1e-12, "z round-trips")
}

// TestCartesian_SphericalRoundTrip verifies the spherical round trip.
func TestCartesian_SphericalRoundTrip(t *testing.T) {
	p := core.NewCartesian(-1.5, 0.5, 2.0)
	q := p.ToSpherical().ToCartesian()
	assert.InDelta(t, p.X, q.X, 1e-12, "x round-trips")
	assert.InDelta(t, p.Y, q.Y, 1e-12, "y round-trips")
	assert.InDelta(t, p.Z, q.Z, 1e-12, "z round-trips")
}

// TestCartesian_SphericalAxis checks the polar angle on the ±z axis.
func TestCartesian_SphericalAxis(t *testing.T) {
	up := core.NewCartesian(0, 0, 2).ToSpherical()
	assert.InDelta(t, 0.0, up.Theta, 1e-12, "+z axis has θ=0")

	down := core.NewCartesian(0, 0, -2).ToSpherical()
	assert.InDelta(t, math.Pi, down.Theta, 1e-12, "−z axis has θ=π")
}

// TestCartesian_OriginSpherical verifies the origin maps to all zeros
// rather than NaN.
func TestCartesian_OriginSpherical(t *testing.T) {
	s := core.NewCartesian(0, 0, 0).ToSpherical()
	assert.Equal(t, core.Spherical{}, s, "origin maps to zero spherical point")
}

// TestVector3_CrossRightHanded verifies x̂ × ŷ = ẑ.
func TestVector3_CrossRightHanded(t *testing.T) {
	x := core.NewVector3(1, 0, 0)
	y := core.NewVector3(0, 1, 0)
	z := x.Cross(y)
	assert.Equal(t, core.NewVector3(0, 0, 1), z, "x̂ × ŷ = ẑ")
}

// TestVector3_UnitZero checks that normalizing the zero vector yields
// the zero vector, not NaN components.
func TestVector3_UnitZero(t *testing.T) {
	u := core.ZeroVector3().Unit()
	assert.Equal(t, core.ZeroVector3(), u, "zero vector normalizes to itself")
}
