package estat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/estat"
)

// TestLineChargeField checks lambda/(2 pi eps rho) and the distance
// guard.
func TestLineChargeField(t *testing.T) {
	e, err := estat.LineChargeField(1e-9, 0.1, 1.0)
	require.NoError(t, err, "positive distance is valid")
	expected := 1e-9 / (2.0 * math.Pi * core.Epsilon0 * 0.1)
	assert.InDelta(t, expected, e, expected*1e-10, "infinite line field")

	_, err = estat.LineChargeField(1e-9, 0.0, 1.0)
	assert.ErrorIs(t, err, estat.ErrBadDistance, "rho=0 is invalid")
}

// TestSheetChargeField checks rho_s/(2 eps).
func TestSheetChargeField(t *testing.T) {
	e := estat.SheetChargeField(1e-6, 1.0)
	expected := 1e-6 / (2.0 * core.Epsilon0)
	assert.InDelta(t, expected, e, expected*1e-10, "sheet field is distance-independent")
}

// TestChargedSphereField checks the interior ramp, surface maximum,
// and exterior inverse-square decay.
func TestChargedSphereField(t *testing.T) {
	q, radius := 1e-6, 0.1

	surface, err := estat.ChargedSphereField(q, radius, radius, 1.0)
	require.NoError(t, err, "valid geometry")
	expected := q / (4.0 * math.Pi * core.Epsilon0 * radius * radius)
	assert.InDelta(t, expected, surface, expected*1e-10, "surface field")

	half, err := estat.ChargedSphereField(q, radius, radius/2.0, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.InDelta(t, surface/2.0, half, surface*1e-10, "interior ramps linearly")

	center, err := estat.ChargedSphereField(q, radius, 0.0, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.Zero(t, center, "field vanishes at the center")

	double, err := estat.ChargedSphereField(q, radius, 2.0*radius, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.InDelta(t, surface/4.0, double, surface*1e-10, "exterior falls as 1/r^2")
}

// TestChargedSpherePotential is continuous across the surface.
func TestChargedSpherePotential(t *testing.T) {
	q, radius := 1e-6, 0.1
	vIn, err := estat.ChargedSpherePotential(q, radius, radius-1e-10, 1.0)
	require.NoError(t, err, "valid geometry")
	vOut, err := estat.ChargedSpherePotential(q, radius, radius+1e-10, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.InDelta(t, vOut, vIn, vIn*1e-6, "potential continuous at the surface")

	vCenter, err := estat.ChargedSpherePotential(q, radius, 0.0, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.InDelta(t, 1.5*vOut, vCenter, vOut*1e-6, "center potential is 3/2 the surface value")
}

// TestCoaxialField is non-zero only between the conductors.
func TestCoaxialField(t *testing.T) {
	between, err := estat.CoaxialField(1e-9, 0.01, 0.05, 0.03, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.Greater(t, between, 0.0, "field exists between conductors")

	outside, err := estat.CoaxialField(1e-9, 0.01, 0.05, 0.06, 1.0)
	require.NoError(t, err, "valid geometry")
	assert.Zero(t, outside, "shield cancels the exterior field")

	_, err = estat.CoaxialField(1e-9, 0.05, 0.01, 0.03, 1.0)
	assert.ErrorIs(t, err, estat.ErrBadGeometry, "outer <= inner is invalid")
}

// TestSphereFieldProfile peaks at the sphere surface.
func TestSphereFieldProfile(t *testing.T) {
	rs, es, err := estat.SphereFieldProfile(1e-6, 0.1, 1.0, 0.3, 100)
	require.NoError(t, err, "valid profile")
	require.Len(t, rs, 100, "100 radii")
	require.Len(t, es, 100, "100 samples")

	maxIdx := 0
	for i, e := range es {
		if e > es[maxIdx] {
			maxIdx = i
		}
	}
	assert.InDelta(t, 0.1, rs[maxIdx], 0.01, "field peaks near the surface")

	assert.Greater(t, rs[0], 0.0, "grid starts off the singular center")
	assert.InDelta(t, 0.3, rs[len(rs)-1], 1e-12, "grid reaches the requested outer radius")
}
