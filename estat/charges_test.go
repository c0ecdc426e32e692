package estat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/estat"
)

// TestFieldAt_CoulombLaw checks one nanocoulomb at 10 cm against
// Coulomb's law.
func TestFieldAt_CoulombLaw(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}
	e := estat.FieldAt(charges, core.Vector3{X: 0.1}, core.Epsilon0)

	expected := 1e-9 / (4.0 * math.Pi * core.Epsilon0 * 0.01)
	assert.InDelta(t, expected, e.X, expected*1e-10, "|E| = q/(4 pi eps r^2)")
	assert.Zero(t, e.Y, "field is radial")
	assert.Zero(t, e.Z, "field is radial")
}

// TestFieldAt_InverseSquare quarters the field at double the distance.
func TestFieldAt_InverseSquare(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}
	e1 := estat.FieldAt(charges, core.Vector3{X: 1.0}, core.Epsilon0)
	e2 := estat.FieldAt(charges, core.Vector3{X: 2.0}, core.Epsilon0)
	assert.InDelta(t, 0.25, e2.X/e1.X, 1e-10, "E falls as 1/r^2")
}

// TestFieldAt_Symmetry cancels at the midpoint of two equal charges
// and skips the singular self point.
func TestFieldAt_Symmetry(t *testing.T) {
	charges := []estat.PointCharge{
		estat.NewPointCharge(-1, 0, 0, 1e-9),
		estat.NewPointCharge(1, 0, 0, 1e-9),
	}
	mid := estat.FieldAt(charges, core.Vector3{}, core.Epsilon0)
	assert.InDelta(t, 0.0, mid.X, 1e-20, "equal charges cancel at the midpoint")

	onCharge := estat.FieldAt(charges, core.Vector3{X: 1}, core.Epsilon0)
	assert.False(t, math.IsInf(onCharge.X, 0) || math.IsNaN(onCharge.X),
		"self contribution is skipped, not divergent")
}

// TestPotentialAt checks the 1/r law and monotone decay.
func TestPotentialAt(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}

	v := estat.PotentialAt(charges, core.Vector3{X: 0.1}, core.Epsilon0)
	expected := 1e-9 / (4.0 * math.Pi * core.Epsilon0 * 0.1)
	assert.InDelta(t, expected, v, expected*1e-10, "V = q/(4 pi eps r)")

	vFar := estat.PotentialAt(charges, core.Vector3{X: 0.2}, core.Epsilon0)
	assert.Greater(t, v, vFar, "potential decays with distance")
}

// TestSampleField checks the grid dimensions of the E and V maps.
func TestSampleField(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}

	eg := estat.SampleField(charges, core.Epsilon0, -1, 1, -1, 1, 10, 8)
	require.False(t, eg.Empty(), "populated field grid")
	assert.Len(t, eg.X, 10, "10 columns")
	assert.Len(t, eg.Y, 8, "8 rows")

	vg := estat.SamplePotential(charges, core.Epsilon0, -1, 1, -1, 1, 10, 8)
	rows, cols := vg.Values.Dims()
	assert.Equal(t, 8, rows, "rows follow y")
	assert.Equal(t, 10, cols, "columns follow x")
	assert.Greater(t, vg.At(5, 4), 0.0, "positive charge gives positive potential")
}

// TestTraceFieldLines_Outward traces lines from an isolated positive
// charge: every line must march away from it.
func TestTraceFieldLines_Outward(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}
	lines := estat.TraceFieldLines(charges, 0, 8, 50, 0.01, core.Epsilon0)
	require.Len(t, lines, 8, "8 seeded lines")

	for i, line := range lines {
		require.Greater(t, len(line), 1, "line %d advanced", i)
		first := line[0].Norm()
		last := line[len(line)-1].Norm()
		assert.Greater(t, last, first, "line %d moves outward", i)
	}
}

// TestTraceFieldLines_DipoleCapture terminates lines near the negative
// charge of a dipole.
func TestTraceFieldLines_DipoleCapture(t *testing.T) {
	charges := []estat.PointCharge{
		estat.NewPointCharge(-0.05, 0, 0, 1e-9),
		estat.NewPointCharge(0.05, 0, 0, -1e-9),
	}
	lines := estat.TraceFieldLines(charges, 0, 4, 200, 0.005, core.Epsilon0)
	require.Len(t, lines, 4, "4 seeded lines")
	for i, line := range lines {
		assert.Greater(t, len(line), 1, "line %d advanced", i)
		assert.LessOrEqual(t, len(line), 201, "line %d respects the step limit", i)
	}
}

// TestTraceFieldLines_BadStart returns nil for an invalid start index.
func TestTraceFieldLines_BadStart(t *testing.T) {
	charges := []estat.PointCharge{estat.NewPointCharge(0, 0, 0, 1e-9)}
	assert.Nil(t, estat.TraceFieldLines(charges, 5, 4, 10, 0.01, core.Epsilon0),
		"out-of-range start index yields no lines")
}
