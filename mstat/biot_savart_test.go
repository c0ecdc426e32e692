package mstat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/mstat"
)

// TestInfiniteWireField checks mu0*I/(2 pi rho) and the distance
// guard. I=10 A at rho=0.1 m gives 2e-5 T.
func TestInfiniteWireField(t *testing.T) {
	b, err := mstat.InfiniteWireField(10.0, 0.1)
	require.NoError(t, err, "positive distance is valid")
	assert.InDelta(t, 2e-5, b, 2e-15, "textbook infinite wire value")

	_, err = mstat.InfiniteWireField(10.0, 0.0)
	assert.ErrorIs(t, err, mstat.ErrBadDistance, "rho=0 is invalid")

	b1, _ := mstat.InfiniteWireField(1.0, 0.1)
	b2, _ := mstat.InfiniteWireField(1.0, 0.2)
	assert.InDelta(t, 2.0, b1/b2, 1e-10, "field decays as 1/rho")
}

// TestSegmentField checks the midpoint rule against a hand-computed
// contribution and the singularity guard.
func TestSegmentField(t *testing.T) {
	// Short segment along x at the origin, observed on the z-axis.
	seg := mstat.NewCurrentSegment(
		core.Vector3{X: -0.005},
		core.Vector3{X: 0.005},
		2.0,
	)
	point := core.Vector3{Z: 0.1}
	b := mstat.SegmentField(seg, point)

	// dl x r = (0.01,0,0) x (0,0,0.1) = (0,-0.001,0)
	factor := core.Mu0 * 2.0 / (4.0 * math.Pi * 0.001)
	assert.InDelta(t, -factor*0.001, b.Y, 1e-18, "cross-product direction")
	assert.Zero(t, b.X, "no x component")
	assert.Zero(t, b.Z, "no z component")

	atMid := mstat.SegmentField(seg, seg.Midpoint())
	assert.Zero(t, atMid.Norm(), "observation at the segment yields zero")
}

// TestDiscretizedWireMatchesClosedForm sums many short segments of a
// long wire and compares against the infinite-wire formula.
func TestDiscretizedWireMatchesClosedForm(t *testing.T) {
	segments, err := mstat.DiscretizeWireZ(5.0, 50.0, 10000)
	require.NoError(t, err, "valid discretization")
	require.Len(t, segments, 10000, "requested segment count")

	rho := 0.1
	b := mstat.TotalField(segments, core.Vector3{X: rho})
	exact, _ := mstat.InfiniteWireField(5.0, rho)
	assert.InDelta(t, exact, b.Norm(), exact*0.01, "numerical sum approaches mu0 I/(2 pi rho)")
	// Right-hand rule: current along +z, point on +x, field along +y.
	assert.Positive(t, b.Y, "field direction follows the right-hand rule")
	assert.InDelta(t, 0.0, b.X, exact*1e-6, "no radial component")
}

// TestDiscretizeWireZValidation rejects degenerate inputs.
func TestDiscretizeWireZValidation(t *testing.T) {
	_, err := mstat.DiscretizeWireZ(1.0, 0.0, 100)
	assert.ErrorIs(t, err, mstat.ErrBadGeometry, "zero half-length")

	_, err = mstat.DiscretizeWireZ(1.0, 1.0, 0)
	assert.ErrorIs(t, err, mstat.ErrBadSegments, "need at least one segment")
}

// TestDiscretizeWireZContiguous checks that segments tile the span
// without gaps.
func TestDiscretizeWireZContiguous(t *testing.T) {
	segments, err := mstat.DiscretizeWireZ(1.0, 2.0, 8)
	require.NoError(t, err, "valid discretization")
	assert.InDelta(t, -2.0, segments[0].Start.Z, 1e-12, "starts at -half length")
	assert.InDelta(t, 2.0, segments[7].End.Z, 1e-12, "ends at +half length")
	for i := 1; i < len(segments); i++ {
		assert.InDelta(t, segments[i-1].End.Z, segments[i].Start.Z, 1e-12, "contiguous segments")
	}
}

// TestSampleFieldMagnitude checks grid shape and the 1/rho falloff in
// the sampled values.
func TestSampleFieldMagnitude(t *testing.T) {
	segments, err := mstat.DiscretizeWireZ(10.0, 20.0, 2000)
	require.NoError(t, err, "valid discretization")

	grid := mstat.SampleFieldMagnitude(segments, 0.05, 0.4, -0.1, 0.1, 0, 8, 5)
	require.Len(t, grid.X, 8, "x axis length")
	require.Len(t, grid.Y, 5, "y axis length")

	near := grid.At(0, 2)
	far := grid.At(7, 2)
	assert.Greater(t, near, far, "field weakens away from the wire")
}

// TestSampleFieldVector checks the vector grid orientation around a
// wire on the z-axis.
func TestSampleFieldVector(t *testing.T) {
	segments, err := mstat.DiscretizeWireZ(10.0, 20.0, 2000)
	require.NoError(t, err, "valid discretization")

	grid := mstat.SampleField(segments, 0.1, 0.2, 0.0, 0.0, 0, 2, 1)
	b := grid.VectorAt(0, 0)
	assert.Positive(t, b.Y, "azimuthal direction on the +x side")
	assert.InDelta(t, 0.0, b.Z, b.Norm()*1e-6, "no axial component at the midplane")
}
