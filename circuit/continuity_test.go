package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/circuit"
	"github.com/katalvlaran/emfield/core"
)

// TestRelaxingChargeDecay checks the exponential density decay and
// the volume scaling of the total charge.
func TestRelaxingChargeDecay(t *testing.T) {
	rc, err := circuit.NewRelaxingCharge(1e-6, 1e-3, 0.01)
	require.NoError(t, err, "valid sphere")

	assert.InDelta(t, 1e-6, rc.DensityAt(0), 1e-20, "initial density")
	assert.InDelta(t, 1e-6/math.E, rc.DensityAt(1e-3), 1e-16, "1/e after one relaxation time")

	bigger, err := circuit.NewRelaxingCharge(1e-6, 1e-3, 0.02)
	require.NoError(t, err, "valid sphere")
	assert.InDelta(t, 8.0, bigger.TotalChargeAt(0)/rc.TotalChargeAt(0), 1e-10, "charge scales with volume")
}

// TestRelaxingChargeContinuity checks I_out = -dQ/dt at several
// instants and along a sampled curve.
func TestRelaxingChargeContinuity(t *testing.T) {
	rc, err := circuit.NewRelaxingCharge(1e-6, 1e-3, 0.01)
	require.NoError(t, err, "valid sphere")

	for _, at := range []float64{0, 0.5e-3, 1e-3, 2e-3, 5e-3} {
		out := rc.TotalCurrentOut(at)
		rate := rc.ChargeDecayRate(at)
		assert.InDelta(t, rate, out, rate*1e-10, "continuity holds")
	}

	ts, qs, is := rc.Sample(5e-3, 50)
	require.Len(t, ts, 50, "time axis length")
	require.Len(t, qs, 50, "charge curve length")
	require.Len(t, is, 50, "current curve length")
	assert.Positive(t, is[0], "current flows from the start")
	assert.Greater(t, is[0], is[49], "current decays with the charge")
}

// TestRelaxingChargeFromMaterial checks tau = eps0/sigma for copper,
// which relaxes in under a femtosecond.
func TestRelaxingChargeFromMaterial(t *testing.T) {
	rc, err := circuit.NewRelaxingChargeFromMaterial(1.0, 1.0, 5.8e7, 0.01)
	require.NoError(t, err, "valid material")

	expected := core.Epsilon0 / 5.8e7
	assert.InDelta(t, expected, rc.Tau, expected*1e-10, "dielectric relaxation time")
	assert.Less(t, rc.Tau, 1e-15, "conductors relax almost instantly")

	_, err = circuit.NewRelaxingChargeFromMaterial(1.0, 1.0, 0.0, 0.01)
	assert.ErrorIs(t, err, circuit.ErrBadMaterial, "zero conductivity")
	_, err = circuit.NewRelaxingCharge(1.0, 1e-3, 0.0)
	assert.ErrorIs(t, err, circuit.ErrBadGeometry, "zero radius")
}
