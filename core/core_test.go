package core_test

import (
	"testing"

	"github.com/katalvlaran/emfield/core"
	"github.com/stretchr/testify/assert"
)

// TestLinspace_Bounds verifies endpoint inclusion and the N=0/N=1
// degenerate cases (empty curve, single sample — never an error).
func TestLinspace_Bounds(t *testing.T) {
	xs := core.Linspace(0.0, 1.0, 5)
	assert.Len(t, xs, 5, "requested sample count")
	assert.Equal(t, 0.0, xs[0], "first sample is lo")
	assert.Equal(t, 1.0, xs[4], "last sample is hi")
	assert.InDelta(t, 0.25, xs[1], 1e-12, "uniform spacing")

	assert.Empty(t, core.Linspace(0, 1, 0), "N=0 yields an empty curve")
	assert.Equal(t, []float64{2.0}, core.Linspace(2, 9, 1), "N=1 yields {lo}")
}

// TestClamp verifies clamping at both ends and pass-through inside.
func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, core.Clamp(1.5, -1.0, 1.0), "clamped above")
	assert.Equal(t, -1.0, core.Clamp(-2.0, -1.0, 1.0), "clamped below")
	assert.Equal(t, 0.25, core.Clamp(0.25, -1.0, 1.0), "inside passes through")
}

// TestDB_PowerConversions verifies the 10·log₁₀ power conventions.
func TestDB_PowerConversions(t *testing.T) {
	assert.InDelta(t, 3.0103, core.PowerToDB(2.0), 1e-4, "doubling power is ≈3 dB")
	assert.InDelta(t, 100.0, core.PowerFromDB(20.0), 1e-9, "20 dB is ×100 power")
	assert.InDelta(t, 40.0, core.AmplitudeToDB(100.0), 1e-9, "×100 amplitude is 40 dB")
}

// TestDBm_Watts verifies the dBm anchor points 0 dBm=1 mW, 30 dBm=1 W.
func TestDBm_Watts(t *testing.T) {
	assert.InDelta(t, 0.001, core.DBmToWatts(0.0), 1e-12, "0 dBm is 1 mW")
	assert.InDelta(t, 1.0, core.DBmToWatts(30.0), 1e-12, "30 dBm is 1 W")
	assert.InDelta(t, 30.0, core.WattsToDBm(1.0), 1e-12, "1 W is 30 dBm")
	assert.InDelta(t, 0.0, core.WattsToDBW(1.0), 1e-12, "1 W is 0 dBW")
}

// TestNepers_DB verifies the Np↔dB conversion factor round trip.
func TestNepers_DB(t *testing.T) {
	assert.InDelta(t, 8.685889638065037, core.NepersToDB(1.0), 1e-12, "1 Np in dB")
	assert.InDelta(t, 1.0, core.DBToNepers(core.NepersToDB(1.0)), 1e-12, "round trip")
}

// TestMaybe verifies the optional-scalar accessors.
func TestMaybe(t *testing.T) {
	assert.True(t, core.Some(2.0).Defined, "Some is defined")
	assert.False(t, core.None().Defined, "None is undefined")
	assert.Equal(t, 2.0, core.Some(2.0).Or(7.0), "defined value wins")
	assert.Equal(t, 7.0, core.None().Or(7.0), "fallback when undefined")
}
