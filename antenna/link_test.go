package antenna_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/antenna"
	"github.com/katalvlaran/emfield/core"
)

// TestFriisReceivedPower checks the isotropic closed form and the
// inverse-square distance law.
func TestFriisReceivedPower(t *testing.T) {
	link, err := antenna.NewFriisLink(1.0, 1.0, 1.0, 1e9, 1000.0)
	require.NoError(t, err, "valid link")

	lambda := core.C0 / 1e9
	ratio := lambda / (4.0 * math.Pi * 1000.0)
	expected := ratio * ratio
	assert.InDelta(t, expected, link.ReceivedPower(), expected*1e-10, "isotropic Friis value")

	near, _ := antenna.NewFriisLink(1.0, 1.0, 1.0, 1e9, 100.0)
	far, _ := antenna.NewFriisLink(1.0, 1.0, 1.0, 1e9, 200.0)
	assert.InDelta(t, 4.0, near.ReceivedPower()/far.ReceivedPower(), 1e-10, "inverse square in distance")

	hot, _ := antenna.NewFriisLink(1.0, 10.0, 10.0, 1e9, 1000.0)
	assert.InDelta(t, 100.0, hot.ReceivedPower()/link.ReceivedPower(), 1e-9, "gains multiply")
}

// TestFriisPathLossAndEIRP checks the dB forms and the flux density.
func TestFriisPathLossAndEIRP(t *testing.T) {
	link, err := antenna.NewFriisLink(10.0, 20.0, 1.0, 1e9, 1000.0)
	require.NoError(t, err, "valid link")

	assert.InDelta(t, core.PowerToDB(link.PathLoss()), link.PathLossDB(), 1e-10, "consistent dB form")
	assert.InDelta(t, 200.0, link.EIRP(), 1e-10, "EIRP is Pt Gt")
	assert.InDelta(t, core.WattsToDBW(200.0), link.EIRPDBW(), 1e-10, "EIRP in dBW")
	assert.InDelta(t, 200.0/(4.0*math.Pi*1e6), link.PowerDensity(), 1e-16, "flux at 1 km")
	assert.InDelta(t, link.ReceivedPowerDBW()+30.0, link.ReceivedPowerDBm(), 1e-9, "dBm sits 30 dB above dBW")

	farther, _ := antenna.NewFriisLink(10.0, 20.0, 1.0, 1e9, 10000.0)
	assert.Greater(t, farther.PathLossDB(), link.PathLossDB(), "loss grows with distance")
	higher, _ := antenna.NewFriisLink(10.0, 20.0, 1.0, 10e9, 1000.0)
	assert.Greater(t, higher.PathLossDB(), link.PathLossDB(), "loss grows with frequency")
}

// TestFriisSampleVsDistance checks curve shape and monotone decay.
func TestFriisSampleVsDistance(t *testing.T) {
	link, err := antenna.NewFriisLink(1.0, 10.0, 10.0, 1e9, 1000.0)
	require.NoError(t, err, "valid link")

	ds, ps := link.SampleVsDistance(100.0, 10000.0, 50)
	require.Len(t, ds, 50, "distance axis length")
	require.Len(t, ps, 50, "power curve length")
	for i := 1; i < len(ps); i++ {
		assert.LessOrEqual(t, ps[i], ps[i-1], "received power decays with range")
	}

	_, err = antenna.NewFriisLink(1.0, 1.0, 1.0, 0.0, 1000.0)
	assert.ErrorIs(t, err, antenna.ErrBadLink, "zero frequency")
	_, err = antenna.NewFriisLink(1.0, 1.0, 1.0, 1e9, 0.0)
	assert.ErrorIs(t, err, antenna.ErrBadLink, "zero distance")
}

// TestRadarRangeEquation checks the fourth-power distance law and
// that MaxRange inverts ReceivedPower.
func TestRadarRangeEquation(t *testing.T) {
	radar, err := antenna.NewRadarSystem(1e3, 1000.0, 10e9, 1.0)
	require.NoError(t, err, "valid radar")

	p1, err := radar.ReceivedPower(10e3)
	require.NoError(t, err, "valid range")
	p2, err := radar.ReceivedPower(20e3)
	require.NoError(t, err, "valid range")
	assert.InDelta(t, 16.0, p1/p2, 1e-9, "echo falls as the fourth power of range")

	rmax, err := radar.MaxRange(p1)
	require.NoError(t, err, "valid threshold")
	assert.InDelta(t, 10e3, rmax, 1e-3, "max range inverts the range equation")

	_, err = radar.ReceivedPower(0)
	assert.ErrorIs(t, err, antenna.ErrBadLink, "zero range")
	_, err = radar.MaxRange(0)
	assert.ErrorIs(t, err, antenna.ErrBadLink, "zero threshold")
	_, err = antenna.NewRadarSystem(1e3, 1000.0, 10e9, 0.0)
	assert.ErrorIs(t, err, antenna.ErrBadLink, "zero cross section")
}
