package wave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/wave"
)

// TestTravelingWave_FreeSpace checks the derived wavelength and phase
// velocity of a 300 MHz plane wave in vacuum.
func TestTravelingWave_FreeSpace(t *testing.T) {
	w, err := wave.NewTravelingWaveFreeSpace(1.0, 300e6, 0.0, wave.PositiveX)
	require.NoError(t, err, "valid frequency must build")

	assert.InDelta(t, core.C0/300e6, w.Wavelength(), 1e-9, "lambda = c/f")
	assert.InDelta(t, core.C0, w.PhaseVelocity(), 1e-3, "vacuum phase velocity is c")
}

// TestTravelingWave_Dielectric verifies the sqrt(epsilonR) slowdown in
// a lossless dielectric.
func TestTravelingWave_Dielectric(t *testing.T) {
	w, err := wave.NewTravelingWaveDielectric(1.0, 1e9, 0.0, wave.PositiveX, 4.0)
	require.NoError(t, err, "valid frequency must build")

	assert.InDelta(t, core.C0/2.0, w.PhaseVelocity(), 1e-3, "vp = c/sqrt(4)")
	assert.InDelta(t, core.C0/2.0/1e9, w.Wavelength(), 1e-12, "lambda shrinks with vp")
}

// TestTravelingWave_Propagation verifies that a +x wave reproduces its
// t=0 shape shifted by vp*dt, while a -x wave shifts the other way.
func TestTravelingWave_Propagation(t *testing.T) {
	fwd, err := wave.NewTravelingWaveFreeSpace(2.0, 100e6, 0.3, wave.PositiveX)
	require.NoError(t, err, "forward wave must build")
	bwd, err := wave.NewTravelingWaveFreeSpace(2.0, 100e6, 0.3, wave.NegativeX)
	require.NoError(t, err, "backward wave must build")

	dt := 1e-9
	shift := fwd.PhaseVelocity() * dt
	for _, x := range []float64{0, 0.7, 1.9} {
		assert.InDelta(t, fwd.Evaluate(x, 0), fwd.Evaluate(x+shift, dt), 1e-9,
			"+x pattern moves toward +x at x=%v", x)
		assert.InDelta(t, bwd.Evaluate(x, 0), bwd.Evaluate(x-shift, dt), 1e-9,
			"-x pattern moves toward -x at x=%v", x)
	}
}

// TestTravelingWave_Attenuation applies alpha=0.5 Np/m to a +x wave and
// checks the envelope decay over one meter.
func TestTravelingWave_Attenuation(t *testing.T) {
	w, err := wave.NewTravelingWave(1.0, 1e9, 0.0, wave.PositiveX, 0.5, 2.0*math.Pi)
	require.NoError(t, err, "explicit constants must build")

	// Pick x on a crest of cos(omega*t - beta*x) at t=0: beta*x = 2*pi.
	x := 1.0
	assert.InDelta(t, math.Exp(-0.5), w.Evaluate(x, 0), 1e-12,
		"crest amplitude decays as e^{-alpha x}")
}

// TestTravelingWave_BadFrequency rejects non-positive frequencies in
// every constructor.
func TestTravelingWave_BadFrequency(t *testing.T) {
	_, err := wave.NewTravelingWaveFreeSpace(1.0, 0.0, 0.0, wave.PositiveX)
	assert.ErrorIs(t, err, wave.ErrBadFrequency, "free-space constructor rejects f=0")

	_, err = wave.NewTravelingWaveDielectric(1.0, -1.0, 0.0, wave.PositiveX, 2.2)
	assert.ErrorIs(t, err, wave.ErrBadFrequency, "dielectric constructor rejects f<0")

	_, err = wave.NewTravelingWave(1.0, 0.0, 0.0, wave.PositiveX, 0, 1)
	assert.ErrorIs(t, err, wave.ErrBadFrequency, "explicit constructor rejects f=0")
}

// TestTravelingWave_Sampling checks the grid shape of space and time
// sweeps.
func TestTravelingWave_Sampling(t *testing.T) {
	w, err := wave.NewTravelingWaveFreeSpace(1.0, 300e6, 0.0, wave.PositiveX)
	require.NoError(t, err, "valid frequency must build")

	xs, ys := w.SampleSpace(0, 2.0, 21, 0)
	require.Len(t, xs, 21, "21 positions")
	require.Len(t, ys, 21, "21 values")
	assert.InDelta(t, w.Evaluate(2.0, 0), ys[20], 1e-12, "last sample matches Evaluate")

	ts, vs := w.SampleTime(0, 1e-8, 11, 0.5)
	require.Len(t, ts, 11, "11 instants")
	assert.InDelta(t, w.Evaluate(0.5, 1e-8), vs[10], 1e-12, "last sample matches Evaluate")
}
