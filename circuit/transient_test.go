package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emfield/circuit"
)

// TestRLCircuit checks tau = L/R, the step response limits, and the
// exponential decay.
func TestRLCircuit(t *testing.T) {
	rl, err := circuit.NewRLCircuit(100.0, 0.1)
	require.NoError(t, err, "valid circuit")

	tau := rl.TimeConstant()
	assert.InDelta(t, 1e-3, tau, 1e-15, "L over R")

	assert.InDelta(t, 0.0, rl.StepCurrent(10.0, 0), 1e-12, "inductor blocks the initial step")
	assert.InDelta(t, 0.1*(1.0-1.0/math.E), rl.StepCurrent(10.0, tau), 1e-10, "one time constant reaches 1-1/e of V/R")
	assert.InDelta(t, 0.1, rl.StepCurrent(10.0, 20.0*tau), 1e-9, "settles to V/R")

	assert.InDelta(t, 1.0/math.E, rl.DecayCurrent(1.0, tau), 1e-10, "decay hits 1/e at tau")

	ts, is := rl.SampleStep(10.0, 0.01, 100)
	require.Len(t, ts, 100, "time axis length")
	require.Len(t, is, 100, "current curve length")
	assert.Less(t, is[0], 0.001, "starts near zero")
	assert.InDelta(t, 0.1, is[99], 0.005, "approaches V/R")

	_, err = circuit.NewRLCircuit(0.0, 0.1)
	assert.ErrorIs(t, err, circuit.ErrBadComponent, "zero resistance")
}

// TestRCCircuit checks tau = RC, the charge and discharge curves, and
// the charging current.
func TestRCCircuit(t *testing.T) {
	rc, err := circuit.NewRCCircuit(1000.0, 1e-6)
	require.NoError(t, err, "valid circuit")

	tau := rc.TimeConstant()
	assert.InDelta(t, 1e-3, tau, 1e-15, "RC product")

	assert.InDelta(t, 10.0*(1.0-1.0/math.E), rc.ChargingVoltage(10.0, tau), 1e-9, "charge reaches 1-1/e at tau")
	assert.InDelta(t, 10.0/math.E, rc.DischargingVoltage(10.0, tau), 1e-9, "discharge hits 1/e at tau")
	assert.InDelta(t, 10.0/1000.0, rc.ChargingCurrent(10.0, 0), 1e-12, "initial current is V/R")

	ts, vs := rc.SampleCharging(10.0, 5e-3, 50)
	require.Len(t, ts, 50, "time axis length")
	require.Len(t, vs, 50, "voltage curve length")
	assert.InDelta(t, 10.0, vs[49], 0.1, "approaches the source voltage")

	empty, _ := rc.SampleCharging(10.0, 5e-3, 0)
	assert.Empty(t, empty, "zero points yields an empty curve")
}

// TestRLCResonance checks the 1 mH / 1 nF textbook case, f0 about
// 159.15 kHz, and both Q definitions.
func TestRLCResonance(t *testing.T) {
	rlc, err := circuit.NewRLCCircuit(10.0, 1e-3, 1e-9)
	require.NoError(t, err, "valid circuit")

	assert.InDelta(t, 159154.94, rlc.ResonantFrequency(), 1.0, "textbook resonant frequency")

	w0 := rlc.OmegaZero()
	assert.InDelta(t, w0*1e-3/10.0, rlc.SeriesQ(), rlc.SeriesQ()*1e-10, "series Q")
	assert.InDelta(t, 10.0/(w0*1e-3), rlc.ParallelQ(), rlc.ParallelQ()*1e-10, "parallel Q")
	assert.InDelta(t, 1.0, rlc.SeriesQ()*rlc.ParallelQ(), 1e-10, "the two Q definitions are reciprocal")
	assert.InDelta(t, rlc.ResonantFrequency()/rlc.SeriesQ(), rlc.SeriesBandwidth(), 1e-6, "bandwidth f0 over Q")

	_, err = circuit.NewRLCCircuit(10.0, 0.0, 1e-9)
	assert.ErrorIs(t, err, circuit.ErrBadComponent, "zero inductance")
}

// TestRLCDamping sweeps the resistance through the three regimes.
// Critical damping needs R = 2 sqrt(L/C).
func TestRLCDamping(t *testing.T) {
	l, c := 1e-3, 1e-9
	critical := 2.0 * math.Sqrt(l/c)

	under, err := circuit.NewRLCCircuit(critical/10.0, l, c)
	require.NoError(t, err, "valid circuit")
	assert.Equal(t, circuit.Underdamped, under.Damping(), "low resistance rings")
	assert.Equal(t, "underdamped", under.Damping().String(), "label")
	assert.Positive(t, under.DampedOmega(), "ringing frequency defined")
	assert.Less(t, under.DampedOmega(), under.OmegaZero(), "ringing slower than natural")

	exact, err := circuit.NewRLCCircuit(critical, l, c)
	require.NoError(t, err, "valid circuit")
	assert.Equal(t, circuit.CriticallyDamped, exact.Damping(), "boundary resistance")
	assert.InDelta(t, 1.0, exact.DampingRatio(), 1e-10, "zeta is one at critical")

	over, err := circuit.NewRLCCircuit(critical*10.0, l, c)
	require.NoError(t, err, "valid circuit")
	assert.Equal(t, circuit.Overdamped, over.Damping(), "high resistance creeps")
	assert.Zero(t, over.DampedOmega(), "no ringing past critical")
}
