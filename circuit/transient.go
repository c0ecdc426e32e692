package circuit

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// criticalDampingTol bounds the band treated as exactly critical.
const criticalDampingTol = 1e-9

// RLCircuit is a resistor and inductor in series.
type RLCircuit struct {
	Resistance float64
	Inductance float64
}

// NewRLCircuit builds the circuit; both values must be positive.
func NewRLCircuit(resistance, inductance float64) (RLCircuit, error) {
	if resistance <= 0 || inductance <= 0 {
		return RLCircuit{}, ErrBadComponent
	}
	return RLCircuit{Resistance: resistance, Inductance: inductance}, nil
}

// TimeConstant is τ = L/R.
func (c RLCircuit) TimeConstant() float64 {
	return c.Inductance / c.Resistance
}

// StepCurrent is the current after a voltage step,
// i(t) = (V/R)(1 − e^{−t/τ}).
func (c RLCircuit) StepCurrent(voltage, t float64) float64 {
	return voltage / c.Resistance * (1.0 - math.Exp(-t/c.TimeConstant()))
}

// DecayCurrent is the current after the source is removed,
// i(t) = I₀e^{−t/τ}.
func (c RLCircuit) DecayCurrent(i0, t float64) float64 {
	return i0 * math.Exp(-t/c.TimeConstant())
}

// SampleStep tabulates the step response over [0, tEnd] at n points.
func (c RLCircuit) SampleStep(voltage, tEnd float64, n int) (ts, is []float64) {
	ts = core.Linspace(0, tEnd, n)
	is = core.Map(ts, func(t float64) float64 { return c.StepCurrent(voltage, t) })
	return ts, is
}

// RCCircuit is a resistor and capacitor in series.
type RCCircuit struct {
	Resistance  float64
	Capacitance float64
}

// NewRCCircuit builds the circuit; both values must be positive.
func NewRCCircuit(resistance, capacitance float64) (RCCircuit, error) {
	if resistance <= 0 || capacitance <= 0 {
		return RCCircuit{}, ErrBadComponent
	}
	return RCCircuit{Resistance: resistance, Capacitance: capacitance}, nil
}

// TimeConstant is τ = RC.
func (c RCCircuit) TimeConstant() float64 {
	return c.Resistance * c.Capacitance
}

// ChargingVoltage is v(t) = V(1 − e^{−t/τ}) toward a step source V.
func (c RCCircuit) ChargingVoltage(voltage, t float64) float64 {
	return voltage * (1.0 - math.Exp(-t/c.TimeConstant()))
}

// DischargingVoltage is v(t) = V₀e^{−t/τ} from an initial charge.
func (c RCCircuit) DischargingVoltage(v0, t float64) float64 {
	return v0 * math.Exp(-t/c.TimeConstant())
}

// ChargingCurrent is i(t) = (V/R)e^{−t/τ} during the charge.
func (c RCCircuit) ChargingCurrent(voltage, t float64) float64 {
	return voltage / c.Resistance * math.Exp(-t/c.TimeConstant())
}

// SampleCharging tabulates the capacitor voltage over [0, tEnd] at n
// points.
func (c RCCircuit) SampleCharging(voltage, tEnd float64, n int) (ts, vs []float64) {
	ts = core.Linspace(0, tEnd, n)
	vs = core.Map(ts, func(t float64) float64 { return c.ChargingVoltage(voltage, t) })
	return ts, vs
}

// RLCCircuit is a series resonant circuit.
type RLCCircuit struct {
	Resistance  float64
	Inductance  float64
	Capacitance float64
}

// NewRLCCircuit builds the circuit; all values must be positive.
func NewRLCCircuit(resistance, inductance, capacitance float64) (RLCCircuit, error) {
	if resistance <= 0 || inductance <= 0 || capacitance <= 0 {
		return RLCCircuit{}, ErrBadComponent
	}
	return RLCCircuit{Resistance: resistance, Inductance: inductance, Capacitance: capacitance}, nil
}

// OmegaZero is the natural angular frequency ω₀ = 1/√(LC).
func (c RLCCircuit) OmegaZero() float64 {
	return 1.0 / math.Sqrt(c.Inductance*c.Capacitance)
}

// ResonantFrequency is f₀ = ω₀/2π.
func (c RLCCircuit) ResonantFrequency() float64 {
	return c.OmegaZero() / (2.0 * math.Pi)
}

// SeriesQ is Q = ω₀L/R for the series topology.
func (c RLCCircuit) SeriesQ() float64 {
	return c.OmegaZero() * c.Inductance / c.Resistance
}

// ParallelQ is Q = R/ω₀L for the parallel topology.
func (c RLCCircuit) ParallelQ() float64 {
	return c.Resistance / (c.OmegaZero() * c.Inductance)
}

// SeriesBandwidth is the half-power bandwidth f₀/Q in Hz.
func (c RLCCircuit) SeriesBandwidth() float64 {
	return c.ResonantFrequency() / c.SeriesQ()
}

// DampingRatio is ζ = (R/2)√(C/L).
func (c RLCCircuit) DampingRatio() float64 {
	return c.Resistance / 2.0 * math.Sqrt(c.Capacitance/c.Inductance)
}

// Damping classifies the transient regime from ζ.
func (c RLCCircuit) Damping() DampingClass {
	zeta := c.DampingRatio()
	switch {
	case math.Abs(zeta-1.0) <= criticalDampingTol:
		return CriticallyDamped
	case zeta < 1.0:
		return Underdamped
	default:
		return Overdamped
	}
}

// DampedOmega is the ringing frequency ω₀√(1−ζ²) of an underdamped
// circuit, zero at or beyond critical damping.
func (c RLCCircuit) DampedOmega() float64 {
	zeta := c.DampingRatio()
	if zeta >= 1.0 {
		return 0
	}
	return c.OmegaZero() * math.Sqrt(1.0-zeta*zeta)
}
