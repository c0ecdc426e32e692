package circuit

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// ParallelPlateCapacitor models displacement current in the gap of a
// plate capacitor under sinusoidal drive V(t) = V₀cos(ωt).
type ParallelPlateCapacitor struct {
	Area       float64
	Separation float64
	EpsilonR   float64
}

// NewParallelPlateCapacitor builds an air-gap capacitor.
func NewParallelPlateCapacitor(area, separation float64) (ParallelPlateCapacitor, error) {
	if area <= 0 || separation <= 0 {
		return ParallelPlateCapacitor{}, ErrBadGeometry
	}
	return ParallelPlateCapacitor{Area: area, Separation: separation, EpsilonR: 1.0}, nil
}

// WithDielectric returns a copy filled with a dielectric of relative
// permittivity epsilonR.
func (p ParallelPlateCapacitor) WithDielectric(epsilonR float64) ParallelPlateCapacitor {
	p.EpsilonR = epsilonR
	return p
}

// Capacitance is C = ε₀εᵣA/d.
func (p ParallelPlateCapacitor) Capacitance() float64 {
	return core.Epsilon0 * p.EpsilonR * p.Area / p.Separation
}

// GapField is the uniform field E = V/d for an applied voltage.
func (p ParallelPlateCapacitor) GapField(voltage float64) float64 {
	return voltage / p.Separation
}

// DisplacementCurrentDensity is J_d = ε∂E/∂t = −εV₀ω·sin(ωt)/d.
func (p ParallelPlateCapacitor) DisplacementCurrentDensity(vPeak, omega, t float64) float64 {
	return -core.Epsilon0 * p.EpsilonR * vPeak * omega * math.Sin(omega*t) / p.Separation
}

// DisplacementCurrent is I_d = J_d·A.
func (p ParallelPlateCapacitor) DisplacementCurrent(vPeak, omega, t float64) float64 {
	return p.DisplacementCurrentDensity(vPeak, omega, t) * p.Area
}

// PeakDisplacementCurrent is CV₀ω.
func (p ParallelPlateCapacitor) PeakDisplacementCurrent(vPeak, omega float64) float64 {
	return p.Capacitance() * vPeak * omega
}

// ConductionCurrent is the wire current C·dV/dt = −CV₀ω·sin(ωt),
// which the displacement current must equal.
func (p ParallelPlateCapacitor) ConductionCurrent(vPeak, omega, t float64) float64 {
	return -p.Capacitance() * vPeak * omega * math.Sin(omega*t)
}

// StoredEnergy is W = ½CV².
func (p ParallelPlateCapacitor) StoredEnergy(voltage float64) float64 {
	return 0.5 * p.Capacitance() * voltage * voltage
}

// DisplacementSample is a tabulated drive cycle for plotting.
type DisplacementSample struct {
	Times        []float64
	Voltage      []float64
	Displacement []float64
	Conduction   []float64
}

// Sample tabulates the drive voltage and both currents over [0, tEnd]
// at n points.
func (p ParallelPlateCapacitor) Sample(vPeak, omega, tEnd float64, n int) DisplacementSample {
	ts := core.Linspace(0, tEnd, n)
	return DisplacementSample{
		Times:        ts,
		Voltage:      core.Map(ts, func(t float64) float64 { return vPeak * math.Cos(omega*t) }),
		Displacement: core.Map(ts, func(t float64) float64 { return p.DisplacementCurrent(vPeak, omega, t) }),
		Conduction:   core.Map(ts, func(t float64) float64 { return p.ConductionCurrent(vPeak, omega, t) }),
	}
}
