package tline

import "math"

// TransientLine models a step-driven line between a resistive source
// and a resistive load for bounce-diagram analysis.
type TransientLine struct {
	Z0            float64
	RSource       float64
	RLoad         float64
	Length        float64
	PhaseVelocity float64
}

// BounceEvent is one wavefront arrival in the bounce diagram.
type BounceEvent struct {
	// Bounce counts reflections; 0 is the launched wave.
	Bounce int
	// Time of the arrival, in seconds.
	Time float64
	// Voltage is the amplitude of this travelling wavefront.
	Voltage float64
	// AtLoad reports whether the reflection happens at the load end.
	AtLoad bool
}

// TransientResult is the outcome of a bounce-diagram solve.
type TransientResult struct {
	GammaSource float64
	GammaLoad   float64
	// TransitTime is the one-way delay T_d = l/v_p.
	TransitTime float64
	// VInitial is the launched amplitude V_s·Z₀/(Z₀+R_S).
	VInitial float64
	Bounces  []BounceEvent
	// SteadyState is the resistive-divider limit V_s·R_L/(R_S+R_L).
	SteadyState float64
}

// TransitTime is the one-way propagation delay.
func (l TransientLine) TransitTime() float64 { return l.Length / l.PhaseVelocity }

// GammaSource is the source-end reflection coefficient.
func (l TransientLine) GammaSource() float64 {
	return (l.RSource - l.Z0) / (l.RSource + l.Z0)
}

// GammaLoad is the load-end reflection coefficient.
func (l TransientLine) GammaLoad() float64 {
	return (l.RLoad - l.Z0) / (l.RLoad + l.Z0)
}

// Solve traces numBounces wavefront reflections of a step of amplitude
// sourceVoltage. Odd bounces occur at the load, even at the source;
// each arrival scales the travelling amplitude by the local Γ.
func (l TransientLine) Solve(sourceVoltage float64, numBounces int) (TransientResult, error) {
	if l.Z0 <= 0 || math.IsNaN(l.Z0) || math.IsInf(l.Z0, 0) {
		return TransientResult{}, ErrBadImpedance
	}
	if l.Length <= 0 || l.PhaseVelocity <= 0 {
		return TransientResult{}, ErrBadGeometry
	}

	td := l.TransitTime()
	gs := l.GammaSource()
	gl := l.GammaLoad()
	vInitial := sourceVoltage * l.Z0 / (l.Z0 + l.RSource)

	bounces := make([]BounceEvent, 0, numBounces+1)
	bounces = append(bounces, BounceEvent{Bounce: 0, Time: 0, Voltage: vInitial})

	v := vInitial
	for i := 1; i <= numBounces; i++ {
		atLoad := i%2 == 1
		if atLoad {
			v *= gl
		} else {
			v *= gs
		}
		bounces = append(bounces, BounceEvent{
			Bounce:  i,
			Time:    float64(i) * td,
			Voltage: v,
			AtLoad:  atLoad,
		})
	}

	return TransientResult{
		GammaSource: gs,
		GammaLoad:   gl,
		TransitTime: td,
		VInitial:    vInitial,
		Bounces:     bounces,
		SteadyState: sourceVoltage * l.RLoad / (l.RSource + l.RLoad),
	}, nil
}

// LoadVoltageSteps returns the staircase of the load-end voltage:
// each arriving forward wave of amplitude v adds v·(1+Γ_L), and the
// next forward wave is v·Γ_L·Γ_S. Returns parallel (times, voltages)
// slices with one entry per arrival, converging to SteadyState.
func (l TransientLine) LoadVoltageSteps(sourceVoltage float64, numArrivals int) (times, voltages []float64, err error) {
	if l.Z0 <= 0 {
		return nil, nil, ErrBadImpedance
	}
	if l.Length <= 0 || l.PhaseVelocity <= 0 {
		return nil, nil, ErrBadGeometry
	}

	td := l.TransitTime()
	gs := l.GammaSource()
	gl := l.GammaLoad()
	forward := sourceVoltage * l.Z0 / (l.Z0 + l.RSource)

	times = make([]float64, 0, numArrivals)
	voltages = make([]float64, 0, numArrivals)
	total := 0.0
	for k := 0; k < numArrivals; k++ {
		total += forward * (1.0 + gl)
		times = append(times, float64(2*k+1)*td)
		voltages = append(voltages, total)
		forward *= gl * gs
	}
	return times, voltages, nil
}
