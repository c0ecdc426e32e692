package mstat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// ParallelWireForce models two infinite parallel wires a fixed
// distance apart.
type ParallelWireForce struct {
	I1         float64
	I2         float64
	Separation float64
}

// NewParallelWireForce builds the pair; separation must be positive.
func NewParallelWireForce(i1, i2, separation float64) (ParallelWireForce, error) {
	if separation <= 0 {
		return ParallelWireForce{}, ErrBadDistance
	}
	return ParallelWireForce{I1: i1, I2: i2, Separation: separation}, nil
}

// ForcePerLength is F/l = μ₀I₁I₂/2πd. Positive means attraction
// (currents in the same direction), negative means repulsion.
func (p ParallelWireForce) ForcePerLength() float64 {
	return core.Mu0 * p.I1 * p.I2 / (2.0 * math.Pi * p.Separation)
}

// IsAttractive reports whether the currents pull the wires together.
func (p ParallelWireForce) IsAttractive() bool {
	return p.I1*p.I2 > 0
}

// TotalForce scales the per-length force by the wire length.
func (p ParallelWireForce) TotalForce(length float64) float64 {
	return p.ForcePerLength() * length
}

// WireInField is a straight current-carrying wire in a uniform
// external B-field. Wire points along the wire with its magnitude
// equal to the wire length.
type WireInField struct {
	Current float64
	Wire    core.Vector3
	Field   core.Vector3
}

// NewWireInField builds the wire/field configuration.
func NewWireInField(current float64, wire, field core.Vector3) WireInField {
	return WireInField{Current: current, Wire: wire, Field: field}
}

// Force is F = I L×B.
func (w WireInField) Force() core.Vector3 {
	return w.Wire.Cross(w.Field).Scale(w.Current)
}

// ForceMagnitude is |F|.
func (w WireInField) ForceMagnitude() float64 {
	return w.Force().Norm()
}

// LoopTorque is the torque τ = m×B on a planar current loop of the
// given area and unit-normal direction, with m = IA·n̂.
func LoopTorque(current, area float64, normal, b core.Vector3) core.Vector3 {
	m := normal.Unit().Scale(current * area)
	return m.Cross(b)
}
