package field

import "github.com/katalvlaran/emfield/core"

// VectorPreset enumerates the bundled demonstration vector fields,
// all planar.
type VectorPreset int

const (
	// RadialOutward is F = (x, y), a source.
	RadialOutward VectorPreset = iota
	// RadialInward is F = (−x, −y), a sink.
	RadialInward
	// RotationCCW is F = (−y, x), a counter-clockwise vortex.
	RotationCCW
	// RotationCW is F = (y, −x).
	RotationCW
	// Shear is F = (x², xy), non-uniform.
	Shear
	// UniformX is F = (1, 0).
	UniformX
)

// Evaluate returns the field vector at (x, y).
func (p VectorPreset) Evaluate(x, y float64) core.Vector3 {
	switch p {
	case RadialOutward:
		return core.Vector3{X: x, Y: y}
	case RadialInward:
		return core.Vector3{X: -x, Y: -y}
	case RotationCCW:
		return core.Vector3{X: -y, Y: x}
	case RotationCW:
		return core.Vector3{X: y, Y: -x}
	case Shear:
		return core.Vector3{X: x * x, Y: x * y}
	default:
		return core.Vector3{X: 1.0}
	}
}

// DivergenceExact returns the closed-form planar divergence.
func (p VectorPreset) DivergenceExact(x, _ float64) float64 {
	switch p {
	case RadialOutward:
		return 2.0
	case RadialInward:
		return -2.0
	case Shear:
		return 3.0 * x
	default:
		return 0.0
	}
}

// CurlZExact returns the closed-form z-component of the curl.
func (p VectorPreset) CurlZExact(_, y float64) float64 {
	switch p {
	case RotationCCW:
		return 2.0
	case RotationCW:
		return -2.0
	case Shear:
		return y
	default:
		return 0.0
	}
}

// DivergenceClass labels the preset qualitatively.
func (p VectorPreset) DivergenceClass() DivergenceClass {
	switch p {
	case RadialOutward:
		return DivergencePositive
	case RadialInward:
		return DivergenceNegative
	case Shear:
		return DivergenceVaries
	default:
		return DivergenceZero
	}
}

// CurlClass labels the preset qualitatively.
func (p VectorPreset) CurlClass() CurlClass {
	switch p {
	case RotationCCW:
		return CurlCCW
	case RotationCW:
		return CurlCW
	case Shear:
		return CurlVaries
	default:
		return CurlZero
	}
}

// Func adapts the preset to a 3-D VectorFunc ignoring z.
func (p VectorPreset) Func() VectorFunc {
	return func(x, y, _ float64) core.Vector3 { return p.Evaluate(x, y) }
}
