package field

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// inverseREps regularizes the inverse-r preset at the origin.
const inverseREps = 1e-12

// ScalarPreset enumerates the bundled demonstration scalar fields.
// All of them live in the z = 0 plane.
type ScalarPreset int

const (
	// Paraboloid is f = x² + y².
	Paraboloid ScalarPreset = iota
	// Saddle is f = x² − y².
	Saddle
	// SineProduct is f = sin x · cos y.
	SineProduct
	// InverseR is f = 1/√(x² + y² + ε), a point-source potential.
	InverseR
	// Product is f = x·y.
	Product
	// Gaussian is f = e^{−(x²+y²)}.
	Gaussian
)

// Evaluate returns the preset value at (x, y).
func (p ScalarPreset) Evaluate(x, y float64) float64 {
	switch p {
	case Paraboloid:
		return x*x + y*y
	case Saddle:
		return x*x - y*y
	case SineProduct:
		return math.Sin(x) * math.Cos(y)
	case InverseR:
		return 1.0 / math.Sqrt(x*x+y*y+inverseREps)
	case Product:
		return x * y
	default:
		return math.Exp(-(x*x + y*y))
	}
}

// GradientExact returns the closed-form gradient for verification.
func (p ScalarPreset) GradientExact(x, y float64) core.Vector3 {
	switch p {
	case Paraboloid:
		return core.Vector3{X: 2.0 * x, Y: 2.0 * y}
	case Saddle:
		return core.Vector3{X: 2.0 * x, Y: -2.0 * y}
	case SineProduct:
		return core.Vector3{X: math.Cos(x) * math.Cos(y), Y: -math.Sin(x) * math.Sin(y)}
	case InverseR:
		r2 := x*x + y*y + inverseREps
		factor := -1.0 / (r2 * math.Sqrt(r2))
		return core.Vector3{X: factor * x, Y: factor * y}
	case Product:
		return core.Vector3{X: y, Y: x}
	default:
		g := math.Exp(-(x*x + y*y))
		return core.Vector3{X: -2.0 * x * g, Y: -2.0 * y * g}
	}
}

// Func adapts the preset to a 3-D ScalarFunc ignoring z.
func (p ScalarPreset) Func() ScalarFunc {
	return func(x, y, _ float64) float64 { return p.Evaluate(x, y) }
}
