// Package core defines the value types shared across the engine.
package core

// Maybe is an optional physical scalar.
//
// A result that has no value for the given inputs (critical angle when
// n₁ ≤ n₂, skin depth of a lossless medium, axial ratio of a linear
// polarization) is returned as a Maybe with Defined=false. Callers must
// check Defined before using Value; Value is 0 when undefined.
//
// Example:
//
//	d := medium.SkinDepth(m)
//	if d.Defined {
//	  fmt.Println("skin depth:", d.Value)
//	} else {
//	  fmt.Println("lossless — no skin depth")
//	}
type Maybe struct {
	Value   float64
	Defined bool
}

// Some wraps a defined value.
func Some(v float64) Maybe { return Maybe{Value: v, Defined: true} }

// None is the undefined scalar.
func None() Maybe { return Maybe{} }

// Or returns Value when defined, fallback otherwise.
func (m Maybe) Or(fallback float64) float64 {
	if m.Defined {
		return m.Value
	}
	return fallback
}
