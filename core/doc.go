// Package core provides the shared primitives of the emfield engine:
// physical constants, phasor algebra, optional physical scalars,
// coordinate transforms, and dB/linear conversions.
//
// 🚀 What lives here?
//
//	Every other package in emfield builds on these primitives:
//	  • CODATA physical constants (c₀, ε₀, μ₀, η₀, e, mₑ, k_B, h)
//	  • Phasor — magnitude/phase pairs with complex128 conversions
//	  • Maybe — explicit "undefined by physics" scalar results
//	  • Vector3 and Cartesian/Cylindrical/Spherical transforms
//	  • dB ↔ linear, dBm/dBW ↔ W, Np ↔ dB conversions
//	  • Linspace — uniform sampling grids for curve generation
//
// ✨ Conventions:
//
//   - All quantities are SI base units; the engine never infers units.
//   - Phases are normalized to (−π, π] by NormalizeAngle.
//   - Results with no physical value (critical angle when n₁≤n₂, skin
//     depth of a lossless medium) are Maybe values with Defined=false,
//     never NaN or sentinel magic numbers.
//   - Arguments of acos/asin that may drift outside [−1,1] from floating
//     round-off are clamped with Clamp before use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/emfield/core"
//
//	p := core.NewPhasor(2.0, math.Pi/3)
//	z := p.Complex()                  // 2·e^{jπ/3} as complex128
//	xs := core.Linspace(0, 1, 201)    // 201 uniform samples
//
// All functions are pure and safe for concurrent use.
package core
