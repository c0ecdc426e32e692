// Package tline solves transmission-line problems: reflection and
// standing waves, Smith-chart mappings, impedance transformation,
// matching networks, physical line geometries, and step transients.
//
// 🚀 What is tline?
//
//	A lossless (and where noted, lossy) transmission line is fully
//	described by its characteristic impedance Z₀ and phase constant β.
//	Everything in this package derives from the reflection coefficient
//
//	  Γ = (Z_L − Z₀) / (Z_L + Z₀)
//
//	and the bilinear Smith-chart map z ↔ Γ.
//
// ✨ Key features:
//   - Reflection analysis: Γ, VSWR, return loss, mismatch loss
//   - Smith chart: z↔Γ maps, SWR/resistance/reactance circles,
//     rotation toward generator/load
//   - Input impedance vs. electrical length (lossless tan, lossy tanh)
//   - Standing-wave envelopes with first minimum/maximum locations
//   - Quarter-wave and binomial multisection transformers
//   - Single-stub matching (short or open stub, both solutions)
//   - Coaxial, two-wire and microstrip line geometry → RLGC parameters
//   - Bounce-diagram step transients with staircase load voltage
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/emfield/tline"
//
//	rep, err := tline.Analyze(50, complex(100, 0))
//	// rep.VSWR == 2, rep.Gamma == 1/3
//
//	sols, err := tline.SingleStub(50, complex(35, -47.5), 1e9, core.C0, tline.ShortStub)
//	// sols[0] and sols[1] are the two (d, l) stub placements
//
// Errors:
//   - ErrBadImpedance    — Z₀ ≤ 0 or non-finite
//   - ErrComplexLoad     — quarter-wave design on a reactive load
//   - ErrFullReflection  — |Γ| ≥ 1, no matching solution exists
//   - ErrBadGeometry     — non-physical conductor geometry
//   - ErrBadFrequency    — frequency ≤ 0
//
// All functions are pure; singular inputs (|Γ|→1 in VSWR) are clamped,
// never propagated as NaN or ±Inf.
package tline
