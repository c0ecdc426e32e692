// Package medium models plane-wave propagation through material media.
//
// A Medium bundles relative permittivity, relative permeability, and
// conductivity. All frequency-dependent quantities derive from the
// complex propagation constant γ = α + jβ = √(jωμ(σ + jωε)) with the
// principal square-root branch, so α ≥ 0 always holds.
//
// 🚀 What you get
//
//   - Medium value type with Lossless, Lossy, FreeSpace, and Conductor
//     constructors.
//   - Propagation constant, attenuation α (Np/m), phase constant β
//     (rad/m), intrinsic impedance η (complex), phase velocity,
//     wavelength, and skin depth at any frequency.
//   - Loss tangent tan δ = σ/(ωε) and a four-way loss classification
//     driven by the LowLossThreshold and GoodConductorThreshold limits.
//   - Attenuation profiles e^{−αz} sampled along a path, in linear
//     ratio or decibels.
//
// ⚙️ Conventions
//
//   - e^{jωt} time convention; a forward wave decays as e^{−αz}.
//   - Skin depth is core.Maybe: None for a medium with α ≈ 0, where
//     the 1/α definition has no finite value.
//
// ✨ Errors
//
//   - ErrBadMedium: εᵣ ≤ 0, μᵣ ≤ 0, or σ < 0.
//   - ErrBadFrequency: f ≤ 0.
package medium
