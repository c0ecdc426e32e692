// Package fresnel computes reflection and transmission at a planar
// boundary between two lossless dielectric media.
//
// 🚀 What you get
//
//   - NormalIncidence: Γ = (η₂−η₁)/(η₂+η₁), τ = 2η₂/(η₂+η₁), power
//     reflectance and transmittance.
//   - ObliqueIncidence: Snell refraction, total internal reflection
//     detection, critical angle, Brewster angle, and the perpendicular
//     (TE/s) and parallel (TM/p) Fresnel coefficients using the
//     lossless η ∝ 1/n convention.
//   - SweepAngles: |Γ⊥| and |Γ∥| curves over [0°, 90°) for plotting,
//     with coefficients pinned to 1 inside the TIR region.
//
// ⚙️ Conventions
//
//   - Media are non-magnetic (μᵣ = 1), so n = √εᵣ and η = η₀/n.
//   - Quantities that vanish under total internal reflection (θ_t, Γ,
//     τ) come back as core.Maybe with Defined=false.
//   - asin arguments are clamped to [−1, 1] before evaluation.
//
// ✨ Errors
//
//   - ErrBadMedium: εᵣ ≤ 0 on either side.
//   - ErrBadIncidence: θᵢ outside [0, π/2).
package fresnel
