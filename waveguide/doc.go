// Package waveguide analyzes hollow metallic waveguides.
//
// 🚀 What you get
//
//   - Rectangular: cutoff frequencies of TE_mn (m,n ≥ 0, not both 0)
//     and TM_mn (m,n ≥ 1) modes, per-mode propagation data at a given
//     frequency (β, guide wavelength, phase and group velocity, wave
//     impedance), mode enumeration sorted by cutoff, the dominant TE₁₀
//     mode, and the single-mode bandwidth.
//   - Circular: TE₁₁ (p'₁₁ = 1.8412) and TM₀₁ (p₀₁ = 2.4049) dominant
//     cutoffs.
//
// ⚙️ Conventions
//
//   - a is the broad wall, b the narrow wall, so a ≥ b is required.
//   - Below cutoff a mode is evanescent: β = 0, the guide wavelength
//     and phase velocity are reported as +Inf, group velocity and wave
//     impedance as 0.
//   - For propagating modes v_p·v_g = v², the medium light speed
//     squared.
//
// ✨ Errors
//
//   - ErrBadGeometry: a ≤ 0, b ≤ 0, b > a, or a non-positive radius.
//   - ErrBadFrequency: f ≤ 0.
//   - ErrBadMedium: εᵣ ≤ 0 or μᵣ ≤ 0.
package waveguide
