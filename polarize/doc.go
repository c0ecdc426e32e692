// Package polarize describes the polarization state of a plane wave
// from its two transverse components,
//
//	Ex(t) = Aₓ·cos(ωt), Ey(t) = Aᵧ·cos(ωt + δ).
//
// 🚀 What you get
//
//   - State constructors: LinearX, LinearY, LinearAtAngle, RHCP, LHCP,
//     and the general NewState(ax, ay, delta).
//   - Classification into Linear, Circular, or Elliptical plus the
//     rotation sense (handedness) from the sign of sin δ.
//   - Ellipse geometry: semi-major and semi-minor axes, axial ratio
//     (core.Maybe, undefined for linear states), and tilt angle.
//   - Stokes parameters, the normalized Poincaré point, and an ellipse
//     trace over one period for plotting.
//
// ⚙️ Conventions
//
//   - δ = φ_y − φ_x. sin δ > 0 rotates left-handed, sin δ < 0
//     right-handed; RHCP is δ = −π/2, LHCP is δ = +π/2.
//   - Fully polarized waves satisfy S₀² = S₁² + S₂² + S₃².
//
// ✨ Errors
//
//   - ErrZeroAmplitude: both component amplitudes are zero.
package polarize
