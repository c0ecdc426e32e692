// Package antenna models elementary radiators, uniform linear
// arrays, and free-space link budgets.
//
// 🚀 What you get
//
//   - Hertzian dipole: |sinθ| pattern, radiation resistance
//     80π²(l/λ)², directivity 1.5 (1.76 dBi), effective area, and
//     radiated power ½I²R.
//   - Half-wave dipole: |cos(π/2·cosθ)/sinθ| pattern, R ≈ 73.1 Ω,
//     input impedance 73.1+j42.5 Ω, directivity 1.643 (2.15 dBi).
//   - Uniform linear array: normalized array factor
//     |sin(Nψ/2)/(N·sinψ/2)| with ψ = kd·cosθ+β, broadside/endfire/
//     scanned constructors, first-null beamwidth, half-power
//     beamwidth by pattern scan, approximate directivity 2Nd̂, and
//     element×array total pattern.
//   - Friis link: path loss (4πR/λ)², received power in watts, dBW
//     and dBm, EIRP, power density, and a power-vs-distance curve.
//   - Radar range equation: P_r = P_tG²λ²σ/((4π)³R⁴) and the maximum
//     range for a minimum detectable power.
//
// ⚙️ Conventions
//
//   - Dipoles and arrays lie along the z-axis; θ is measured from it.
//   - Array spacing is given in wavelengths.
//   - Gains are linear ratios; dB forms are provided alongside.
//
// ✨ Errors
//
//   - ErrBadFrequency: non-positive operating frequency.
//   - ErrBadGeometry: non-positive length or spacing.
//   - ErrTooFewElements: an array of fewer than two elements.
//   - ErrBadLink: non-positive power, frequency, or distance in a
//     link budget.
package antenna
