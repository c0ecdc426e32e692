// Package circuit covers time-varying fields and the lumped circuits
// they drive: induction, first and second order transients, charge
// relaxation, and displacement current.
//
// 🚀 What you get
//
//   - Faraday's law: flux Φ = BA·cosθ, a sinusoidal flux with its
//     induced EMF B₀Aω·sin(ωt+φ), motional EMF vBL, an AC generator
//     (peak NBAω, RMS, frequency, period, RPM constructor), and an
//     ideal transformer with voltage/current/impedance ratios.
//   - Transients: RL and RC step and decay responses with their time
//     constants, and a series RLC circuit with resonant frequency
//     1/2π√(LC), series and parallel Q, bandwidth, and a damping
//     classification from ζ = (R/2)√(C/L).
//   - Charge continuity: a uniformly charged sphere relaxing as
//     e^{−t/τ} with τ = ε/σ, whose outward surface current equals
//     −dQ/dt at every instant.
//   - Displacement current: a parallel-plate capacitor under
//     sinusoidal drive, where I_d matches the conduction current
//     C·dV/dt term for term.
//
// ⚙️ Conventions
//
//   - Sampled curves run from t = 0 to the caller's end time; a
//     non-positive point count yields empty slices.
//   - Sinusoidal drives are cosine-referenced, V(t) = V₀cos(ωt).
//
// ✨ Errors
//
//   - ErrBadTurns: a winding with fewer than one turn.
//   - ErrBadComponent: non-positive R, L, or C.
//   - ErrBadGeometry: non-positive area, separation, or radius.
//   - ErrBadMaterial: non-positive conductivity, permittivity, or
//     relaxation time.
//   - ErrBadFrequency: non-positive angular frequency.
package circuit
