// Package mstat solves canonical magnetostatics problems: Biot–Savart
// superposition over current segments and Ampère's-law closed forms.
//
// 🚀 What you get
//
//   - Biot–Savart building blocks: CurrentSegment with a midpoint-rule
//     field contribution, superposition over segment lists, an
//     infinite-wire closed form B = μ₀I/2πρ, a z-axis wire
//     discretizer, and 2-D |B| grid sampling through
//     field.ScalarGrid.
//   - Circular loops: exact on-axis field, magnetic moment,
//     discretization into segments, off-axis field by numerical
//     Biot–Savart, and a Helmholtz pair with center field
//     μ₀nI(4/5)^{3/2}/R and an axial uniformity figure.
//   - Ampère's-law geometries: ideal and finite solenoid, toroid, and
//     coaxial line with its piecewise B(r) profile.
//   - Inductance closed forms (solenoid, toroid, coaxial, parallel
//     wires, mutual coaxial loops), coupling coefficient,
//     series/parallel combination, and stored energy ½LI².
//   - Forces: parallel-wire force per length μ₀I₁I₂/2πd, F = I L×B on
//     a wire in a uniform field, and τ = m×B on a current loop.
//
// ⚙️ Conventions
//
//   - Straight wires run along z; loops lie in planes of constant z
//     centered on the axis, positive current counterclockwise seen
//     from +z.
//   - Segment contributions closer than 1e-15 m to the observation
//     point are dropped rather than blowing up.
//   - A positive parallel-wire force means attraction (currents in
//     the same direction).
//
// ✨ Errors
//
//   - ErrBadGeometry: non-positive dimensions, outer ≤ inner, or a
//     turn count below one.
//   - ErrBadDistance: non-positive observation or separation
//     distance.
//   - ErrBadSegments: too few segments to discretize a path.
//   - ErrBadInductance: non-positive inductance value.
//   - ErrNoInductors: combining an empty inductor list.
package mstat
