// Package estat solves canonical electrostatics problems in free space
// and simple dielectrics.
//
// 🚀 What you get
//
//   - Point-charge superposition: E and V at a point, 2-D grid
//     sampling through field.VectorGrid / field.ScalarGrid, and field
//     line tracing by fixed-step integration along the unit field
//     direction.
//   - Method of images: a charge above a grounded plane (force,
//     induced surface charge density, total induced charge) and a
//     charge outside a grounded sphere (image charge q' = −qa/d at
//     a²/d, force).
//   - Gauss's law closed forms: infinite line, infinite sheet,
//     uniformly charged sphere (inside and outside), and coaxial
//     cylinders, plus a radial E(r) profile for the sphere.
//   - Capacitance: parallel plate, coaxial, spherical, isolated
//     sphere, series/parallel combination, stored energy, gap field,
//     and energy density.
//
// ⚙️ Conventions
//
//   - The grounded plane is y = 0; formulas hold in the y > 0
//     half-space.
//   - Point-charge contributions closer than 1e-15 m to the
//     observation point are skipped rather than blowing up.
//
// ✨ Errors
//
//   - ErrInsideSphere: image-sphere setup with d ≤ a.
//   - ErrBadGeometry: non-positive dimensions or outer ≤ inner.
//   - ErrBadDistance: non-positive observation distance.
//   - ErrNoCapacitors: combining an empty capacitor list.
package estat
