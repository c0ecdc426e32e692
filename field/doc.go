// Package field samples scalar and vector fields on 2-D grids and
// applies numerical differential operators to arbitrary fields.
//
// 🚀 What you get
//
//   - ScalarGrid and VectorGrid built on gonum mat.Dense, row-major
//     with row = y index and column = x index, plus the Sample
//     functions that fill them over a rectangular range.
//   - Scalar presets (paraboloid, saddle, sine product, inverse-r,
//     product, gaussian) carrying closed-form values and analytic
//     gradients for verification.
//   - Vector presets (radial source/sink, CCW/CW rotation, shear,
//     uniform) carrying analytic divergence and curl, plus a
//     qualitative classification of each.
//   - Gradient, Divergence, Curl, and Laplacian by central differences
//     with a configurable step (DefaultStep = 1e-5).
//
// ⚙️ Conventions
//
//   - Fields are functions of (x, y, z); the bundled presets live in
//     the z = 0 plane and ignore z.
//   - Curl returns the full Vector3; planar fields put everything in Z.
//   - Sampling with n ≤ 0 on either axis yields an empty grid, not an
//     error.
package field
