package field

import "github.com/katalvlaran/emfield/core"

// DefaultStep is the central-difference step used when callers pass no
// step of their own.
const DefaultStep = 1e-5

// Gradient approximates ∇f at a point by central differences, O(h²).
func Gradient(f ScalarFunc, x, y, z, h float64) core.Vector3 {
	return core.Vector3{
		X: (f(x+h, y, z) - f(x-h, y, z)) / (2.0 * h),
		Y: (f(x, y+h, z) - f(x, y-h, z)) / (2.0 * h),
		Z: (f(x, y, z+h) - f(x, y, z-h)) / (2.0 * h),
	}
}

// Divergence approximates ∇·F at a point by central differences.
func Divergence(f VectorFunc, x, y, z, h float64) float64 {
	dfxdx := (f(x+h, y, z).X - f(x-h, y, z).X) / (2.0 * h)
	dfydy := (f(x, y+h, z).Y - f(x, y-h, z).Y) / (2.0 * h)
	dfzdz := (f(x, y, z+h).Z - f(x, y, z-h).Z) / (2.0 * h)
	return dfxdx + dfydy + dfzdz
}

// Curl approximates ∇×F at a point by central differences. Planar
// fields put the whole rotation in the Z component.
func Curl(f VectorFunc, x, y, z, h float64) core.Vector3 {
	dfzdy := (f(x, y+h, z).Z - f(x, y-h, z).Z) / (2.0 * h)
	dfydz := (f(x, y, z+h).Y - f(x, y, z-h).Y) / (2.0 * h)
	dfxdz := (f(x, y, z+h).X - f(x, y, z-h).X) / (2.0 * h)
	dfzdx := (f(x+h, y, z).Z - f(x-h, y, z).Z) / (2.0 * h)
	dfydx := (f(x+h, y, z).Y - f(x-h, y, z).Y) / (2.0 * h)
	dfxdy := (f(x, y+h, z).X - f(x, y-h, z).X) / (2.0 * h)

	return core.Vector3{
		X: dfzdy - dfydz,
		Y: dfxdz - dfzdx,
		Z: dfydx - dfxdy,
	}
}

// Laplacian approximates ∇²f at a point by second differences.
func Laplacian(f ScalarFunc, x, y, z, h float64) float64 {
	d2x := (f(x+h, y, z) - 2.0*f(x, y, z) + f(x-h, y, z)) / (h * h)
	d2y := (f(x, y+h, z) - 2.0*f(x, y, z) + f(x, y-h, z)) / (h * h)
	d2z := (f(x, y, z+h) - 2.0*f(x, y, z) + f(x, y, z-h)) / (h * h)
	return d2x + d2y + d2z
}
