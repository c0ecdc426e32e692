package field

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/emfield/core"
)

// ScalarGrid holds scalar samples over a rectangle. Values is ny×nx,
// row i fixing Y[i] and column j fixing X[j].
type ScalarGrid struct {
	X      []float64
	Y      []float64
	Values *mat.Dense
}

// Empty reports a grid with no samples.
func (g ScalarGrid) Empty() bool { return len(g.X) == 0 || len(g.Y) == 0 }

// At returns the sample at column ix, row iy.
func (g ScalarGrid) At(ix, iy int) float64 { return g.Values.At(iy, ix) }

// SampleScalar evaluates f on an nx×ny grid over [x0,x1]×[y0,y1] at
// fixed z. Either count at zero or below yields an empty grid.
func SampleScalar(f ScalarFunc, x0, x1, y0, y1, z float64, nx, ny int) ScalarGrid {
	if nx <= 0 || ny <= 0 {
		return ScalarGrid{X: []float64{}, Y: []float64{}}
	}
	g := ScalarGrid{
		X:      core.Linspace(x0, x1, nx),
		Y:      core.Linspace(y0, y1, ny),
		Values: mat.NewDense(ny, nx, nil),
	}
	for iy, y := range g.Y {
		for ix, x := range g.X {
			g.Values.Set(iy, ix, f(x, y, z))
		}
	}
	return g
}

// SampleScalarPreset samples a bundled preset in the z = 0 plane.
func SampleScalarPreset(p ScalarPreset, x0, x1, y0, y1 float64, nx, ny int) ScalarGrid {
	return SampleScalar(p.Func(), x0, x1, y0, y1, 0, nx, ny)
}

// VectorGrid holds planar vector samples plus their exact divergence
// and curl_z when built from a preset. Each matrix is ny×nx.
type VectorGrid struct {
	X  []float64
	Y  []float64
	FX *mat.Dense
	FY *mat.Dense

	// Divergence and CurlZ are filled by SampleVectorPreset, nil when
	// sampling an arbitrary VectorFunc.
	Divergence *mat.Dense
	CurlZ      *mat.Dense
}

// Empty reports a grid with no samples.
func (g VectorGrid) Empty() bool { return len(g.X) == 0 || len(g.Y) == 0 }

// VectorAt returns the sampled vector at column ix, row iy.
func (g VectorGrid) VectorAt(ix, iy int) core.Vector3 {
	return core.Vector3{X: g.FX.At(iy, ix), Y: g.FY.At(iy, ix)}
}

// SampleVector evaluates F on an nx×ny grid over [x0,x1]×[y0,y1] at
// fixed z.
func SampleVector(f VectorFunc, x0, x1, y0, y1, z float64, nx, ny int) VectorGrid {
	if nx <= 0 || ny <= 0 {
		return VectorGrid{X: []float64{}, Y: []float64{}}
	}
	g := VectorGrid{
		X:  core.Linspace(x0, x1, nx),
		Y:  core.Linspace(y0, y1, ny),
		FX: mat.NewDense(ny, nx, nil),
		FY: mat.NewDense(ny, nx, nil),
	}
	for iy, y := range g.Y {
		for ix, x := range g.X {
			v := f(x, y, z)
			g.FX.Set(iy, ix, v.X)
			g.FY.Set(iy, ix, v.Y)
		}
	}
	return g
}

// SampleVectorPreset samples a bundled preset in the z = 0 plane,
// attaching its exact divergence and curl_z grids.
func SampleVectorPreset(p VectorPreset, x0, x1, y0, y1 float64, nx, ny int) VectorGrid {
	g := SampleVector(p.Func(), x0, x1, y0, y1, 0, nx, ny)
	if g.Empty() {
		return g
	}
	g.Divergence = mat.NewDense(len(g.Y), len(g.X), nil)
	g.CurlZ = mat.NewDense(len(g.Y), len(g.X), nil)
	for iy, y := range g.Y {
		for ix, x := range g.X {
			g.Divergence.Set(iy, ix, p.DivergenceExact(x, y))
			g.CurlZ.Set(iy, ix, p.CurlZExact(x, y))
		}
	}
	return g
}
