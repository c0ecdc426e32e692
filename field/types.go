package field

import "github.com/katalvlaran/emfield/core"

// ScalarFunc is a scalar field f(x, y, z).
type ScalarFunc func(x, y, z float64) float64

// VectorFunc is a vector field F(x, y, z).
type VectorFunc func(x, y, z float64) core.Vector3

// DivergenceClass labels a preset's divergence qualitatively.
type DivergenceClass int

const (
	// DivergenceZero marks a solenoidal preset.
	DivergenceZero DivergenceClass = iota
	// DivergencePositive marks a source.
	DivergencePositive
	// DivergenceNegative marks a sink.
	DivergenceNegative
	// DivergenceVaries marks position-dependent divergence.
	DivergenceVaries
)

// CurlClass labels a preset's rotation qualitatively.
type CurlClass int

const (
	// CurlZero marks an irrotational preset.
	CurlZero CurlClass = iota
	// CurlCCW marks counter-clockwise rotation (curl_z > 0).
	CurlCCW
	// CurlCW marks clockwise rotation (curl_z < 0).
	CurlCW
	// CurlVaries marks position-dependent curl.
	CurlVaries
)
