package medium

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// FieldMagnitude returns |E(z)| = E₀·e^{−αz} for a forward wave.
func FieldMagnitude(e0, alpha, z float64) float64 {
	return e0 * math.Exp(-alpha*z)
}

// PoyntingAverage returns the time-averaged power density of a plane
// wave after z meters in a lossy medium,
// S = E₀²e^{−2αz}·Re η/(2|η|²).
func PoyntingAverage(e0, alpha float64, eta complex128, z float64) float64 {
	ez := FieldMagnitude(e0, alpha, z)
	normSqr := real(eta)*real(eta) + imag(eta)*imag(eta)
	return ez * ez * real(eta) / (2.0 * normSqr)
}

// AttenuationProfile samples the relative amplitude e^{−αz} over
// [0, zMax] at n points.
func (m Medium) AttenuationProfile(frequency, zMax float64, n int) (zs, ratios []float64, err error) {
	alpha, err := m.Alpha(frequency)
	if err != nil {
		return nil, nil, err
	}
	zs = core.Linspace(0, zMax, n)
	ratios = core.Map(zs, func(z float64) float64 { return math.Exp(-alpha * z) })
	return zs, ratios, nil
}

// AttenuationProfileDB samples the amplitude loss in dB over [0, zMax],
// 20·log10(e^{−αz}) expressed through the Np→dB conversion.
func (m Medium) AttenuationProfileDB(frequency, zMax float64, n int) (zs, lossDB []float64, err error) {
	alpha, err := m.Alpha(frequency)
	if err != nil {
		return nil, nil, err
	}
	zs = core.Linspace(0, zMax, n)
	lossDB = core.Map(zs, func(z float64) float64 { return core.NepersToDB(alpha * z) })
	return zs, lossDB, nil
}
