package wave

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// PoyntingAverage returns the time-averaged power density of a plane
// wave, S = E₀²/(2η), in W/m². ErrBadImpedance when eta ≤ 0.
func PoyntingAverage(e0, eta float64) (float64, error) {
	if eta <= 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		return 0, ErrBadImpedance
	}
	return e0 * e0 / (2.0 * eta), nil
}

// PoyntingAverageFreeSpace is PoyntingAverage with η = η₀.
func PoyntingAverageFreeSpace(e0 float64) float64 {
	s, _ := PoyntingAverage(e0, core.Eta0)
	return s
}

// PowerDensityIsotropic spreads total power over a sphere of radius r,
// S = P/(4πr²). ErrBadDistance when r ≤ 0.
func PowerDensityIsotropic(power, r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrBadDistance
	}
	return power / (4.0 * math.Pi * r * r), nil
}

// RadiationIntensity converts a power density at range r into
// intensity per solid angle, U = r²S, in W/sr.
func RadiationIntensity(density, r float64) (float64, error) {
	if r <= 0 {
		return 0, ErrBadDistance
	}
	return r * r * density, nil
}

// FieldFromDensity inverts PoyntingAverage, E₀ = √(2ηS).
func FieldFromDensity(density, eta float64) (float64, error) {
	if eta <= 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
		return 0, ErrBadImpedance
	}
	if density < 0 {
		return 0, ErrBadPower
	}
	return math.Sqrt(2.0 * eta * density), nil
}

// ReceivedPower is the power captured by effective aperture area from
// an incident density, P = S·A_e.
func ReceivedPower(density, aperture float64) float64 {
	return density * aperture
}
