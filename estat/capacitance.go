package estat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// ParallelPlateCapacitance returns C = εA/d.
func ParallelPlateCapacitance(area, separation, epsilonR float64) (float64, error) {
	if area <= 0 || separation <= 0 {
		return 0, ErrBadGeometry
	}
	return core.Epsilon0 * epsilonR * area / separation, nil
}

// CoaxialCapacitancePerLength returns C/L = 2πε/ln(b/a).
func CoaxialCapacitancePerLength(innerR, outerR, epsilonR float64) (float64, error) {
	if innerR <= 0 || outerR <= innerR {
		return 0, ErrBadGeometry
	}
	return 2.0 * math.Pi * core.Epsilon0 * epsilonR / math.Log(outerR/innerR), nil
}

// CoaxialCapacitance returns the total capacitance of a finite coax
// run.
func CoaxialCapacitance(innerR, outerR, epsilonR, length float64) (float64, error) {
	perLength, err := CoaxialCapacitancePerLength(innerR, outerR, epsilonR)
	if err != nil {
		return 0, err
	}
	if length <= 0 {
		return 0, ErrBadGeometry
	}
	return perLength * length, nil
}

// SphericalCapacitance returns C = 4πεab/(b−a).
func SphericalCapacitance(innerR, outerR, epsilonR float64) (float64, error) {
	if innerR <= 0 || outerR <= innerR {
		return 0, ErrBadGeometry
	}
	return 4.0 * math.Pi * core.Epsilon0 * epsilonR * innerR * outerR / (outerR - innerR), nil
}

// IsolatedSphereCapacitance returns C = 4πε₀a.
func IsolatedSphereCapacitance(radius float64) (float64, error) {
	if radius <= 0 {
		return 0, ErrBadGeometry
	}
	return 4.0 * math.Pi * core.Epsilon0 * radius, nil
}

// SeriesCapacitance combines capacitors in series, 1/C = Σ 1/Cᵢ.
func SeriesCapacitance(caps []float64) (float64, error) {
	if len(caps) == 0 {
		return 0, ErrNoCapacitors
	}
	invSum := 0.0
	for _, c := range caps {
		if c <= 0 {
			return 0, ErrBadGeometry
		}
		invSum += 1.0 / c
	}
	return 1.0 / invSum, nil
}

// ParallelCapacitance combines capacitors in parallel, C = Σ Cᵢ.
func ParallelCapacitance(caps []float64) (float64, error) {
	if len(caps) == 0 {
		return 0, ErrNoCapacitors
	}
	sum := 0.0
	for _, c := range caps {
		sum += c
	}
	return sum, nil
}

// StoredEnergy returns W = ½CV².
func StoredEnergy(capacitance, voltage float64) float64 {
	return 0.5 * capacitance * voltage * voltage
}

// StoredCharge returns Q = CV.
func StoredCharge(capacitance, voltage float64) float64 {
	return capacitance * voltage
}

// GapField returns E = V/d inside a parallel-plate gap.
func GapField(voltage, separation float64) (float64, error) {
	if separation <= 0 {
		return 0, ErrBadGeometry
	}
	return voltage / separation, nil
}

// EnergyDensity returns u = ½εE².
func EnergyDensity(eField, epsilonR float64) float64 {
	return 0.5 * core.Epsilon0 * epsilonR * eField * eField
}
