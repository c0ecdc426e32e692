package mstat

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// SolenoidInductance is L = μ₀μᵣN²πr²/l.
func SolenoidInductance(turns int, length, radius, muR float64) (float64, error) {
	if turns < 1 || length <= 0 || radius <= 0 || muR <= 0 {
		return 0, ErrBadGeometry
	}
	n := float64(turns)
	return core.Mu0 * muR * n * n * math.Pi * radius * radius / length, nil
}

// ToroidInductance is L = μ₀μᵣN²h·ln(b/a)/2π for a rectangular
// cross-section of height h.
func ToroidInductance(turns int, innerRadius, outerRadius, height, muR float64) (float64, error) {
	if turns < 1 || innerRadius <= 0 || outerRadius <= innerRadius || height <= 0 || muR <= 0 {
		return 0, ErrBadGeometry
	}
	n := float64(turns)
	return core.Mu0 * muR * n * n * height * math.Log(outerRadius/innerRadius) / (2.0 * math.Pi), nil
}

// CoaxialInductancePerLength is the external inductance per meter,
// L' = μ₀μᵣ·ln(b/a)/2π.
func CoaxialInductancePerLength(innerRadius, outerRadius, muR float64) (float64, error) {
	if innerRadius <= 0 || outerRadius <= innerRadius || muR <= 0 {
		return 0, ErrBadGeometry
	}
	return core.Mu0 * muR * math.Log(outerRadius/innerRadius) / (2.0 * math.Pi), nil
}

// CoaxialInductance scales the per-length form by the line length.
func CoaxialInductance(innerRadius, outerRadius, muR, length float64) (float64, error) {
	if length <= 0 {
		return 0, ErrBadGeometry
	}
	perLength, err := CoaxialInductancePerLength(innerRadius, outerRadius, muR)
	if err != nil {
		return 0, err
	}
	return perLength * length, nil
}

// ParallelWiresInductancePerLength is L' = μ₀μᵣ·ln(d/a)/π for two
// wires of radius a separated by d, valid for d ≫ a.
func ParallelWiresInductancePerLength(wireRadius, separation, muR float64) (float64, error) {
	if wireRadius <= 0 || separation <= wireRadius || muR <= 0 {
		return 0, ErrBadGeometry
	}
	return core.Mu0 * muR / math.Pi * math.Log(separation/wireRadius), nil
}

// MutualCoaxialLoops is the small-loop approximation of the Neumann
// formula for two coaxial loops, M = μ₀πa²b² / 2(a²+d²)^{3/2}.
func MutualCoaxialLoops(radiusA, radiusB, separation float64) (float64, error) {
	if radiusA <= 0 || radiusB <= 0 || separation < 0 {
		return 0, ErrBadGeometry
	}
	num := core.Mu0 * math.Pi * radiusA * radiusA * radiusB * radiusB
	den := 2.0 * math.Pow(radiusA*radiusA+separation*separation, 1.5)
	return num / den, nil
}

// CouplingCoefficient is k = M/√(L₁L₂).
func CouplingCoefficient(mutual, l1, l2 float64) (float64, error) {
	if l1 <= 0 || l2 <= 0 {
		return 0, ErrBadInductance
	}
	return mutual / math.Sqrt(l1*l2), nil
}

// SeriesInductance sums uncoupled inductors, L = ΣLᵢ.
func SeriesInductance(inductors []float64) (float64, error) {
	if len(inductors) == 0 {
		return 0, ErrNoInductors
	}
	total := 0.0
	for _, l := range inductors {
		if l <= 0 {
			return 0, ErrBadInductance
		}
		total += l
	}
	return total, nil
}

// ParallelInductance combines inductors as 1/L = Σ(1/Lᵢ).
func ParallelInductance(inductors []float64) (float64, error) {
	if len(inductors) == 0 {
		return 0, ErrNoInductors
	}
	invSum := 0.0
	for _, l := range inductors {
		if l <= 0 {
			return 0, ErrBadInductance
		}
		invSum += 1.0 / l
	}
	return 1.0 / invSum, nil
}

// StoredEnergy is W = ½LI².
func StoredEnergy(inductance, current float64) float64 {
	return 0.5 * inductance * current * current
}
