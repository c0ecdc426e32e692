package tline

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// QuarterWave is a single-section quarter-wave transformer design.
type QuarterWave struct {
	// ZTransformer is the section impedance √(Z₀·R_L).
	ZTransformer float64
	// Length is the physical section length λ/4 at the design frequency.
	Length float64
	// BandwidthFractional is the fractional bandwidth within which the
	// input VSWR stays below the caller's maximum.
	BandwidthFractional float64
	// VSWRBefore and VSWRAfter report the match quality without and
	// with the transformer at the design frequency.
	VSWRBefore float64
	VSWRAfter  float64
}

// DesignQuarterWave sizes a quarter-wave transformer matching a real
// load rLoad to z0 at the given frequency and phase velocity.
//
// maxVSWR sets the bandwidth criterion (e.g. 1.5). Reactive loads are
// rejected with ErrComplexLoad; match reactive loads with SingleStub.
func DesignQuarterWave(z0, rLoad, frequency, phaseVelocity, maxVSWR float64) (QuarterWave, error) {
	if z0 <= 0 {
		return QuarterWave{}, ErrBadImpedance
	}
	if rLoad <= 0 {
		return QuarterWave{}, ErrComplexLoad
	}
	if frequency <= 0 || phaseVelocity <= 0 {
		return QuarterWave{}, ErrBadFrequency
	}

	zt := math.Sqrt(z0 * rLoad)
	wavelength := phaseVelocity / frequency

	// Fractional bandwidth: Δf/f₀ = 2 − (4/π)·acos(Γm·2Z_T/|Z₀−R_L|).
	gammaM := (maxVSWR - 1.0) / (maxVSWR + 1.0)
	bandwidth := 2.0
	if diff := math.Abs(z0 - rLoad); diff > 0 {
		cosArg := gammaM * 2.0 * zt / diff
		if cosArg < 1.0 {
			bandwidth = 2.0 - (4.0/math.Pi)*math.Acos(core.Clamp(cosArg, -1.0, 1.0))
		}
	}

	before, _ := Analyze(z0, complex(rLoad, 0))
	// At f₀ the transformer presents Zin = Z_T²/R_L to the main line.
	after, _ := Analyze(z0, complex(zt*zt/rLoad, 0))

	return QuarterWave{
		ZTransformer:        zt,
		Length:              wavelength / 4.0,
		BandwidthFractional: bandwidth,
		VSWRBefore:          before.VSWR,
		VSWRAfter:           after.VSWR,
	}, nil
}

// Multisection is a binomial (maximally flat) multisection
// quarter-wave transformer.
type Multisection struct {
	// SectionImpedances are the impedances Z₁..Z_N from the feed side.
	SectionImpedances []float64
	// SectionLength is the common λ/4 section length.
	SectionLength float64
}

// DesignBinomial computes an N-section binomial transformer from z0 to
// a real load: ln(Z_{i+1}/Z_i) = 2^{−N}·C(N,i)·ln(R_L/Z₀).
func DesignBinomial(z0, rLoad, frequency, phaseVelocity float64, sections int) (Multisection, error) {
	if z0 <= 0 {
		return Multisection{}, ErrBadImpedance
	}
	if rLoad <= 0 {
		return Multisection{}, ErrComplexLoad
	}
	if frequency <= 0 || phaseVelocity <= 0 {
		return Multisection{}, ErrBadFrequency
	}
	if sections < 1 {
		return Multisection{}, ErrBadSections
	}

	lnRatio := math.Log(rLoad / z0)
	scale := math.Pow(2.0, -float64(sections))
	impedances := make([]float64, sections)
	zPrev := z0
	for i := 0; i < sections; i++ {
		step := scale * float64(binomial(sections, i)) * lnRatio
		zPrev *= math.Exp(step)
		impedances[i] = zPrev
	}

	return Multisection{
		SectionImpedances: impedances,
		SectionLength:     phaseVelocity / (4.0 * frequency),
	}, nil
}

// binomial computes C(n, k) by the multiplicative rule; exact for the
// small section counts used here.
func binomial(n, k int) int {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
