package tline_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/emfield/tline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyze_TextbookMatch verifies the canonical Z₀=50 Ω, Z_L=100 Ω
// case: Γ = 1/3 and VSWR = 2.
func TestAnalyze_TextbookMatch(t *testing.T) {
	rep, err := tline.Analyze(50, complex(100, 0))
	require.NoError(t, err, "valid inputs must not error")

	assert.InDelta(t, 1.0/3.0, real(rep.Gamma), 1e-12, "Γ = (100−50)/(100+50) = 1/3")
	assert.InDelta(t, 0.0, imag(rep.Gamma), 1e-12, "real load gives real Γ")
	assert.InDelta(t, 2.0, rep.VSWR, 1e-12, "VSWR = (1+⅓)/(1−⅓) = 2")
	assert.InDelta(t, 8.0/9.0, rep.Delivered, 1e-12, "delivered power 1−|Γ|²")
}

// TestAnalyze_PerfectMatch verifies that a matched load has VSWR 1 and
// an undefined (infinite) return loss instead of a NaN or ±Inf.
func TestAnalyze_PerfectMatch(t *testing.T) {
	rep, err := tline.Analyze(50, complex(50, 0))
	require.NoError(t, err, "matched load is valid input")

	assert.Equal(t, complex128(0), rep.Gamma, "matched load reflects nothing")
	assert.InDelta(t, 1.0, rep.VSWR, 1e-12, "matched VSWR is 1")
	assert.False(t, rep.ReturnLossDB.Defined, "return loss is undefined at perfect match")
}

// TestVSWR_FullReflectionClamped ensures a short circuit (|Γ|=1) yields
// a large finite VSWR rather than a division by zero.
func TestVSWR_FullReflectionClamped(t *testing.T) {
	rep, err := tline.Analyze(50, complex(0, 0))
	require.NoError(t, err, "short circuit is a legal load")

	assert.InDelta(t, 1.0, rep.GammaMagnitude, 1e-12, "short reflects fully")
	assert.False(t, math.IsInf(rep.VSWR, 1), "VSWR stays finite")
	assert.Greater(t, rep.VSWR, 1e10, "clamped VSWR is still effectively infinite")
}

// TestAnalyze_BadImpedance checks rejection of non-physical Z₀.
func TestAnalyze_BadImpedance(t *testing.T) {
	_, err := tline.Analyze(0, complex(50, 0))
	assert.ErrorIs(t, err, tline.ErrBadImpedance, "Z₀=0 must be rejected")

	_, err = tline.Analyze(-50, complex(50, 0))
	assert.ErrorIs(t, err, tline.ErrBadImpedance, "negative Z₀ must be rejected")
}

// TestInputImpedance_QuarterWaveInversion verifies the λ/4 impedance
// inversion Zin = Z₀²/Z_L at βl = π/2.
func TestInputImpedance_QuarterWaveInversion(t *testing.T) {
	zin := tline.InputImpedanceLossless(50, complex(100, 0), math.Pi/2)
	assert.InDelta(t, 25.0, real(zin), 1e-6, "λ/4 inverts: 50²/100 = 25")
	assert.InDelta(t, 0.0, imag(zin), 1e-6, "real load stays real at λ/4")
}

// TestInputImpedance_HalfWavePeriodicity verifies Zin(βl=π) = Z_L.
func TestInputImpedance_HalfWavePeriodicity(t *testing.T) {
	zl := complex(30, 40)
	zin := tline.InputImpedanceLossless(50, zl, math.Pi)
	assert.InDelta(t, real(zl), real(zin), 1e-6, "λ/2 reproduces the load (Re)")
	assert.InDelta(t, imag(zl), imag(zin), 1e-6, "λ/2 reproduces the load (Im)")
}

// TestInputImpedanceLossy_ReducesToLossless checks that the tanh form
// agrees with the tan form when α = 0.
func TestInputImpedanceLossy_ReducesToLossless(t *testing.T) {
	beta := 2.0
	length := 0.3
	zl := complex(75, -25)

	lossless := tline.InputImpedanceLossless(50, zl, beta*length)
	lossy := tline.InputImpedanceLossy(complex(50, 0), zl, complex(0, beta), length)
	assert.InDelta(t, 0.0, cmplx.Abs(lossless-lossy), 1e-9, "α=0 lossy form matches lossless")
}
