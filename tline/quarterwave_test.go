package tline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/emfield/core"
	"github.com/katalvlaran/emfield/tline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuarterWave_Design verifies Z_T = √(Z₀·R_L), the λ/4 length, and
// that the transformer brings VSWR to 1 at the design frequency.
func TestQuarterWave_Design(t *testing.T) {
	qw, err := tline.DesignQuarterWave(50, 100, 1e9, core.C0, 1.5)
	require.NoError(t, err, "valid design inputs")

	assert.InDelta(t, math.Sqrt(5000.0), qw.ZTransformer, 1e-9, "Z_T = √(50·100)")
	assert.InDelta(t, core.C0/1e9/4.0, qw.Length, 1e-12, "length is λ/4")
	assert.InDelta(t, 2.0, qw.VSWRBefore, 1e-9, "unmatched VSWR is 2")
	assert.InDelta(t, 1.0, qw.VSWRAfter, 1e-9, "matched VSWR is 1 at f₀")
	assert.Greater(t, qw.BandwidthFractional, 0.0, "bandwidth is positive")
	assert.Less(t, qw.BandwidthFractional, 2.0, "bandwidth below the full band")
}

// TestQuarterWave_AlreadyMatched checks the degenerate Z_L=Z₀ case:
// every frequency matches, fractional bandwidth saturates at 2.
func TestQuarterWave_AlreadyMatched(t *testing.T) {
	qw, err := tline.DesignQuarterWave(50, 50, 1e9, core.C0, 1.5)
	require.NoError(t, err, "matched load is a legal design input")
	assert.InDelta(t, 50.0, qw.ZTransformer, 1e-12, "Z_T stays 50")
	assert.InDelta(t, 2.0, qw.BandwidthFractional, 1e-12, "full-band match")
}

// TestQuarterWave_RejectsReactiveLoad verifies ErrComplexLoad for a
// non-positive load resistance.
func TestQuarterWave_RejectsReactiveLoad(t *testing.T) {
	_, err := tline.DesignQuarterWave(50, -25, 1e9, core.C0, 1.5)
	assert.ErrorIs(t, err, tline.ErrComplexLoad, "negative load rejected")
	_, err = tline.DesignQuarterWave(50, 0, 1e9, core.C0, 1.5)
	assert.ErrorIs(t, err, tline.ErrComplexLoad, "zero load rejected")
}

// TestBinomial_SectionsMonotone verifies the binomial ladder climbs
// monotonically from Z₀ toward R_L and ends between the two.
func TestBinomial_SectionsMonotone(t *testing.T) {
	ms, err := tline.DesignBinomial(50, 200, 1e9, core.C0, 3)
	require.NoError(t, err, "valid multisection design")
	require.Len(t, ms.SectionImpedances, 3, "three sections requested")

	prev := 50.0
	for i, z := range ms.SectionImpedances {
		assert.Greater(t, z, prev, "section %d impedance increases toward the load", i)
		prev = z
	}
	assert.Less(t, prev, 200.0, "last section stays below R_L")
	assert.InDelta(t, core.C0/1e9/4.0, ms.SectionLength, 1e-12, "sections are λ/4")
}

// TestBinomial_SingleSectionMatchesQuarterWave verifies N=1 degenerates
// to the plain quarter-wave impedance √(Z₀·R_L).
func TestBinomial_SingleSectionMatchesQuarterWave(t *testing.T) {
	ms, err := tline.DesignBinomial(50, 100, 1e9, core.C0, 1)
	require.NoError(t, err, "single-section design")
	require.Len(t, ms.SectionImpedances, 1, "one section")
	assert.InDelta(t, math.Sqrt(5000.0), ms.SectionImpedances[0], 1e-9, "N=1 is √(Z₀·R_L)")
}

// TestBinomial_RejectsZeroSections verifies ErrBadSections.
func TestBinomial_RejectsZeroSections(t *testing.T) {
	_, err := tline.DesignBinomial(50, 100, 1e9, core.C0, 0)
	assert.ErrorIs(t, err, tline.ErrBadSections, "zero sections rejected")
}
