package wave

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// phaseTolerance decides when a phase difference counts as exactly
// in phase or antiphase.
const phaseTolerance = 1e-12

// PhaseComparison describes how one sinusoid stands relative to another
// of the same frequency.
type PhaseComparison struct {
	// DeltaPhase is φ₁ − φ₂ folded into (−π, π].
	DeltaPhase float64
	// DeltaDegrees is DeltaPhase in degrees.
	DeltaDegrees float64
	// Relation classifies the difference.
	Relation PhaseRelation
	// TimeDelay is the equivalent lead of the first waveform in
	// seconds, Δφ/ω.
	TimeDelay float64
}

// Compare relates the phases of a and b. Both must share one frequency;
// ErrFrequencyMismatch otherwise.
func Compare(a, b Sinusoid) (PhaseComparison, error) {
	if a.Frequency <= 0 || b.Frequency <= 0 {
		return PhaseComparison{}, ErrBadFrequency
	}
	if math.Abs(a.Frequency-b.Frequency) > phaseTolerance*math.Max(a.Frequency, b.Frequency) {
		return PhaseComparison{}, ErrFrequencyMismatch
	}

	delta := core.NormalizeAngle(a.Phase - b.Phase)

	relation := Lagging
	switch {
	case math.Abs(delta) < phaseTolerance:
		relation = InPhase
	case math.Abs(math.Abs(delta)-math.Pi) < phaseTolerance:
		relation = AntiPhase
	case delta > 0:
		relation = Leading
	}

	return PhaseComparison{
		DeltaPhase:   delta,
		DeltaDegrees: delta * 180.0 / math.Pi,
		Relation:     relation,
		TimeDelay:    delta / a.Omega(),
	}, nil
}
