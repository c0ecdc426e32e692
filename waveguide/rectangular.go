package waveguide

import (
	"math"
	"sort"

	"github.com/katalvlaran/emfield/core"
)

// Rectangular is an a×b hollow guide filled with a lossless medium.
type Rectangular struct {
	// A is the broad-wall width in meters.
	A float64
	// B is the narrow-wall height in meters.
	B float64
	// EpsilonR and MuR describe the filling medium.
	EpsilonR float64
	MuR      float64
}

// NewRectangular validates the guide geometry and filling.
func NewRectangular(a, b, epsilonR, muR float64) (Rectangular, error) {
	if a <= 0 || b <= 0 || b > a {
		return Rectangular{}, ErrBadGeometry
	}
	if epsilonR <= 0 || muR <= 0 {
		return Rectangular{}, ErrBadMedium
	}
	return Rectangular{A: a, B: b, EpsilonR: epsilonR, MuR: muR}, nil
}

// NewRectangularAir builds an air-filled guide.
func NewRectangularAir(a, b float64) (Rectangular, error) {
	return NewRectangular(a, b, 1.0, 1.0)
}

// MediumVelocity returns the light speed in the filling, c/√(εᵣμᵣ).
func (g Rectangular) MediumVelocity() float64 {
	return core.C0 / math.Sqrt(g.EpsilonR*g.MuR)
}

// CutoffFrequency returns f_c = (v/2)·√((m/a)² + (n/b)²) for a TE or
// TM index pair.
func (g Rectangular) CutoffFrequency(m, n int) (float64, error) {
	if m < 0 || n < 0 || (m == 0 && n == 0) {
		return 0, ErrBadMode
	}
	mf := float64(m) / g.A
	nf := float64(n) / g.B
	return 0.5 * g.MediumVelocity() * math.Sqrt(mf*mf+nf*nf), nil
}

// ModeAt evaluates one mode at the given operating frequency. TE needs
// m,n ≥ 0 with not both zero; TM needs m,n ≥ 1.
func (g Rectangular) ModeAt(family ModeFamily, m, n int, frequency float64) (Mode, error) {
	if frequency <= 0 {
		return Mode{}, ErrBadFrequency
	}
	if family == TM && (m < 1 || n < 1) {
		return Mode{}, ErrBadMode
	}
	fc, err := g.CutoffFrequency(m, n)
	if err != nil {
		return Mode{}, err
	}

	v := g.MediumVelocity()
	mode := Mode{
		Family:           family,
		M:                m,
		N:                n,
		CutoffFrequency:  fc,
		CutoffWavelength: v / fc,
		Propagates:       frequency > fc,
	}
	if !mode.Propagates {
		mode.GuideWavelength = math.Inf(1)
		mode.PhaseVelocity = math.Inf(1)
		return mode, nil
	}

	ratio := fc / frequency
	factor := math.Sqrt(1.0 - ratio*ratio)
	eta := core.Eta0 * math.Sqrt(g.MuR/g.EpsilonR)

	mode.Beta = 2.0 * math.Pi * frequency / v * factor
	mode.GuideWavelength = (v / frequency) / factor
	mode.PhaseVelocity = v / factor
	mode.GroupVelocity = v * factor
	if family == TE {
		mode.WaveImpedance = eta / factor
	} else {
		mode.WaveImpedance = eta * factor
	}
	return mode, nil
}

// ModesBelow enumerates every TE and TM mode with cutoff at or below
// maxFrequency, indices capped at maxOrder, evaluated at maxFrequency
// and sorted ascending by cutoff.
func (g Rectangular) ModesBelow(maxFrequency float64, maxOrder int) ([]Mode, error) {
	if maxFrequency <= 0 {
		return nil, ErrBadFrequency
	}
	var modes []Mode
	for m := 0; m <= maxOrder; m++ {
		for n := 0; n <= maxOrder; n++ {
			if m == 0 && n == 0 {
				continue
			}
			fc, err := g.CutoffFrequency(m, n)
			if err != nil {
				return nil, err
			}
			if fc > maxFrequency {
				continue
			}
			te, err := g.ModeAt(TE, m, n, maxFrequency)
			if err != nil {
				return nil, err
			}
			modes = append(modes, te)
			if m >= 1 && n >= 1 {
				tm, err := g.ModeAt(TM, m, n, maxFrequency)
				if err != nil {
					return nil, err
				}
				modes = append(modes, tm)
			}
		}
	}
	sort.SliceStable(modes, func(i, j int) bool {
		return modes[i].CutoffFrequency < modes[j].CutoffFrequency
	})
	return modes, nil
}

// DominantCutoff returns the TE₁₀ cutoff frequency.
func (g Rectangular) DominantCutoff() float64 {
	fc, _ := g.CutoffFrequency(1, 0)
	return fc
}

// SingleModeBand returns the band where only TE₁₀ propagates, from its
// cutoff up to the next cutoff of TE₂₀ or TE₀₁.
func (g Rectangular) SingleModeBand() (low, high float64) {
	fc10, _ := g.CutoffFrequency(1, 0)
	fc20, _ := g.CutoffFrequency(2, 0)
	fc01, _ := g.CutoffFrequency(0, 1)
	return fc10, math.Min(fc20, fc01)
}
