package tline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/emfield/core"
)

// LineParameters are the distributed RLGC constants of a uniform line,
// all per meter.
type LineParameters struct {
	R float64 // series resistance (Ω/m)
	L float64 // series inductance (H/m)
	G float64 // shunt conductance (S/m)
	C float64 // shunt capacitance (F/m)
}

// CharacteristicImpedance computes Z₀ = √((R+jωL)/(G+jωC)).
func (p LineParameters) CharacteristicImpedance(frequency float64) complex128 {
	omega := 2.0 * math.Pi * frequency
	series := complex(p.R, omega*p.L)
	shunt := complex(p.G, omega*p.C)
	return cmplx.Sqrt(series / shunt)
}

// PropagationConstant computes γ = √((R+jωL)(G+jωC)) on the branch
// with α ≥ 0.
func (p LineParameters) PropagationConstant(frequency float64) complex128 {
	omega := 2.0 * math.Pi * frequency
	gamma := cmplx.Sqrt(complex(p.R, omega*p.L) * complex(p.G, omega*p.C))
	if real(gamma) < 0 {
		gamma = -gamma
	}
	return gamma
}

// Z0Lossless is the high-frequency limit √(L/C).
func (p LineParameters) Z0Lossless() float64 { return math.Sqrt(p.L / p.C) }

// PhaseVelocityLossless is 1/√(LC).
func (p LineParameters) PhaseVelocityLossless() float64 { return 1.0 / math.Sqrt(p.L*p.C) }

// conductorSkinDepth is δ = 1/√(πfμσ) for the conductor loss terms.
func conductorSkinDepth(frequency, mu, sigma float64) float64 {
	return 1.0 / math.Sqrt(math.Pi*frequency*mu*sigma)
}

// CoaxialLine is a coaxial geometry: inner conductor radius a, outer
// shield radius b > a, dielectric εᵣ.
type CoaxialLine struct {
	InnerRadius     float64
	OuterRadius     float64
	EpsilonR        float64
	MuR             float64
	SigmaConductor  float64
	SigmaDielectric float64
}

// NewCoaxialLine builds a lossless coaxial line.
func NewCoaxialLine(innerRadius, outerRadius, epsilonR float64) CoaxialLine {
	return CoaxialLine{InnerRadius: innerRadius, OuterRadius: outerRadius, EpsilonR: epsilonR, MuR: 1.0}
}

// Parameters derives the RLGC constants:
// L = μ·ln(b/a)/2π, C = 2πε/ln(b/a), with skin-effect R and dielectric
// G when the conductivities are set.
func (c CoaxialLine) Parameters(frequency float64) (LineParameters, error) {
	if c.InnerRadius <= 0 || c.OuterRadius <= c.InnerRadius || c.EpsilonR <= 0 {
		return LineParameters{}, ErrBadGeometry
	}
	mu := c.MuR * core.Mu0
	eps := c.EpsilonR * core.Epsilon0
	lnRatio := math.Log(c.OuterRadius / c.InnerRadius)

	p := LineParameters{
		L: mu * lnRatio / (2.0 * math.Pi),
		C: 2.0 * math.Pi * eps / lnRatio,
	}
	if c.SigmaConductor > 0 && frequency > 0 {
		delta := conductorSkinDepth(frequency, mu, c.SigmaConductor)
		rInner := 1.0 / (2.0 * math.Pi * c.InnerRadius * delta * c.SigmaConductor)
		rOuter := 1.0 / (2.0 * math.Pi * c.OuterRadius * delta * c.SigmaConductor)
		p.R = rInner + rOuter
	}
	if c.SigmaDielectric > 0 {
		p.G = 2.0 * math.Pi * c.SigmaDielectric / lnRatio
	}
	return p, nil
}

// TwoWireLine is a pair of parallel round wires: radius a, center
// separation d, dielectric εᵣ.
type TwoWireLine struct {
	WireRadius      float64
	Separation      float64
	EpsilonR        float64
	MuR             float64
	SigmaConductor  float64
	SigmaDielectric float64
}

// NewTwoWireLine builds a lossless two-wire line.
func NewTwoWireLine(wireRadius, separation, epsilonR float64) TwoWireLine {
	return TwoWireLine{WireRadius: wireRadius, Separation: separation, EpsilonR: epsilonR, MuR: 1.0}
}

// Parameters derives the RLGC constants via acosh(d/2a):
// L = μ·acosh(d/2a)/π, C = πε/acosh(d/2a).
func (w TwoWireLine) Parameters(frequency float64) (LineParameters, error) {
	if w.WireRadius <= 0 || w.Separation <= 2.0*w.WireRadius || w.EpsilonR <= 0 {
		return LineParameters{}, ErrBadGeometry
	}
	mu := w.MuR * core.Mu0
	eps := w.EpsilonR * core.Epsilon0
	acoshVal := math.Acosh(w.Separation / (2.0 * w.WireRadius))

	p := LineParameters{
		L: mu * acoshVal / math.Pi,
		C: math.Pi * eps / acoshVal,
	}
	if w.SigmaConductor > 0 && frequency > 0 {
		delta := conductorSkinDepth(frequency, mu, w.SigmaConductor)
		p.R = 2.0 / (math.Pi * w.WireRadius * delta * w.SigmaConductor)
	}
	if w.SigmaDielectric > 0 {
		p.G = math.Pi * w.SigmaDielectric / acoshVal
	}
	return p, nil
}

// MicrostripLine is a thin microstrip of width w on a substrate of
// height h and permittivity εᵣ (Hammerstad–Jensen closed forms).
type MicrostripLine struct {
	Width    float64
	Height   float64
	EpsilonR float64
}

// NewMicrostripLine builds a microstrip geometry.
func NewMicrostripLine(width, height, epsilonR float64) MicrostripLine {
	return MicrostripLine{Width: width, Height: height, EpsilonR: epsilonR}
}

// EffectiveEpsilonR is the quasi-static effective permittivity.
func (m MicrostripLine) EffectiveEpsilonR() float64 {
	u := m.Width / m.Height
	f := math.Pow(1.0+12.0/u, -0.5)
	if u <= 1.0 {
		f += 0.04 * (1.0 - u) * (1.0 - u)
	}
	return (m.EpsilonR+1.0)/2.0 + (m.EpsilonR-1.0)/2.0*f
}

// CharacteristicImpedance evaluates the Hammerstad–Jensen Z₀, with the
// narrow (w/h ≤ 1) and wide branches.
func (m MicrostripLine) CharacteristicImpedance() (float64, error) {
	if m.Width <= 0 || m.Height <= 0 || m.EpsilonR <= 0 {
		return 0, ErrBadGeometry
	}
	u := m.Width / m.Height
	epsEff := m.EffectiveEpsilonR()
	if u <= 1.0 {
		return (60.0 / math.Sqrt(epsEff)) * math.Log(8.0/u+u/4.0), nil
	}
	return (120.0 * math.Pi) / (math.Sqrt(epsEff) * (u + 1.393 + 0.667*math.Log(u+1.444))), nil
}

// PhaseVelocity is c₀/√(ε_eff).
func (m MicrostripLine) PhaseVelocity() float64 {
	return core.C0 / math.Sqrt(m.EffectiveEpsilonR())
}

// Parameters recovers the lossless L and C from Z₀ and v_p.
func (m MicrostripLine) Parameters() (LineParameters, error) {
	z0, err := m.CharacteristicImpedance()
	if err != nil {
		return LineParameters{}, err
	}
	vp := m.PhaseVelocity()
	return LineParameters{L: z0 / vp, C: 1.0 / (z0 * vp)}, nil
}
