package fresnel

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// ObliqueIncidence describes a wave striking the boundary between two
// lossless non-magnetic dielectrics at an angle.
type ObliqueIncidence struct {
	// Er1 is the relative permittivity on the incidence side.
	Er1 float64
	// Er2 is the relative permittivity on the transmission side.
	Er2 float64
	// ThetaI is the incidence angle from the normal, radians.
	ThetaI float64
}

// NewObliqueIncidence validates the media and angle.
func NewObliqueIncidence(er1, er2, thetaI float64) (ObliqueIncidence, error) {
	if er1 <= 0 || er2 <= 0 {
		return ObliqueIncidence{}, ErrBadMedium
	}
	if thetaI < 0 || thetaI >= math.Pi/2.0 || math.IsNaN(thetaI) {
		return ObliqueIncidence{}, ErrBadIncidence
	}
	return ObliqueIncidence{Er1: er1, Er2: er2, ThetaI: thetaI}, nil
}

// N1 returns the refractive index √εᵣ₁.
func (oi ObliqueIncidence) N1() float64 { return math.Sqrt(oi.Er1) }

// N2 returns the refractive index √εᵣ₂.
func (oi ObliqueIncidence) N2() float64 { return math.Sqrt(oi.Er2) }

// ThetaT applies Snell's law, sin θ_t = (n₁/n₂)·sin θᵢ. None under
// total internal reflection.
func (oi ObliqueIncidence) ThetaT() core.Maybe {
	sinT := oi.N1() / oi.N2() * math.Sin(oi.ThetaI)
	if math.Abs(sinT) > 1.0 {
		return core.None()
	}
	return core.Some(math.Asin(core.Clamp(sinT, -1.0, 1.0)))
}

// IsTIR reports whether total internal reflection occurs.
func (oi ObliqueIncidence) IsTIR() bool {
	return !oi.ThetaT().Defined
}

// CriticalAngle returns θ_c = asin(n₂/n₁), defined only when n₁ > n₂.
func (oi ObliqueIncidence) CriticalAngle() core.Maybe {
	if oi.N1() <= oi.N2() {
		return core.None()
	}
	return core.Some(math.Asin(core.Clamp(oi.N2()/oi.N1(), -1.0, 1.0)))
}

// BrewsterAngle returns θ_B = atan(n₂/n₁), the parallel-polarization
// null. Always defined.
func (oi ObliqueIncidence) BrewsterAngle() float64 {
	return math.Atan(oi.N2() / oi.N1())
}

// GammaPerp returns the perpendicular (TE/s) reflection coefficient
// using η ∝ 1/n. None under TIR.
func (oi ObliqueIncidence) GammaPerp() core.Maybe {
	thetaT := oi.ThetaT()
	if !thetaT.Defined {
		return core.None()
	}
	eta1 := 1.0 / oi.N1()
	eta2 := 1.0 / oi.N2()
	num := eta2*math.Cos(oi.ThetaI) - eta1*math.Cos(thetaT.Value)
	den := eta2*math.Cos(oi.ThetaI) + eta1*math.Cos(thetaT.Value)
	return core.Some(num / den)
}

// GammaPar returns the parallel (TM/p) reflection coefficient. None
// under TIR.
func (oi ObliqueIncidence) GammaPar() core.Maybe {
	thetaT := oi.ThetaT()
	if !thetaT.Defined {
		return core.None()
	}
	eta1 := 1.0 / oi.N1()
	eta2 := 1.0 / oi.N2()
	num := eta2*math.Cos(thetaT.Value) - eta1*math.Cos(oi.ThetaI)
	den := eta2*math.Cos(thetaT.Value) + eta1*math.Cos(oi.ThetaI)
	return core.Some(num / den)
}

// TauPerp returns the perpendicular transmission coefficient 1+Γ⊥.
// None under TIR.
func (oi ObliqueIncidence) TauPerp() core.Maybe {
	g := oi.GammaPerp()
	if !g.Defined {
		return core.None()
	}
	return core.Some(1.0 + g.Value)
}

// TauPar returns the parallel transmission coefficient
// (1+Γ∥)·cos θᵢ/cos θ_t. None under TIR.
func (oi ObliqueIncidence) TauPar() core.Maybe {
	g := oi.GammaPar()
	thetaT := oi.ThetaT()
	if !g.Defined || !thetaT.Defined {
		return core.None()
	}
	return core.Some((1.0 + g.Value) * math.Cos(oi.ThetaI) / math.Cos(thetaT.Value))
}

// ReflectancePerp returns Γ⊥², or 1 under TIR where all power reflects.
func (oi ObliqueIncidence) ReflectancePerp() float64 {
	g := oi.GammaPerp()
	if !g.Defined {
		return 1.0
	}
	return g.Value * g.Value
}

// ReflectancePar returns Γ∥², or 1 under TIR.
func (oi ObliqueIncidence) ReflectancePar() float64 {
	g := oi.GammaPar()
	if !g.Defined {
		return 1.0
	}
	return g.Value * g.Value
}

// SweepAngles samples both reflection coefficients over [0, π/2) at n
// angles. Coefficients inside the TIR region are reported as 1.
func SweepAngles(er1, er2 float64, n int) (AngleSweep, error) {
	if er1 <= 0 || er2 <= 0 {
		return AngleSweep{}, ErrBadMedium
	}
	sweep := AngleSweep{
		Angles:    core.Linspace(0, math.Pi/2.0*(1.0-1e-9), n),
		GammaPerp: make([]float64, 0, n),
		GammaPar:  make([]float64, 0, n),
	}
	for _, theta := range sweep.Angles {
		oi := ObliqueIncidence{Er1: er1, Er2: er2, ThetaI: theta}
		sweep.GammaPerp = append(sweep.GammaPerp, oi.GammaPerp().Or(1.0))
		sweep.GammaPar = append(sweep.GammaPar, oi.GammaPar().Or(1.0))
	}
	return sweep, nil
}
