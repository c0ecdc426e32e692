package antenna

import (
	"math"

	"github.com/katalvlaran/emfield/core"
)

// FriisLink is a free-space link between two aligned, matched
// antennas. Gains are linear ratios.
type FriisLink struct {
	Power     float64
	GainTx    float64
	GainRx    float64
	Frequency float64
	Distance  float64
}

// NewFriisLink builds the link; power, frequency, and distance must
// be positive.
func NewFriisLink(power, gainTx, gainRx, frequency, distance float64) (FriisLink, error) {
	if power <= 0 || frequency <= 0 || distance <= 0 {
		return FriisLink{}, ErrBadLink
	}
	return FriisLink{Power: power, GainTx: gainTx, GainRx: gainRx, Frequency: frequency, Distance: distance}, nil
}

// Wavelength is λ = c₀/f.
func (l FriisLink) Wavelength() float64 {
	return core.C0 / l.Frequency
}

// PathLoss is the free-space loss (4πR/λ)² as a linear ratio.
func (l FriisLink) PathLoss() float64 {
	x := 4.0 * math.Pi * l.Distance / l.Wavelength()
	return x * x
}

// PathLossDB is the path loss in dB.
func (l FriisLink) PathLossDB() float64 {
	return core.PowerToDB(l.PathLoss())
}

// ReceivedPower is P_r = P_tG_tG_r/L in watts.
func (l FriisLink) ReceivedPower() float64 {
	return l.Power * l.GainTx * l.GainRx / l.PathLoss()
}

// ReceivedPowerDBW is the received power in dBW.
func (l FriisLink) ReceivedPowerDBW() float64 {
	return core.WattsToDBW(l.ReceivedPower())
}

// ReceivedPowerDBm is the received power in dBm.
func (l FriisLink) ReceivedPowerDBm() float64 {
	return core.WattsToDBm(l.ReceivedPower())
}

// EIRP is the effective isotropic radiated power P_tG_t.
func (l FriisLink) EIRP() float64 {
	return l.Power * l.GainTx
}

// EIRPDBW is the EIRP in dBW.
func (l FriisLink) EIRPDBW() float64 {
	return core.WattsToDBW(l.EIRP())
}

// PowerDensity is the flux EIRP/4πR² at the receiver in W/m².
func (l FriisLink) PowerDensity() float64 {
	return l.EIRP() / (4.0 * math.Pi * l.Distance * l.Distance)
}

// SampleVsDistance tabulates received power in dBm over
// [rMin, rMax] at n points.
func (l FriisLink) SampleVsDistance(rMin, rMax float64, n int) (distances, dbm []float64) {
	distances = core.Linspace(rMin, rMax, n)
	dbm = core.Map(distances, func(r float64) float64 {
		at := l
		at.Distance = r
		return at.ReceivedPowerDBm()
	})
	return distances, dbm
}

// RadarSystem is a monostatic radar with one antenna of linear gain
// Gain observing a target of radar cross-section CrossSection m².
type RadarSystem struct {
	Power        float64
	Gain         float64
	Frequency    float64
	CrossSection float64
}

// NewRadarSystem builds the radar; power, frequency, and cross
// section must be positive.
func NewRadarSystem(power, gain, frequency, crossSection float64) (RadarSystem, error) {
	if power <= 0 || frequency <= 0 || crossSection <= 0 {
		return RadarSystem{}, ErrBadLink
	}
	return RadarSystem{Power: power, Gain: gain, Frequency: frequency, CrossSection: crossSection}, nil
}

// Wavelength is λ = c₀/f.
func (r RadarSystem) Wavelength() float64 {
	return core.C0 / r.Frequency
}

// ReceivedPower is the radar range equation
// P_r = P_tG²λ²σ/((4π)³R⁴).
func (r RadarSystem) ReceivedPower(distance float64) (float64, error) {
	if distance <= 0 {
		return 0, ErrBadLink
	}
	lambda := r.Wavelength()
	num := r.Power * r.Gain * r.Gain * lambda * lambda * r.CrossSection
	den := math.Pow(4.0*math.Pi, 3) * math.Pow(distance, 4)
	return num / den, nil
}

// MaxRange inverts the range equation for the farthest target whose
// echo still reaches minDetectable watts.
func (r RadarSystem) MaxRange(minDetectable float64) (float64, error) {
	if minDetectable <= 0 {
		return 0, ErrBadLink
	}
	lambda := r.Wavelength()
	num := r.Power * r.Gain * r.Gain * lambda * lambda * r.CrossSection
	den := math.Pow(4.0*math.Pi, 3) * minDetectable
	return math.Pow(num/den, 0.25), nil
}
