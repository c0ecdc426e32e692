package core

import "math"

// Decibel and power-level conversions. Power ratios use 10·log₁₀,
// amplitude ratios 20·log₁₀.

// PowerToDB converts a linear power ratio to dB.
func PowerToDB(ratio float64) float64 { return 10.0 * math.Log10(ratio) }

// PowerFromDB converts dB to a linear power ratio.
func PowerFromDB(db float64) float64 { return math.Pow(10.0, db/10.0) }

// AmplitudeToDB converts a linear amplitude ratio to dB.
func AmplitudeToDB(ratio float64) float64 { return 20.0 * math.Log10(ratio) }

// AmplitudeFromDB converts dB to a linear amplitude ratio.
func AmplitudeFromDB(db float64) float64 { return math.Pow(10.0, db/20.0) }

// WattsToDBm converts watts to dBm.
func WattsToDBm(w float64) float64 { return 10.0*math.Log10(w) + 30.0 }

// DBmToWatts converts dBm to watts.
func DBmToWatts(dbm float64) float64 { return math.Pow(10.0, (dbm-30.0)/10.0) }

// WattsToDBW converts watts to dBW.
func WattsToDBW(w float64) float64 { return 10.0 * math.Log10(w) }

// DBWToWatts converts dBW to watts.
func DBWToWatts(dbw float64) float64 { return math.Pow(10.0, dbw/10.0) }

// NepersToDB converts an attenuation in nepers to decibels.
func NepersToDB(np float64) float64 { return np * NepersToDecibels }

// DBToNepers converts an attenuation in decibels to nepers.
func DBToNepers(db float64) float64 { return db / NepersToDecibels }
