package core

import "math"

// Physical constants, CODATA 2018 exact SI values.
const (
	// C0 is the speed of light in vacuum (m/s).
	C0 = 299_792_458.0

	// Epsilon0 is the vacuum permittivity (F/m).
	Epsilon0 = 8.854_187_812_8e-12

	// Eta0 is the intrinsic impedance of free space (Ω).
	Eta0 = 376.730_313_668

	// ElementaryCharge is the elementary charge (C).
	ElementaryCharge = 1.602_176_634e-19

	// ElectronMass is the electron rest mass (kg).
	ElectronMass = 9.109_383_701_5e-31

	// Boltzmann is the Boltzmann constant (J/K).
	Boltzmann = 1.380_649e-23

	// Planck is the Planck constant (J·s).
	Planck = 6.626_070_15e-34

	// NepersToDecibels converts nepers to decibels: 20/ln(10).
	NepersToDecibels = 8.685_889_638_065_037
)

// Mu0 is the vacuum permeability (H/m), 4π·10⁻⁷.
var Mu0 = 4.0e-7 * math.Pi
