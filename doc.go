// Package emfield is a pure, stateless electromagnetics computation
// engine — closed-form solvers, one package per physics topic, each
// turning physical inputs into scalar results and sampled curves.
//
// 🚀 What is emfield?
//
//	A deterministic numeric library that brings together:
//		• Core primitives: constants, phasors, vectors, dB forms, sampling
//		• Transmission lines: Γ, VSWR, Smith chart, matching networks
//		• Waves: sinusoids, traveling waves, phase comparison, power flow
//		• Media: α/β, loss tangent, skin depth, attenuation profiles
//		• Interfaces: Fresnel coefficients, Snell, TIR, Brewster angle
//		• Polarization: Stokes parameters, ellipse geometry, handedness
//		• Waveguides: TE/TM modes, cutoff, dispersion, single-mode band
//		• Fields: preset scalar/vector fields, grad/div/curl, grid sampling
//		• Statics: charges, images, Gauss's law, Biot–Savart, L and C
//		• Circuits: Faraday, transformers, RL/RC/RLC, displacement current
//		• Antennas: dipoles, uniform arrays, Friis and radar link budgets
//
// ✨ Why choose emfield?
//
//   - Pure functions – same inputs, same outputs, no shared state
//   - Honest edge cases – undefined-by-physics results are explicit
//     absences, never NaN or sentinel magic numbers
//   - Plot-ready – every solver can tabulate its curves and grids at a
//     caller-chosen resolution
//   - SI throughout – callers pass base units, the engine never guesses
//
// Everything is organized as flat top-level packages:
//
//	core/      — constants, Phasor, Vector3, Maybe, dB and sampling helpers
//	tline/     — transmission-line solver and matching networks
//	wave/      — sinusoids, traveling waves, Poynting power
//	medium/    — propagation constants and loss classification
//	fresnel/   — planar-interface reflection and refraction
//	polarize/  — polarization states and the Poincaré sphere
//	waveguide/ — rectangular and circular waveguide modes
//	field/     — scalar/vector field presets and differential operators
//	estat/     — electrostatics: charges, images, Gauss, capacitance
//	mstat/     — magnetostatics: Biot–Savart, Ampère forms, inductance
//	circuit/   — time-varying fields and lumped transients
//	antenna/   — radiators, arrays, link budgets
//
//	go get github.com/katalvlaran/emfield
package emfield
