// Package wave generates time- and space-domain waveforms: damped
// sinusoids, traveling plane waves, phase comparisons between
// waveforms, and time-average power relations.
//
// 🚀 What is wave?
//
//	The time-domain face of the engine. A sinusoid
//
//	  y(t) = A · e^{−αt} · cos(2πf·t + φ)
//
//	and its traveling-wave generalization
//
//	  y(x,t) = A · e^{∓αx} · cos(ωt ∓ βx + φ)
//
//	are evaluated pointwise and sampled into plot-ready curves.
//
// ✨ Key features:
//   - damped/undamped sinusoids with superposition
//   - traveling waves in free space, dielectrics, or explicit (α, β)
//   - phase lead/lag comparison with phasor diagram data
//   - Poynting, radiation-intensity and mismatch power helpers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/emfield/wave"
//
//	s := wave.NewSinusoid(5, 1e6, 0)
//	ts, ys := s.Sample(0, 2e-6, 400)
//
//	cmp, err := wave.Compare(w1, w2) // who leads whom, and by how much
//
// Sampling honors the caller's N as a hard bound: N=0 yields empty
// curves, never an error.
package wave
