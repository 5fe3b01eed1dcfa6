// Package tline provides transmission line models built on per-unit-length
// RLGC parameters.
//
//   - [RLGC]: telegrapher's-equation propagation constant and characteristic
//     impedance ([GammaFromRLGC], [Z0FromRLGC])
//   - [CoaxialCable]: RLGC of a coaxial geometry from its dielectric and
//     conductor media, with conductor skin effect from modified Bessel
//     functions
//
// # Example
//
//	cable, _ := tline.NewCoaxialCable(0.45e-3, 1.475e-3)
//	p, err := cable.CalculateRLGC(10e6)
//	if errors.Is(err, rf.ErrNumericalInstability) {
//	    // conductor many skin depths thick; Bessel terms overflowed
//	}
//	z0, _ := p.Z0(10e6)
//
// # Thread Safety
//
// RLGC values and the package functions are safe for concurrent use.
// CoaxialCable stores its last result and is NOT thread-safe.
package tline
