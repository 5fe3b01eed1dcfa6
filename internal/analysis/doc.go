// Package analysis evaluates rf quantities over frequency.
//
// The package includes:
//
//   - [Sweep]: linear or logarithmic frequency grids
//   - [Registry]: named quantities over a [material.Medium] or a coaxial line
//   - [RunMedium], [RunCable]: evaluate a list of quantities over a sweep
//   - [ImpulseResponse]: time-domain impulse and step response of a
//     transfer function, via an inverse FFT
//
// # Failed Samples
//
// A sweep never aborts on a single bad sample. Quantities that are
// undefined for the medium, or that overflow, are stored as NaN and the
// error is kept in [Result.Errors]:
//
//	res, err := analysis.RunMedium(teflon, sweep, []string{"skin_depth"})
//	// err == nil, res.Series["skin_depth"] is all NaN, len(res.Errors) == sweep.Points
package analysis
