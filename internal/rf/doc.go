// Package rf provides the shared primitives for RF/microwave calculations.
//
// The package defines the pieces every other calculator package builds on:
//
//   - physical constants ([C], [Epsilon0], [Mu0], [Eta0], ...) and the
//     name-keyed lookup [Constant]
//   - the error taxonomy ([ErrUnknownMaterial], [ErrInvalidFrequency],
//     [ErrNumericalInstability], ...)
//   - small helpers for angular frequency and finiteness checks
//
// All quantities are SI. Frequencies are in Hz and converted to angular
// frequency with [Omega] where a formula needs it.
//
// # Example
//
//	copper, _ := material.FromName("Copper")
//	delta, err := copper.SkinDepth(1e9)
//	if errors.Is(err, rf.ErrUndefinedQuantity) {
//	    // not a conductor
//	}
//
// # Thread Safety
//
// Everything in this package is read-only after initialization and safe
// for concurrent use.
package rf
