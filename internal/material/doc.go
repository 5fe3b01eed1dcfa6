// Package material provides built-in material data and the [Medium] type.
//
// The built-in table covers common conductors and dielectrics plus
// "Vacuum" as the reference medium. Table accessors ([Dielectric],
// [Permittivity], [Permeability], [LossTangent], [Conductivity]) fail with
// [rf.ErrUnknownMaterial] for names outside the table.
//
// A [Medium] is an immutable value holding relative and absolute
// properties. Frequency-dependent quantities are computed on demand:
//
//	teflon, _ := material.FromName("Teflon")
//	gamma, _ := teflon.PropagationConstant(1e9)
//	eta, _ := teflon.IntrinsicImpedance(1e9)
//
// Every Medium formula also has a name-keyed form ([SkinDepth],
// [Wavelength], ...) that resolves the table entry and delegates, so both
// forms return identical results.
//
// # Sign convention
//
// Lossy permittivity is written e*(1 + j*tanD), and the propagation
// constant follows gamma = alpha + j*beta with alpha >= 0.
package material
