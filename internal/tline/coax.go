package tline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
)

const (
	DefaultOuterThickness = 70e-6
	DefaultDielectric     = "Polyethylene"
	DefaultConductor      = "Copper"
)

// CoaxialCable is a coaxial line whose RLGC parameters follow from its
// geometry and materials. The inner conductor radius is ID, the outer
// conductor spans OD to OD+OuterThickness, all in meters.
//
// CalculateRLGC stores its result on the cable. The cable is not internally
// synchronized; concurrent calls on one instance must be serialized.
type CoaxialCable struct {
	ID             float64
	OD             float64
	OuterThickness float64
	Dielectric     material.Medium
	Conductor      material.Medium

	rlgc     RLGC
	freq     float64
	computed bool
}

// NewCoaxialCable returns a cable with the default outer conductor thickness,
// polyethylene dielectric and copper conductors.
func NewCoaxialCable(id, od float64) (*CoaxialCable, error) {
	diel, err := material.FromName(DefaultDielectric)
	if err != nil {
		return nil, err
	}
	cond, err := material.FromName(DefaultConductor)
	if err != nil {
		return nil, err
	}
	c := &CoaxialCable{
		ID:             id,
		OD:             od,
		OuterThickness: DefaultOuterThickness,
		Dielectric:     diel,
		Conductor:      cond,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CoaxialCable) validate() error {
	if !(c.ID > 0) || !(c.OD > c.ID) || !(c.OuterThickness > 0) ||
		!rf.IsFinite(c.OD) || !rf.IsFinite(c.OuterThickness) {
		return fmt.Errorf("%w: coax geometry ID=%g OD=%g thickness=%g (need 0 < ID < OD, thickness > 0)",
			rf.ErrParameterBounds, c.ID, c.OD, c.OuterThickness)
	}
	if c.Conductor.Conductivity() <= 0 {
		return fmt.Errorf("%w: conductor %q has zero conductivity", rf.ErrUndefinedQuantity, c.Conductor.Name())
	}
	return nil
}

// RLGC returns the parameters stored by the last successful CalculateRLGC
// call and the frequency they belong to. ok is false until one succeeds.
func (c *CoaxialCable) RLGC() (p RLGC, freq float64, ok bool) {
	return c.rlgc, c.freq, c.computed
}

// CalculateRLGC computes the per-unit-length parameters at f > 0 and stores
// them on the cable, replacing any earlier result. Conductor internal
// impedance uses modified Bessel functions of the complex wavenumber; for
// conductors many skin depths thick (large cables, high frequencies) these
// overflow and the call fails with rf.ErrNumericalInstability.
//
// Failed calls leave the stored parameters untouched.
func (c *CoaxialCable) CalculateRLGC(f float64) (RLGC, error) {
	const op = "coax rlgc"
	if err := rf.CheckFrequency(f); err != nil {
		return RLGC{}, &rf.CalcError{Op: op, Frequency: f, Wrapped: err}
	}
	if err := c.validate(); err != nil {
		return RLGC{}, &rf.CalcError{Op: op, Frequency: f, Wrapped: err}
	}

	w := rf.Omega(f)
	eta, err := c.Conductor.IntrinsicImpedance(f)
	if err != nil {
		return RLGC{}, err
	}
	gamma := cmplx.Sqrt(complex(0, w*c.Conductor.Conductivity()*c.Conductor.Mu()))

	a := c.ID
	b := c.OD
	outer := c.OD + c.OuterThickness

	i0a, i1a, _, _ := besselIK(gamma * complex(a, 0))
	i0b, i1b, k0b, k1b := besselIK(gamma * complex(b, 0))
	_, i1c, _, k1c := besselIK(gamma * complex(outer, 0))

	za := eta / complex(2*math.Pi*a, 0) * (i0a / i1a)
	zb := eta / complex(2*math.Pi*b, 0) * (i0b*k1c + k0b*i1c) / (i1c*k1b - i1b*k1c)
	zs := za + zb

	eps, err := c.Dielectric.ComplexPermittivity(f, false)
	if err != nil {
		return RLGC{}, err
	}
	geom := math.Log(b / a)

	p := RLGC{
		R: real(zs),
		L: imag(zs)/w + c.Dielectric.Mu()/(2*math.Pi)*geom,
		G: 2 * math.Pi * w * imag(eps) / geom,
		C: 2 * math.Pi * real(eps) / geom,
	}
	if !rf.IsFiniteComplex(zs) || !rf.IsFinite(p.R) || !rf.IsFinite(p.L) || !rf.IsFinite(p.G) || !rf.IsFinite(p.C) {
		return RLGC{}, &rf.CalcError{
			Op:        op,
			Frequency: f,
			Wrapped:   fmt.Errorf("%w: conductor surface impedance overflowed (|gamma*c|=%.3g)", rf.ErrNumericalInstability, cmplx.Abs(gamma)*outer),
		}
	}

	c.rlgc, c.freq, c.computed = p, f, true
	return p, nil
}

// PropagationConstant returns gamma of the line at f, computing RLGC first.
func (c *CoaxialCable) PropagationConstant(f float64) (complex128, error) {
	p, err := c.CalculateRLGC(f)
	if err != nil {
		return 0, err
	}
	return p.Gamma(f)
}

// CharacteristicImpedance returns Z0 of the line at f.
func (c *CoaxialCable) CharacteristicImpedance(f float64) (complex128, error) {
	p, err := c.CalculateRLGC(f)
	if err != nil {
		return 0, err
	}
	return p.Z0(f)
}

// AttenuationDB returns the line attenuation at f in dB/m.
func (c *CoaxialCable) AttenuationDB(f float64) (float64, error) {
	gamma, err := c.PropagationConstant(f)
	if err != nil {
		return 0, err
	}
	return NepersToDB(real(gamma)), nil
}
