package tline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/rfcalc/internal/rf"
)

// RLGC holds per-unit-length transmission line parameters in ohm/m, H/m,
// S/m and F/m.
type RLGC struct {
	R float64 `json:"r"`
	L float64 `json:"l"`
	G float64 `json:"g"`
	C float64 `json:"c"`
}

func (p RLGC) series(f float64) complex128 { return complex(p.R, rf.Omega(f)*p.L) }
func (p RLGC) shunt(f float64) complex128  { return complex(p.G, rf.Omega(f)*p.C) }

// Gamma returns the propagation constant sqrt((R + jwL)(G + jwC)).
func (p RLGC) Gamma(f float64) (complex128, error) {
	if f < 0 || !rf.IsFinite(f) {
		return 0, &rf.CalcError{Op: "rlgc gamma", Frequency: f, Wrapped: rf.ErrInvalidFrequency}
	}
	return cmplx.Sqrt(p.series(f) * p.shunt(f)), nil
}

// Z0 returns the characteristic impedance sqrt((R + jwL)/(G + jwC)).
func (p RLGC) Z0(f float64) (complex128, error) {
	const op = "rlgc z0"
	if f < 0 || !rf.IsFinite(f) {
		return 0, &rf.CalcError{Op: op, Frequency: f, Wrapped: rf.ErrInvalidFrequency}
	}
	shunt := p.shunt(f)
	if shunt == 0 {
		return 0, &rf.CalcError{Op: op, Frequency: f, Wrapped: fmt.Errorf("%w: G + jwC is zero", rf.ErrUndefinedQuantity)}
	}
	return cmplx.Sqrt(p.series(f) / shunt), nil
}

// GammaFromRLGC returns the telegrapher's-equation propagation constant.
func GammaFromRLGC(f, r, l, g, c float64) (complex128, error) {
	return RLGC{R: r, L: l, G: g, C: c}.Gamma(f)
}

// Z0FromRLGC returns the characteristic impedance.
func Z0FromRLGC(f, r, l, g, c float64) (complex128, error) {
	return RLGC{R: r, L: l, G: g, C: c}.Z0(f)
}

// NepersToDB converts an attenuation in Np to dB.
func NepersToDB(np float64) float64 {
	return np * 20 * math.Log10(math.E)
}

// DBToNepers converts an attenuation in dB to Np.
func DBToNepers(db float64) float64 {
	return db / 20 * math.Ln10
}
