package tline

import (
	"math/cmplx"
	"testing"
)

func relErr(got, want complex128) float64 {
	if want == 0 {
		return cmplx.Abs(got)
	}
	return cmplx.Abs(got-want) / cmplx.Abs(want)
}

func TestBesselIK_RealArguments(t *testing.T) {
	tests := []struct {
		z              float64
		i0, i1, k0, k1 float64
	}{
		{1, 1.2660658777520082, 0.565159103992485, 0.42102443824070834, 0.6019072301972346},
		{5, 27.239871823604442, 24.335642142450524, 0.0036910983340425942, 0.004044613445452164},
	}

	for _, tt := range tests {
		i0, i1, k0, k1 := besselIK(complex(tt.z, 0))
		checks := []struct {
			name      string
			got, want complex128
		}{
			{"I0", i0, complex(tt.i0, 0)},
			{"I1", i1, complex(tt.i1, 0)},
			{"K0", k0, complex(tt.k0, 0)},
			{"K1", k1, complex(tt.k1, 0)},
		}
		for _, c := range checks {
			if e := relErr(c.got, c.want); e > 1e-10 {
				t.Errorf("%s(%g) = %v, want %v (rel err %.2e)", c.name, tt.z, c.got, c.want, e)
			}
		}
	}
}

func TestBesselIK_AsymptoticI(t *testing.T) {
	i0, _, _, _ := besselIK(30)
	if e := relErr(i0, 781672297823.9775); e > 1e-10 {
		t.Errorf("I0(30) = %v, rel err %.2e", i0, e)
	}
}

// I0 K1 + I1 K0 = 1/z holds on both sides of each branch switch.
func TestBesselIK_Wronskian(t *testing.T) {
	arg := complex(1, 1) / cmplx.Sqrt(2)
	for _, r := range []float64{0.1, 0.5, 2, 7.9, 8.1, 15, 24.9, 25.1, 60, 200} {
		z := complex(r, 0) * arg
		i0, i1, k0, k1 := besselIK(z)
		got := i0*k1 + i1*k0
		if e := relErr(got, 1/z); e > 1e-7 {
			t.Errorf("|z|=%g: Wronskian rel err %.2e", r, e)
		}
	}
}

func TestBesselIK_Overflow(t *testing.T) {
	i0, _, _, _ := besselIK(complex(900, 900))
	if !cmplx.IsInf(i0) && !cmplx.IsNaN(i0) {
		t.Errorf("expected I0 to overflow, got %v", i0)
	}
}
