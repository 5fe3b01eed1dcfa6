package tline

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/rfcalc/internal/rf"
)

func TestGammaFromRLGC(t *testing.T) {
	got, err := GammaFromRLGC(1e6, 0.1, 2.5e-7, 0, 1e-10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := complex(0.0009994942902157725, 0.03143182191577684)
	if e := relErr(got, want); e > 1e-12 {
		t.Errorf("GammaFromRLGC = %v, want %v", got, want)
	}
}

func TestZ0FromRLGC(t *testing.T) {
	got, err := Z0FromRLGC(1e6, 0.1, 2.5e-7, 0, 1e-10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := complex(50.02529828280053, -1.5907445687996555)
	if e := relErr(got, want); e > 1e-12 {
		t.Errorf("Z0FromRLGC = %v, want %v", got, want)
	}
}

func TestLosslessLine(t *testing.T) {
	p := RLGC{L: 2.5e-7, C: 1e-10}
	f := 1e8

	gamma, err := p.Gamma(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	beta := rf.Omega(f) * math.Sqrt(p.L*p.C)
	if math.Abs(real(gamma)) > 1e-12 || math.Abs(imag(gamma)-beta) > 1e-9*beta {
		t.Errorf("gamma = %v, want j%g", gamma, beta)
	}

	z0, err := p.Z0(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(real(z0)-50) > 1e-9 || math.Abs(imag(z0)) > 1e-9 {
		t.Errorf("z0 = %v, want 50", z0)
	}
}

// For R << wL and G << wC the attenuation approaches R/(2 Z0) + G Z0/2.
func TestLowLossAttenuation(t *testing.T) {
	p := RLGC{R: 0.05, L: 2.5e-7, G: 1e-6, C: 1e-10}
	f := 1e9

	gamma, err := p.Gamma(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	z0 := math.Sqrt(p.L / p.C)
	want := p.R/(2*z0) + p.G*z0/2
	if math.Abs(real(gamma)-want) > 1e-6*want {
		t.Errorf("alpha = %g, want %g", real(gamma), want)
	}
}

func TestRLGCErrors(t *testing.T) {
	p := RLGC{R: 1, L: 1e-7}

	if _, err := p.Z0(1e6); !errors.Is(err, rf.ErrUndefinedQuantity) {
		t.Errorf("zero shunt admittance: expected ErrUndefinedQuantity, got %v", err)
	}
	if _, err := p.Gamma(-1); !errors.Is(err, rf.ErrInvalidFrequency) {
		t.Errorf("negative frequency: expected ErrInvalidFrequency, got %v", err)
	}
	if _, err := p.Z0(math.NaN()); !errors.Is(err, rf.ErrInvalidFrequency) {
		t.Errorf("NaN frequency: expected ErrInvalidFrequency, got %v", err)
	}

	dc := RLGC{R: 2, G: 0.5}
	z0, err := dc.Z0(0)
	if err != nil || cmplx.Abs(z0-2) > 1e-15 {
		t.Errorf("dc Z0 = %v, %v; want 2", z0, err)
	}
}

func TestNeperConversion(t *testing.T) {
	if got := NepersToDB(1); math.Abs(got-8.685889638065037) > 1e-12 {
		t.Errorf("NepersToDB(1) = %g", got)
	}
	for _, db := range []float64{0, 0.5, 3, 120} {
		if got := NepersToDB(DBToNepers(db)); math.Abs(got-db) > 1e-12*math.Max(1, db) {
			t.Errorf("round trip %g dB -> %g", db, got)
		}
	}
}
