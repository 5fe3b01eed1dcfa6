package units

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestDBm(t *testing.T) {
	tests := []struct {
		dbm   float64
		watts float64
	}{
		{0, 1e-3},
		{30, 1},
		{-30, 1e-6},
		{10, 1e-2},
	}

	for _, tt := range tests {
		got := DBmToWatts(tt.dbm)
		if math.Abs(got-tt.watts) > 1e-12*tt.watts {
			t.Errorf("DBmToWatts(%g) = %g, want %g", tt.dbm, got, tt.watts)
		}
		back, err := WattsToDBm(got)
		if err != nil || math.Abs(back-tt.dbm) > 1e-9 {
			t.Errorf("WattsToDBm(%g) = %g, %v; want %g", got, back, err, tt.dbm)
		}
	}

	if _, err := WattsToDBm(0); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for zero power, got %v", err)
	}
}

func TestDBmToVolts(t *testing.T) {
	// 0 dBm into 50 ohm is sqrt(0.05) V.
	v, err := DBmToVoltsReal(0, 50)
	if err != nil || math.Abs(v-math.Sqrt(0.05)) > 1e-12 {
		t.Errorf("DBmToVoltsReal(0, 50) = %g, %v", v, err)
	}

	cv := DBmToVolts(0, complex(50, 0))
	if cmplx.Abs(cv-complex(v, 0)) > 1e-12 {
		t.Errorf("complex and real forms disagree: %v vs %g", cv, v)
	}

	cv = DBmToVolts(0, complex(0, 50))
	if math.Abs(cmplx.Phase(cv)-math.Pi/4) > 1e-12 {
		t.Errorf("reactive load phase = %g, want pi/4", cmplx.Phase(cv))
	}

	if _, err := DBmToVoltsReal(0, -1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain for negative resistance, got %v", err)
	}
}

func TestAWG(t *testing.T) {
	tests := []struct {
		gauge  float64
		inches float64
		tol    float64
	}{
		{36, 0.005, 1e-15},
		{-3, 0.46, 1e-12},
		{10, 0.1019, 1e-4},
		{24, 0.0201, 1e-4},
	}

	for _, tt := range tests {
		got := AWGToInches(tt.gauge)
		if math.Abs(got-tt.inches) > tt.tol {
			t.Errorf("AWGToInches(%g) = %g, want %g", tt.gauge, got, tt.inches)
		}
		if cm := AWGToCm(tt.gauge); math.Abs(cm-got*2.54) > 1e-15 {
			t.Errorf("AWGToCm(%g) = %g, want %g", tt.gauge, cm, got*2.54)
		}

		ga, err := InchesToAWG(got)
		if err != nil || math.Abs(ga-tt.gauge) > 1e-9 {
			t.Errorf("InchesToAWG(%g) = %g, %v; want %g", got, ga, err, tt.gauge)
		}
		ga, err = MilToAWG(AWGToMil(tt.gauge))
		if err != nil || math.Abs(ga-tt.gauge) > 1e-9 {
			t.Errorf("mil round trip for %g gave %g, %v", tt.gauge, ga, err)
		}
		ga, err = CmToAWG(AWGToCm(tt.gauge))
		if err != nil || math.Abs(ga-tt.gauge) > 1e-9 {
			t.Errorf("cm round trip for %g gave %g, %v", tt.gauge, ga, err)
		}
	}

	for _, dia := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := InchesToAWG(dia); !errors.Is(err, ErrDomain) {
			t.Errorf("InchesToAWG(%g): expected ErrDomain, got %v", dia, err)
		}
	}
}

func TestLengthAndCopper(t *testing.T) {
	if got := InchesToCm(1); got != 2.54 {
		t.Errorf("InchesToCm(1) = %g", got)
	}
	if got := CmToInches(5.08); math.Abs(got-2) > 1e-15 {
		t.Errorf("CmToInches(5.08) = %g", got)
	}
	if got := OzCuToMil(2); math.Abs(got-2.8) > 1e-15 {
		t.Errorf("OzCuToMil(2) = %g", got)
	}
	if got := MilToOzCu(1.4); math.Abs(got-1) > 1e-15 {
		t.Errorf("MilToOzCu(1.4) = %g", got)
	}
	if got := OzCuToMicron(0.5); got != 17.5 {
		t.Errorf("OzCuToMicron(0.5) = %g", got)
	}
	if got := MicronToOzCu(70); got != 2 {
		t.Errorf("MicronToOzCu(70) = %g", got)
	}
}

func TestConverters(t *testing.T) {
	keys := Keys()
	if len(keys) != len(converters) {
		t.Fatalf("Keys() returned %d of %d converters", len(keys), len(converters))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted at %d", i)
		}
	}

	c, err := Lookup("awg-mil")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.From != "AWG" || c.To != "mil" {
		t.Errorf("unexpected units %s -> %s", c.From, c.To)
	}
	v, err := c.Convert(36)
	if err != nil || math.Abs(v-5) > 1e-12 {
		t.Errorf("awg-mil(36) = %g, %v; want 5", v, err)
	}

	if _, err := Lookup("furlong-parsec"); !errors.Is(err, ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}
