package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/rfcalc/internal/rf"
)

var siPrefixes = []struct {
	exp    int
	symbol string
}{
	{12, "T"}, {9, "G"}, {6, "M"}, {3, "k"}, {0, ""},
	{-3, "m"}, {-6, "µ"}, {-9, "n"}, {-12, "p"}, {-15, "f"},
}

// FormatSI formats v with an engineering prefix, e.g. 2.087e-6 m as
// "2.087 µm". Values outside the prefix range use exponent notation.
func FormatSI(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strings.TrimSpace(fmt.Sprintf("%g %s", v, unit))
	}
	mag := math.Abs(v)
	if v == 0 || mag >= 1e15 || mag < 1e-15 {
		return strings.TrimSpace(fmt.Sprintf("%.4g %s", v, unit))
	}
	for _, p := range siPrefixes {
		scale := math.Pow(10, float64(p.exp))
		if mag >= scale {
			return strings.TrimSpace(fmt.Sprintf("%.4g %s%s", v/scale, p.symbol, unit))
		}
	}
	return strings.TrimSpace(fmt.Sprintf("%.4g %s", v, unit))
}

// ParseSI parses a number with an optional engineering suffix, so "2.4G",
// "2.4e9" and "2400M" are the same value. A trailing "Hz" is dropped, so
// "10 MHz" parses too.
func ParseSI(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "Hz"), "hz")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", rf.ErrParameterBounds)
	}

	mult := 1.0
	for _, p := range siPrefixes {
		if p.symbol != "" && strings.HasSuffix(s, p.symbol) {
			mult = math.Pow(10, float64(p.exp))
			s = strings.TrimSuffix(s, p.symbol)
			break
		}
	}
	if mult == 1 && strings.HasSuffix(s, "u") {
		mult = 1e-6
		s = strings.TrimSuffix(s, "u")
	}
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", rf.ErrParameterBounds, s)
	}
	return v * mult, nil
}
