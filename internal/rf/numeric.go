package rf

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Omega converts a frequency in Hz to angular frequency in rad/s.
func Omega(f float64) float64 {
	return 2 * math.Pi * f
}

// CheckFrequency returns ErrInvalidFrequency unless f is finite and strictly positive.
func CheckFrequency(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %g Hz (must be > 0)", ErrInvalidFrequency, f)
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFiniteComplex reports whether both parts of z are finite.
func IsFiniteComplex(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
