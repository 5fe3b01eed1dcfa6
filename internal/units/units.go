// Package units converts between the SI values used by rfcalc and the
// customary units found on datasheets: dBm, inches, AWG wire gauge and
// ounces of copper.
package units

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

var ErrDomain = errors.New("units: value outside conversion domain")

const (
	cmPerInch = 2.54

	// AWG 36 is 0.005 in and AWG 0000 (-3) is 0.46 in; diameters follow the
	// geometric series between them.
	awgBaseInches = 0.005
	awgRatio      = 92.0
	awgSteps      = 39.0
	awgBase       = 36.0

	milPerOz    = 1.4
	micronPerOz = 35.0
)

// DBmToWatts converts a power level in dBm to watts.
func DBmToWatts(p float64) float64 {
	return math.Pow(10, p/10) / 1000
}

// WattsToDBm converts a power in watts to dBm.
func WattsToDBm(w float64) (float64, error) {
	if !(w > 0) {
		return 0, fmt.Errorf("%w: power %g W must be positive", ErrDomain, w)
	}
	return 10 * math.Log10(w*1000), nil
}

// DBmToVolts returns the RMS voltage sqrt(Z*P) of a dBm level across an
// impedance, which may be complex.
func DBmToVolts(p float64, z complex128) complex128 {
	return cmplx.Sqrt(z * complex(DBmToWatts(p), 0))
}

// DBmToVoltsReal is DBmToVolts for a resistive load.
func DBmToVoltsReal(p, r float64) (float64, error) {
	if r < 0 {
		return 0, fmt.Errorf("%w: resistance %g must be non-negative", ErrDomain, r)
	}
	return math.Sqrt(r * DBmToWatts(p)), nil
}

func InchesToCm(l float64) float64 { return l * cmPerInch }
func CmToInches(l float64) float64 { return l / cmPerInch }

// AWGToInches returns the diameter of a solid wire of the given gauge.
// Gauges 0, 00, 000 and 0000 are 0, -1, -2 and -3.
func AWGToInches(ga float64) float64 {
	return awgBaseInches * math.Pow(awgRatio, (awgBase-ga)/awgSteps)
}

func AWGToCm(ga float64) float64 { return InchesToCm(AWGToInches(ga)) }
func AWGToMil(ga float64) float64 { return AWGToInches(ga) * 1000 }

// InchesToAWG returns the (fractional) gauge of a wire diameter.
func InchesToAWG(dia float64) (float64, error) {
	if !(dia > 0) || math.IsInf(dia, 0) {
		return 0, fmt.Errorf("%w: diameter %g must be positive", ErrDomain, dia)
	}
	return awgBase - awgSteps*math.Log(dia/awgBaseInches)/math.Log(awgRatio), nil
}

func CmToAWG(dia float64) (float64, error) { return InchesToAWG(CmToInches(dia)) }
func MilToAWG(dia float64) (float64, error) { return InchesToAWG(dia / 1000) }

func OzCuToMil(oz float64) float64 { return oz * milPerOz }
func MilToOzCu(mil float64) float64 { return mil / milPerOz }
func OzCuToMicron(oz float64) float64 { return oz * micronPerOz }
func MicronToOzCu(um float64) float64 { return um / micronPerOz }

// Converter is a named single-value conversion for the command line.
type Converter struct {
	From, To string
	Convert  func(float64) (float64, error)
}

func infallible(fn func(float64) float64) func(float64) (float64, error) {
	return func(v float64) (float64, error) { return fn(v), nil }
}

var converters = map[string]Converter{
	"dbm-w":   {"dBm", "W", infallible(DBmToWatts)},
	"w-dbm":   {"W", "dBm", WattsToDBm},
	"in-cm":   {"in", "cm", infallible(InchesToCm)},
	"cm-in":   {"cm", "in", infallible(CmToInches)},
	"awg-in":  {"AWG", "in", infallible(AWGToInches)},
	"awg-cm":  {"AWG", "cm", infallible(AWGToCm)},
	"awg-mil": {"AWG", "mil", infallible(AWGToMil)},
	"in-awg":  {"in", "AWG", InchesToAWG},
	"cm-awg":  {"cm", "AWG", CmToAWG},
	"mil-awg": {"mil", "AWG", MilToAWG},
	"oz-mil":  {"oz", "mil", infallible(OzCuToMil)},
	"mil-oz":  {"mil", "oz", infallible(MilToOzCu)},
	"oz-um":   {"oz", "um", infallible(OzCuToMicron)},
	"um-oz":   {"um", "oz", infallible(MicronToOzCu)},
}

// Lookup returns the converter registered under key, e.g. "awg-mil".
func Lookup(key string) (Converter, error) {
	c, ok := converters[key]
	if !ok {
		return Converter{}, fmt.Errorf("%w: no conversion %q", ErrDomain, key)
	}
	return c, nil
}

// Keys returns the registered conversion keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(converters))
	for k := range converters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
