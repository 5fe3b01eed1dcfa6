package rf

import (
	"fmt"
	"sort"
)

// 2018 CODATA fundamental physical constants.
const (
	C        = 299792458.0       // speed of light in vacuum, m/s
	Epsilon0 = 8.85418781288e-12 // vacuum electric permittivity, F/m
	Mu0      = 1.25663706212e-6  // vacuum magnetic permeability, H/m
	Eta0     = 376.730313668     // impedance of free space, ohm
	Q        = 1.602176634e-19   // elementary charge, C
	KJ       = 1.380649e-23      // Boltzmann constant, J/K
	KeV      = 8.617333e-5       // Boltzmann constant, eV/K
)

var constants = map[string]float64{
	"c":    C,
	"e0":   Epsilon0,
	"mu0":  Mu0,
	"eta0": Eta0,
	"q":    Q,
	"k_J":  KJ,
	"k_eV": KeV,
}

// Constant returns the named physical constant.
func Constant(name string) (float64, error) {
	v, ok := constants[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownConstant, name)
	}
	return v, nil
}

// ConstantNames returns the names accepted by Constant in sorted order.
func ConstantNames() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
