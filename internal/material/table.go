package material

import (
	"fmt"
	"sort"

	"github.com/san-kum/rfcalc/internal/rf"
)

// Record holds the electromagnetic properties of a built-in material.
// Conductors carry a zero loss tangent and dielectrics a zero conductivity.
type Record struct {
	Name                 string
	RelativePermittivity float64
	RelativePermeability float64
	LossTangent          float64
	Conductivity         float64 // S/m
}

// IsConductor reports whether the material is characterised by conductivity.
func (r Record) IsConductor() bool {
	return r.Conductivity > 0
}

// Conductors are listed with unit relative permittivity; their displacement
// current is negligible next to conduction current at RF.
var records = map[string]Record{}

func init() {
	for _, r := range []Record{
		{"A35", 5.6, 1, 0.0041, 0},
		{"Alumina", 9.5, 1, 0.0003, 0},
		{"Aluminum", 1, 1, 0, 3.186e7},
		{"Barium tetratitanate", 37, 1, 0.0005, 0},
		{"Beeswax", 2.35, 1, 0.005, 0},
		{"Beryllia", 6.4, 1, 0.0003, 0},
		{"Brass", 1, 1, 0, 2.564e7},
		{"Bronze", 1, 1, 0, 1e7},
		{"Chromium", 1, 1, 0, 3.846e7},
		{"Copper", 1, 1, 0, 5.813e7},
		{"FR4", 4.4, 1, 0.008, 0},
		{"Fused quartz", 3.78, 1, 0.0001, 0},
		{"GaAs", 13, 1, 0.006, 0},
		{"Germanium", 1, 1, 0, 2.2e6},
		{"Glazed ceramic", 7.2, 1, 0.008, 0},
		{"Gold", 1, 1, 0, 4.098e7},
		{"Iron", 1, 4000, 0, 1.03e7},
		{"Lucite", 2.56, 1, 0.008, 0},
		{"Mild steel", 1, 2000, 0, 1.01e7},
		{"Nichrome", 1, 1, 0, 1e6},
		{"Nickel", 1, 100, 0, 1.449e7},
		{"Nylon", 2.84, 1, 0.012, 0},
		{"Parafin", 2.24, 1, 0.0002, 0},
		{"Platinum", 1, 1, 0, 9.52e6},
		{"Plexiglass", 2.6, 1, 0.0057, 0},
		{"Polyethylene", 2.25, 1, 0.0004, 0},
		{"Polystyrene", 2.54, 1, 0.00033, 0},
		{"Porcelain", 5.04, 1, 0.0078, 0},
		{"Pyrex", 4.82, 1, 0.0054, 0},
		{"Rexolite", 2.54, 1, 0.00048, 0},
		{"Silicon", 11.9, 1, 0.004, 0},
		{"Silver", 1, 1, 0, 6.173e7},
		{"Stainless steel", 1, 2, 0, 1.1e6},
		{"Styrofoam", 1.03, 1, 0.0001, 0},
		{"Teflon", 2.08, 1, 0.0004, 0},
		{"Tin lead solder", 1, 1, 0, 7e6},
		{"Titania", 96, 1, 0.001, 0},
		{"Tungsten", 1, 1, 0, 1.825e7},
		{"Vacuum", 1, 1, 0, 0},
		{"Vaseline", 2.16, 1, 0.001, 0},
		{"Water", 76.7, 1, 0.157, 0},
		{"Zinc", 1, 1, 0, 1.67e7},
	} {
		records[r.Name] = r
	}
}

// Lookup returns the record for a built-in material.
func Lookup(name string) (Record, error) {
	r, ok := records[name]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", rf.ErrUnknownMaterial, name)
	}
	return r, nil
}

// Names returns all built-in material names in sorted order.
func Names() []string {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dielectric returns the relative permittivity (dielectric constant).
func Dielectric(name string) (float64, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return r.RelativePermittivity, nil
}

// Permittivity returns the absolute permittivity in F/m. With lossy set and a
// nonzero loss tangent the result is e0*er*(1 + j*tan d); otherwise the
// imaginary part is zero.
func Permittivity(name string, lossy bool) (complex128, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	eps := rf.Epsilon0 * r.RelativePermittivity
	if lossy && r.LossTangent != 0 {
		return complex(eps, eps*r.LossTangent), nil
	}
	return complex(eps, 0), nil
}

// Permeability returns the absolute permeability in H/m.
func Permeability(name string) (float64, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return rf.Mu0 * r.RelativePermeability, nil
}

func LossTangent(name string) (float64, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return r.LossTangent, nil
}

// Conductivity returns the conductivity in S/m.
func Conductivity(name string) (float64, error) {
	r, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return r.Conductivity, nil
}
