package analysis

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/tline"
)

// Quantity describes a named sweepable value.
type Quantity struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

type MediumFunc func(m material.Medium, f float64) (float64, error)

// LineFunc evaluates a quantity from a line's RLGC parameters at f.
type LineFunc func(p tline.RLGC, f float64) (float64, error)

type mediumEntry struct {
	Quantity
	eval MediumFunc
}

type lineEntry struct {
	Quantity
	eval LineFunc
}

type Registry struct {
	medium map[string]mediumEntry
	line   map[string]lineEntry
}

func NewRegistry() *Registry {
	r := &Registry{
		medium: make(map[string]mediumEntry),
		line:   make(map[string]lineEntry),
	}

	r.AddMedium(Quantity{"attenuation", "Np/m", "attenuation constant"},
		func(m material.Medium, f float64) (float64, error) { return m.AttenuationConstant(f) })
	r.AddMedium(Quantity{"attenuation_db", "dB/m", "attenuation constant"},
		func(m material.Medium, f float64) (float64, error) {
			alpha, err := m.AttenuationConstant(f)
			return tline.NepersToDB(alpha), err
		})
	r.AddMedium(Quantity{"phase", "rad/m", "phase constant"},
		func(m material.Medium, f float64) (float64, error) { return m.PhaseConstant(f) })
	r.AddMedium(Quantity{"wavelength", "m", "wavelength in the medium"},
		func(m material.Medium, f float64) (float64, error) { return m.Wavelength(f) })
	r.AddMedium(Quantity{"phase_velocity", "m/s", "phase velocity"},
		func(m material.Medium, _ float64) (float64, error) { return m.PhaseVelocity(), nil })
	r.AddMedium(Quantity{"skin_depth", "m", "conductor skin depth"},
		func(m material.Medium, f float64) (float64, error) { return m.SkinDepth(f) })
	r.AddMedium(Quantity{"surface_resistance", "ohm", "conductor surface resistance"},
		func(m material.Medium, f float64) (float64, error) { return m.SurfaceResistance(f) })
	r.AddMedium(Quantity{"impedance_mag", "ohm", "intrinsic impedance magnitude"},
		func(m material.Medium, f float64) (float64, error) {
			eta, err := m.IntrinsicImpedance(f)
			return cmplx.Abs(eta), err
		})
	r.AddMedium(Quantity{"impedance_phase", "rad", "intrinsic impedance phase"},
		func(m material.Medium, f float64) (float64, error) {
			eta, err := m.IntrinsicImpedance(f)
			return cmplx.Phase(eta), err
		})
	r.AddMedium(Quantity{"permittivity_real", "F/m", "real part of the lossy permittivity"},
		func(m material.Medium, f float64) (float64, error) {
			eps, err := m.ComplexPermittivity(f, false)
			return real(eps), err
		})
	r.AddMedium(Quantity{"permittivity_imag", "F/m", "imaginary part of the lossy permittivity"},
		func(m material.Medium, f float64) (float64, error) {
			eps, err := m.ComplexPermittivity(f, false)
			return imag(eps), err
		})

	r.AddLine(Quantity{"R", "ohm/m", "series resistance"},
		func(p tline.RLGC, _ float64) (float64, error) { return p.R, nil })
	r.AddLine(Quantity{"L", "H/m", "series inductance"},
		func(p tline.RLGC, _ float64) (float64, error) { return p.L, nil })
	r.AddLine(Quantity{"G", "S/m", "shunt conductance"},
		func(p tline.RLGC, _ float64) (float64, error) { return p.G, nil })
	r.AddLine(Quantity{"C", "F/m", "shunt capacitance"},
		func(p tline.RLGC, _ float64) (float64, error) { return p.C, nil })
	r.AddLine(Quantity{"z0_mag", "ohm", "characteristic impedance magnitude"},
		func(p tline.RLGC, f float64) (float64, error) {
			z0, err := p.Z0(f)
			return cmplx.Abs(z0), err
		})
	r.AddLine(Quantity{"cable_attenuation_db", "dB/m", "line attenuation"},
		func(p tline.RLGC, f float64) (float64, error) {
			gamma, err := p.Gamma(f)
			return tline.NepersToDB(real(gamma)), err
		})

	return r
}

// AddMedium registers or replaces a medium quantity.
func (r *Registry) AddMedium(q Quantity, fn MediumFunc) {
	r.medium[q.Name] = mediumEntry{Quantity: q, eval: fn}
}

// AddLine registers or replaces a transmission line quantity.
func (r *Registry) AddLine(q Quantity, fn LineFunc) {
	r.line[q.Name] = lineEntry{Quantity: q, eval: fn}
}

func (r *Registry) IsMedium(name string) bool {
	_, ok := r.medium[name]
	return ok
}

func (r *Registry) IsLine(name string) bool {
	_, ok := r.line[name]
	return ok
}

// Describe returns the metadata of a medium or line quantity.
func (r *Registry) Describe(name string) (Quantity, error) {
	if e, ok := r.medium[name]; ok {
		return e.Quantity, nil
	}
	if e, ok := r.line[name]; ok {
		return e.Quantity, nil
	}
	return Quantity{}, fmt.Errorf("%w: unknown quantity %q", rf.ErrParameterBounds, name)
}

// EvalMedium evaluates one medium quantity at a single frequency.
func (r *Registry) EvalMedium(name string, m material.Medium, f float64) (float64, error) {
	e, ok := r.medium[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown medium quantity %q", rf.ErrParameterBounds, name)
	}
	return e.eval(m, f)
}

func (r *Registry) ListMedium() []Quantity {
	out := make([]Quantity, 0, len(r.medium))
	for _, e := range r.medium {
		out = append(out, e.Quantity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) ListLine() []Quantity {
	out := make([]Quantity, 0, len(r.line))
	for _, e := range r.line {
		out = append(out, e.Quantity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by RunMedium and RunCable.
func Default() *Registry { return defaultRegistry }
