package material

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/rfcalc/internal/logging"
	"github.com/san-kum/rfcalc/internal/rf"
)

const (
	DefaultRelativeDielectric   = 1.0
	DefaultRelativePermeability = 1.0
	DefaultLossTangent          = 0.0
	DefaultConductivity         = 0.0
)

var logger = logging.NewFromEnv()

// SetLogger replaces the package logger. It is not synchronized with
// concurrent Medium construction; call it during startup.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Noop()
	}
	logger = l
}

// MediumConfig describes a Medium. A Name matching a built-in material
// pre-fills the physical fields; non-nil fields override them.
type MediumConfig struct {
	Name                 string   `yaml:"name"`
	RelativeDielectric   *float64 `yaml:"relative_dielectric,omitempty"`
	RelativePermeability *float64 `yaml:"relative_permeability,omitempty"`
	LossTangent          *float64 `yaml:"loss_tangent,omitempty"`
	Conductivity         *float64 `yaml:"conductivity,omitempty"`
}

// Param returns a pointer to v for use in MediumConfig literals.
func Param(v float64) *float64 {
	return &v
}

// Medium is an immutable description of a homogeneous, isotropic material.
// Derived absolute permittivity and permeability are fixed at construction.
type Medium struct {
	name    string
	er      float64
	ur      float64
	tanD    float64
	sigma   float64
	epsilon float64
	mu      float64
	builtin bool
}

// NewMedium builds a Medium from cfg. An unrecognized non-empty name falls
// back to vacuum-like defaults; the fallback is logged and reported by
// Builtin.
func NewMedium(cfg MediumConfig) (Medium, error) {
	m := Medium{
		name:  cfg.Name,
		er:    DefaultRelativeDielectric,
		ur:    DefaultRelativePermeability,
		tanD:  DefaultLossTangent,
		sigma: DefaultConductivity,
	}

	if cfg.Name != "" {
		if r, ok := records[cfg.Name]; ok {
			m.er, m.ur, m.tanD, m.sigma = r.RelativePermittivity, r.RelativePermeability, r.LossTangent, r.Conductivity
			m.builtin = true
		} else if !cfg.overridesAll() {
			logger.Warn("unknown material, using vacuum defaults for unset parameters",
				logging.String("material", cfg.Name))
		}
	}

	if cfg.RelativeDielectric != nil {
		m.er = *cfg.RelativeDielectric
	}
	if cfg.RelativePermeability != nil {
		m.ur = *cfg.RelativePermeability
	}
	if cfg.LossTangent != nil {
		m.tanD = *cfg.LossTangent
	}
	if cfg.Conductivity != nil {
		m.sigma = *cfg.Conductivity
	}

	if err := m.validate(); err != nil {
		return Medium{}, err
	}

	m.epsilon = rf.Epsilon0 * m.er
	m.mu = rf.Mu0 * m.ur
	return m, nil
}

func (c MediumConfig) overridesAll() bool {
	return c.RelativeDielectric != nil && c.RelativePermeability != nil &&
		c.LossTangent != nil && c.Conductivity != nil
}

// FromName builds the Medium of a built-in material.
func FromName(name string) (Medium, error) {
	if _, err := Lookup(name); err != nil {
		return Medium{}, err
	}
	return NewMedium(MediumConfig{Name: name})
}

// Explicit builds a Medium from explicit parameters. The name is informational.
func Explicit(name string, er, ur, tanD, sigma float64) (Medium, error) {
	return NewMedium(MediumConfig{
		Name:                 name,
		RelativeDielectric:   &er,
		RelativePermeability: &ur,
		LossTangent:          &tanD,
		Conductivity:         &sigma,
	})
}

// Vacuum returns the reference medium.
func Vacuum() Medium {
	m, _ := FromName("Vacuum")
	return m
}

func (m Medium) validate() error {
	check := func(param string, v float64, positive bool) error {
		if !rf.IsFinite(v) || v < 0 || (positive && v == 0) {
			return fmt.Errorf("%w: %s=%g for medium %q", rf.ErrParameterBounds, param, v, m.name)
		}
		return nil
	}
	if err := check("relative_dielectric", m.er, true); err != nil {
		return err
	}
	if err := check("relative_permeability", m.ur, true); err != nil {
		return err
	}
	if err := check("loss_tangent", m.tanD, false); err != nil {
		return err
	}
	return check("conductivity", m.sigma, false)
}

func (m Medium) Name() string                  { return m.name }
func (m Medium) RelativePermittivity() float64 { return m.er }
func (m Medium) RelativePermeability() float64 { return m.ur }
func (m Medium) LossTangent() float64          { return m.tanD }
func (m Medium) Conductivity() float64         { return m.sigma }

// Epsilon returns the absolute permittivity in F/m.
func (m Medium) Epsilon() float64 { return m.epsilon }

// Mu returns the absolute permeability in H/m.
func (m Medium) Mu() float64 { return m.mu }

// Builtin reports whether the fields were taken from the built-in table.
func (m Medium) Builtin() bool { return m.builtin }

func (m Medium) String() string {
	return fmt.Sprintf("%s (er=%g ur=%g tanD=%g sigma=%g S/m)", m.name, m.er, m.ur, m.tanD, m.sigma)
}

func (m Medium) fail(op string, f float64, err error) error {
	return &rf.CalcError{Op: op, Material: m.name, Frequency: f, Wrapped: err}
}

// ComplexPermittivity returns epsilon at f=0, otherwise
// epsilon*(1 + j*tanD), or epsilon*(1 + j*(tanD + w/sigma)) when
// includeConductivity is set. The conductive form requires sigma > 0.
func (m Medium) ComplexPermittivity(f float64, includeConductivity bool) (complex128, error) {
	const op = "complex permittivity"
	if f < 0 || !rf.IsFinite(f) {
		return 0, m.fail(op, f, rf.ErrInvalidFrequency)
	}
	if f == 0 {
		return complex(m.epsilon, 0), nil
	}
	loss := m.tanD
	if includeConductivity {
		if m.sigma == 0 {
			return 0, m.fail(op, f, fmt.Errorf("%w: conductivity is zero", rf.ErrUndefinedQuantity))
		}
		loss += rf.Omega(f) / m.sigma
	}
	return complex(m.epsilon, m.epsilon*loss), nil
}

// SkinDepth returns sqrt(2/(w*mu*sigma)) in meters.
func (m Medium) SkinDepth(f float64) (float64, error) {
	const op = "skin depth"
	if err := rf.CheckFrequency(f); err != nil {
		return 0, m.fail(op, f, err)
	}
	if m.sigma == 0 {
		return 0, m.fail(op, f, fmt.Errorf("%w: conductivity is zero", rf.ErrUndefinedQuantity))
	}
	return math.Sqrt(2 / (rf.Omega(f) * m.mu * m.sigma)), nil
}

// SurfaceResistance returns sqrt(w*mu/(2*sigma)) in ohms.
func (m Medium) SurfaceResistance(f float64) (float64, error) {
	const op = "surface resistance"
	if f < 0 || !rf.IsFinite(f) {
		return 0, m.fail(op, f, rf.ErrInvalidFrequency)
	}
	if m.sigma == 0 {
		return 0, m.fail(op, f, fmt.Errorf("%w: conductivity is zero", rf.ErrUndefinedQuantity))
	}
	return math.Sqrt(rf.Omega(f) * m.mu / (2 * m.sigma)), nil
}

// PhaseVelocity returns 1/sqrt(mu*epsilon) in m/s. The model is
// non-dispersive so the result does not depend on frequency.
func (m Medium) PhaseVelocity() float64 {
	return 1 / math.Sqrt(m.mu*m.epsilon)
}

// Wavelength returns the wavelength in meters at f > 0.
func (m Medium) Wavelength(f float64) (float64, error) {
	if err := rf.CheckFrequency(f); err != nil {
		return 0, m.fail("wavelength", f, err)
	}
	return m.PhaseVelocity() / f, nil
}

// PropagationConstant returns gamma = j*w*sqrt(mu*eps)*sqrt(1 - j*sigma/(w*eps)).
// Re(gamma) is the attenuation in Np/m and Im(gamma) the phase constant in rad/m.
func (m Medium) PropagationConstant(f float64) (complex128, error) {
	const op = "propagation constant"
	if f < 0 || !rf.IsFinite(f) {
		return 0, m.fail(op, f, rf.ErrInvalidFrequency)
	}
	if f == 0 {
		return 0, nil
	}
	w := rf.Omega(f)
	loss := cmplx.Sqrt(complex(1, -m.sigma/(w*m.epsilon)))
	gamma := complex(0, w*math.Sqrt(m.mu*m.epsilon)) * loss
	if !rf.IsFiniteComplex(gamma) {
		return 0, m.fail(op, f, rf.ErrNumericalInstability)
	}
	return gamma, nil
}

// AttenuationConstant returns Re(gamma) in Np/m.
func (m Medium) AttenuationConstant(f float64) (float64, error) {
	gamma, err := m.PropagationConstant(f)
	if err != nil {
		return 0, err
	}
	return real(gamma), nil
}

// PhaseConstant returns Im(gamma) in rad/m.
func (m Medium) PhaseConstant(f float64) (float64, error) {
	gamma, err := m.PropagationConstant(f)
	if err != nil {
		return 0, err
	}
	return imag(gamma), nil
}

// IntrinsicImpedance returns sqrt(mu/eps) at f=0 and j*w*mu/gamma otherwise.
func (m Medium) IntrinsicImpedance(f float64) (complex128, error) {
	if f == 0 {
		return complex(math.Sqrt(m.mu/m.epsilon), 0), nil
	}
	gamma, err := m.PropagationConstant(f)
	if err != nil {
		return 0, err
	}
	eta := complex(0, rf.Omega(f)*m.mu) / gamma
	if !rf.IsFiniteComplex(eta) {
		return 0, m.fail("intrinsic impedance", f, rf.ErrNumericalInstability)
	}
	return eta, nil
}

// EquivalentRLGC returns the distributed-parameter view of the medium:
// R=0, L=mu, G=sigma, C=epsilon. Fed into the telegrapher's equations it
// reproduces PropagationConstant and IntrinsicImpedance.
func (m Medium) EquivalentRLGC() (r, l, g, c float64) {
	return 0, m.mu, m.sigma, m.epsilon
}
