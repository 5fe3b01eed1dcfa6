package material

// Name-keyed forms of the Medium formulas. Each resolves the built-in
// material, builds a transient Medium and delegates to it, failing with
// rf.ErrUnknownMaterial for names outside the table.

func ComplexPermittivityOf(name string, f float64, includeConductivity bool) (complex128, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.ComplexPermittivity(f, includeConductivity)
}

func SkinDepth(name string, f float64) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.SkinDepth(f)
}

func SurfaceResistance(name string, f float64) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.SurfaceResistance(f)
}

func PhaseVelocity(name string) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.PhaseVelocity(), nil
}

func Wavelength(name string, f float64) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.Wavelength(f)
}

func PropagationConstant(name string, f float64) (complex128, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.PropagationConstant(f)
}

func AttenuationConstant(name string, f float64) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.AttenuationConstant(f)
}

func PhaseConstant(name string, f float64) (float64, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.PhaseConstant(f)
}

func IntrinsicImpedance(name string, f float64) (complex128, error) {
	m, err := FromName(name)
	if err != nil {
		return 0, err
	}
	return m.IntrinsicImpedance(f)
}
