package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rfcalc/internal/analysis"
	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/tline"
)

const (
	DefaultMedium = "Copper"
	DefaultStart  = 1e6
	DefaultStop   = 1e9
	DefaultPoints = 61
)

// Config is a sweep scenario. When Cable is set the sweep runs over the
// cable and Quantities name line quantities; otherwise they name medium
// quantities of Medium.
type Config struct {
	Medium     material.MediumConfig `yaml:"medium"`
	Sweep      analysis.Sweep        `yaml:"sweep"`
	Quantities []string              `yaml:"quantities"`
	Cable      *CableConfig          `yaml:"cable,omitempty"`
}

// CableConfig selects a preset geometry or gives one explicitly. Explicit
// fields override the preset. Inner and outer diameters are used as the
// radii of the inner conductor and of the outer conductor's inner surface.
type CableConfig struct {
	Preset         string                `yaml:"preset,omitempty"`
	InnerDiameter  float64               `yaml:"inner_diameter,omitempty"`
	OuterDiameter  float64               `yaml:"outer_diameter,omitempty"`
	OuterThickness float64               `yaml:"outer_thickness,omitempty"`
	Dielectric     material.MediumConfig `yaml:"dielectric,omitempty"`
	Conductor      material.MediumConfig `yaml:"conductor,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Medium: material.MediumConfig{Name: DefaultMedium},
		Sweep: analysis.Sweep{
			Start:  DefaultStart,
			Stop:   DefaultStop,
			Points: DefaultPoints,
			Log:    true,
		},
		Quantities: []string{"skin_depth", "surface_resistance", "attenuation_db"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the sweep and that every quantity exists for the kind of
// scenario. It does not construct media.
func (c *Config) Validate() error {
	if err := c.Sweep.Validate(); err != nil {
		return err
	}

	reg := analysis.Default()
	kind, known := "medium", reg.IsMedium
	if c.Cable != nil {
		kind, known = "cable", reg.IsLine
	}
	for _, name := range c.Quantities {
		if !known(name) {
			return fmt.Errorf("%w: %q is not a %s quantity", rf.ErrParameterBounds, name, kind)
		}
	}

	if c.Cable != nil && c.Cable.Preset != "" && GetPreset(c.Cable.Preset) == nil {
		return fmt.Errorf("%w: unknown cable preset %q (have %v)", rf.ErrParameterBounds, c.Cable.Preset, ListPresets())
	}
	return nil
}

// BuildMedium constructs the scenario medium.
func (c *Config) BuildMedium() (material.Medium, error) {
	return material.NewMedium(c.Medium)
}

// Resolve merges the preset, if any, under the explicit fields.
func (cc CableConfig) Resolve() (CableConfig, error) {
	out := CableConfig{
		OuterThickness: tline.DefaultOuterThickness,
		Dielectric:     material.MediumConfig{Name: tline.DefaultDielectric},
		Conductor:      material.MediumConfig{Name: tline.DefaultConductor},
	}
	if cc.Preset != "" {
		p := GetPreset(cc.Preset)
		if p == nil {
			return CableConfig{}, fmt.Errorf("%w: unknown cable preset %q", rf.ErrParameterBounds, cc.Preset)
		}
		out = *p
	}

	if cc.InnerDiameter != 0 {
		out.InnerDiameter = cc.InnerDiameter
	}
	if cc.OuterDiameter != 0 {
		out.OuterDiameter = cc.OuterDiameter
	}
	if cc.OuterThickness != 0 {
		out.OuterThickness = cc.OuterThickness
	}
	out.Dielectric = mergeMedium(out.Dielectric, cc.Dielectric)
	out.Conductor = mergeMedium(out.Conductor, cc.Conductor)
	return out, nil
}

func mergeMedium(base, over material.MediumConfig) material.MediumConfig {
	if over.Name != "" && over.Name != base.Name {
		// A different material replaces the preset's overrides too.
		base = material.MediumConfig{Name: over.Name}
	}
	if over.RelativeDielectric != nil {
		base.RelativeDielectric = over.RelativeDielectric
	}
	if over.RelativePermeability != nil {
		base.RelativePermeability = over.RelativePermeability
	}
	if over.LossTangent != nil {
		base.LossTangent = over.LossTangent
	}
	if over.Conductivity != nil {
		base.Conductivity = over.Conductivity
	}
	return base
}

// Build resolves the configuration into a cable.
func (cc CableConfig) Build() (*tline.CoaxialCable, error) {
	r, err := cc.Resolve()
	if err != nil {
		return nil, err
	}
	cable, err := tline.NewCoaxialCable(r.InnerDiameter, r.OuterDiameter)
	if err != nil {
		return nil, err
	}
	if cable.Dielectric, err = material.NewMedium(r.Dielectric); err != nil {
		return nil, fmt.Errorf("cable dielectric: %w", err)
	}
	if cable.Conductor, err = material.NewMedium(r.Conductor); err != nil {
		return nil, fmt.Errorf("cable conductor: %w", err)
	}
	cable.OuterThickness = r.OuterThickness
	return cable, nil
}
