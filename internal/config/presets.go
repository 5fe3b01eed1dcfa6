package config

import (
	"sort"

	"github.com/san-kum/rfcalc/internal/material"
)

// Presets holds common coaxial cables. Dimensions are the centre conductor
// radius and the dielectric radius in meters.
var Presets = map[string]*CableConfig{
	"RG-58": {
		InnerDiameter: 0.45e-3, OuterDiameter: 1.475e-3, OuterThickness: 70e-6,
		Dielectric: material.MediumConfig{Name: "Polyethylene"},
		Conductor:  material.MediumConfig{Name: "Copper"},
	},
	"RG-174": {
		InnerDiameter: 0.24e-3, OuterDiameter: 0.76e-3, OuterThickness: 50e-6,
		Dielectric: material.MediumConfig{Name: "Polyethylene"},
		Conductor:  material.MediumConfig{Name: "Copper"},
	},
	"RG-213": {
		InnerDiameter: 1.13e-3, OuterDiameter: 3.62e-3, OuterThickness: 100e-6,
		Dielectric: material.MediumConfig{Name: "Polyethylene"},
		Conductor:  material.MediumConfig{Name: "Copper"},
	},
	"RG-6": {
		InnerDiameter: 0.512e-3, OuterDiameter: 2.285e-3, OuterThickness: 70e-6,
		Dielectric: material.MediumConfig{Name: "Polyethylene", RelativeDielectric: material.Param(1.5)},
		Conductor:  material.MediumConfig{Name: "Copper"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *CableConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
