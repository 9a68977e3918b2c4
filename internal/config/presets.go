package config

import (
	"sort"

	"github.com/san-kum/worldforge/internal/celestial"
)

// earthlike starts from Earth values and lets each preset patch what differs.
func earthlike(name string, patch func(*celestial.PlanetParams)) PlanetConfig {
	p := celestial.EarthParams()
	patch(&p)
	return PlanetConfig{Name: name, PlanetParams: p}
}

var Presets = map[string]*SystemConfig{
	"sol": {
		Name: "Sol",
		Star: StarConfig{Name: "Sol", Mass: 1, Age: 4.5},
		Planets: []PlanetConfig{
			{Name: "Earth", PlanetParams: celestial.EarthParams()},
			earthlike("Mars", func(p *celestial.PlanetParams) {
				p.Mass, p.CoreMassFraction, p.AxialTilt, p.Albedo = 0.107, 0.26, 25.19, 0.25
				p.GreenhouseFactor = 0.1
				p.RotationPeriod, p.SemiMajorAxis, p.Eccentricity, p.Inclination = 24.6, 1.524, 0.0934, 1.85
				p.Pressure, p.Oxygen, p.CarbonDioxide, p.Argon = 0.006, 0.0013, 0.9532, 0.016
			}),
		},
	},
	"proxima": {
		Name: "Proxima Centauri",
		Star: StarConfig{Name: "Proxima Centauri", Mass: 0.122, Age: 4.85},
		Planets: []PlanetConfig{
			earthlike("Proxima b", func(p *celestial.PlanetParams) {
				p.Mass, p.AxialTilt = 1.07, 0
				p.RotationPeriod, p.SemiMajorAxis, p.Eccentricity = 268.8, 0.0485, 0.02
			}),
		},
	},
	"trappist": {
		Name: "TRAPPIST-1",
		Star: StarConfig{Name: "TRAPPIST-1", Mass: 0.0898, Age: 7.6},
		Planets: []PlanetConfig{
			earthlike("TRAPPIST-1e", func(p *celestial.PlanetParams) {
				p.Mass, p.AxialTilt = 0.692, 0
				p.RotationPeriod, p.SemiMajorAxis, p.Eccentricity, p.Inclination = 146.4, 0.02925, 0.005, 0.1
			}),
			earthlike("TRAPPIST-1f", func(p *celestial.PlanetParams) {
				p.Mass, p.AxialTilt = 1.039, 0
				p.RotationPeriod, p.SemiMajorAxis, p.Eccentricity, p.Inclination = 221.8, 0.03849, 0.01, 0.3
			}),
			earthlike("TRAPPIST-1g", func(p *celestial.PlanetParams) {
				p.Mass, p.AxialTilt = 1.321, 0
				p.RotationPeriod, p.SemiMajorAxis, p.Eccentricity, p.Inclination = 298.8, 0.04683, 0.002, 0.2
			}),
		},
	},
	"kepler452": {
		Name: "Kepler-452",
		Star: StarConfig{Name: "Kepler-452", Mass: 1.037, Age: 6},
		Planets: []PlanetConfig{
			earthlike("Kepler-452b", func(p *celestial.PlanetParams) {
				p.Mass, p.CoreMassFraction = 5, 0.4
				p.SemiMajorAxis, p.Eccentricity = 1.046, 0.035
				p.Pressure = 2
			}),
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *SystemConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Planets = append([]PlanetConfig(nil), p.Planets...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
