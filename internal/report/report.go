// Package report turns stars and planets into flat, serialisable summaries
// carrying both the relative units and their SI equivalents.
package report

import (
	"github.com/san-kum/worldforge/internal/celestial"
)

type StarReport struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Mass          Number `json:"mass" yaml:"mass"`
	Age           Number `json:"age" yaml:"age"`
	Luminosity    Number `json:"luminosity" yaml:"luminosity"`
	MaxAge        Number `json:"max_age" yaml:"max_age"`
	Radius        Number `json:"radius" yaml:"radius"`
	Density       Number `json:"density" yaml:"density"`
	Temperature   Number `json:"temperature" yaml:"temperature"`
	HabitableZone Span   `json:"habitable_zone" yaml:"habitable_zone"`
	EarthLikeLife bool   `json:"earth_like_life" yaml:"earth_like_life"`
	SpectralClass string `json:"spectral_class" yaml:"spectral_class"`
	SI            StarSI `json:"si" yaml:"si"`
}

type StarSI struct {
	Mass          Number `json:"mass_kg" yaml:"mass_kg"`
	Radius        Number `json:"radius_km" yaml:"radius_km"`
	Luminosity    Number `json:"luminosity_w" yaml:"luminosity_w"`
	Density       Number `json:"density_g_cm3" yaml:"density_g_cm3"`
	HabitableZone Span   `json:"habitable_zone_km" yaml:"habitable_zone_km"`
}

// PlanetInputs mirrors celestial.PlanetParams with the same field names.
type PlanetInputs struct {
	Mass             Number `json:"mass" yaml:"mass"`
	CoreMassFraction Number `json:"core_mass_fraction" yaml:"core_mass_fraction"`
	AxialTilt        Number `json:"axial_tilt" yaml:"axial_tilt"`
	Albedo           Number `json:"albedo" yaml:"albedo"`
	GreenhouseFactor Number `json:"greenhouse_factor" yaml:"greenhouse_factor"`
	RotationPeriod   Number `json:"rotation_period" yaml:"rotation_period"`
	SemiMajorAxis    Number `json:"semi_major_axis" yaml:"semi_major_axis"`
	Eccentricity     Number `json:"eccentricity" yaml:"eccentricity"`
	Inclination      Number `json:"inclination" yaml:"inclination"`
	Pressure         Number `json:"pressure" yaml:"pressure"`
	Oxygen           Number `json:"oxygen" yaml:"oxygen"`
	CarbonDioxide    Number `json:"carbon_dioxide" yaml:"carbon_dioxide"`
	Argon            Number `json:"argon" yaml:"argon"`
}

func inputsOf(p celestial.PlanetParams) PlanetInputs {
	return PlanetInputs{
		Mass:             Number(p.Mass),
		CoreMassFraction: Number(p.CoreMassFraction),
		AxialTilt:        Number(p.AxialTilt),
		Albedo:           Number(p.Albedo),
		GreenhouseFactor: Number(p.GreenhouseFactor),
		RotationPeriod:   Number(p.RotationPeriod),
		SemiMajorAxis:    Number(p.SemiMajorAxis),
		Eccentricity:     Number(p.Eccentricity),
		Inclination:      Number(p.Inclination),
		Pressure:         Number(p.Pressure),
		Oxygen:           Number(p.Oxygen),
		CarbonDioxide:    Number(p.CarbonDioxide),
		Argon:            Number(p.Argon),
	}
}

type PlanetReport struct {
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Inputs PlanetInputs `json:"inputs" yaml:"inputs"`

	Density            Number            `json:"density" yaml:"density"`
	Radius             Number            `json:"radius" yaml:"radius"`
	Gravity            Number            `json:"gravity" yaml:"gravity"`
	EscapeVelocity     Number            `json:"escape_velocity" yaml:"escape_velocity"`
	RotationDirection  string            `json:"rotation_direction" yaml:"rotation_direction"`
	Tropics            Span              `json:"tropics" yaml:"tropics"`
	PolarCircles       Span              `json:"polar_circles" yaml:"polar_circles"`
	SurfaceTemperature Number            `json:"surface_temperature" yaml:"surface_temperature"`
	Periapsis          Number            `json:"periapsis" yaml:"periapsis"`
	Apoapsis           Number            `json:"apoapsis" yaml:"apoapsis"`
	OrbitalPeriod      Number            `json:"orbital_period" yaml:"orbital_period"`
	OrbitalDirection   string            `json:"orbital_direction" yaml:"orbital_direction"`
	Nitrogen           Number            `json:"nitrogen" yaml:"nitrogen"`
	AtmosphericDensity Number            `json:"atmospheric_density" yaml:"atmospheric_density"`
	CirculationCells   int               `json:"circulation_cells" yaml:"circulation_cells"`
	CellBands          []Span            `json:"cell_bands" yaml:"cell_bands"`
	PartialPressures   map[string]Number `json:"partial_pressures" yaml:"partial_pressures"`
	SI                 PlanetSI          `json:"si" yaml:"si"`
}

type PlanetSI struct {
	Mass               Number            `json:"mass_kg" yaml:"mass_kg"`
	Radius             Number            `json:"radius_km" yaml:"radius_km"`
	Gravity            Number            `json:"gravity_m_s2" yaml:"gravity_m_s2"`
	EscapeVelocity     Number            `json:"escape_velocity_km_s" yaml:"escape_velocity_km_s"`
	SurfaceTemperature Number            `json:"surface_temperature_c" yaml:"surface_temperature_c"`
	SemiMajorAxis      Number            `json:"semi_major_axis_km" yaml:"semi_major_axis_km"`
	Periapsis          Number            `json:"periapsis_km" yaml:"periapsis_km"`
	Apoapsis           Number            `json:"apoapsis_km" yaml:"apoapsis_km"`
	OrbitalPeriodDays  Number            `json:"orbital_period_days" yaml:"orbital_period_days"`
	Pressure           Number            `json:"pressure_kpa" yaml:"pressure_kpa"`
	AtmosphericDensity Number            `json:"atmospheric_density_kg_m3" yaml:"atmospheric_density_kg_m3"`
	PartialPressures   map[string]Number `json:"partial_pressures_kpa" yaml:"partial_pressures_kpa"`
}

type SystemReport struct {
	Name    string         `json:"name" yaml:"name"`
	Star    StarReport     `json:"star" yaml:"star"`
	Planets []PlanetReport `json:"planets" yaml:"planets"`
}

func ForStar(name string, s *celestial.Star) StarReport {
	return StarReport{
		Name:          name,
		Mass:          Number(s.Mass()),
		Age:           Number(s.Age()),
		Luminosity:    Number(s.Luminosity()),
		MaxAge:        Number(s.MaxAge()),
		Radius:        Number(s.Radius()),
		Density:       Number(s.Density()),
		Temperature:   Number(s.Temperature()),
		HabitableZone: spanOf(s.HabitableZone()),
		EarthLikeLife: s.SupportsEarthLikeLife(),
		SpectralClass: s.SpectralClass().String(),
		SI: StarSI{
			Mass:          Number(s.MassSI()),
			Radius:        Number(s.RadiusSI()),
			Luminosity:    Number(s.LuminositySI()),
			Density:       Number(s.DensitySI()),
			HabitableZone: spanOf(s.HabitableZoneSI()),
		},
	}
}

func ForPlanet(name string, p *celestial.Planet) PlanetReport {
	partial := make(map[string]Number, len(celestial.Gases))
	partialSI := make(map[string]Number, len(celestial.Gases))
	for _, g := range celestial.Gases {
		partial[g.String()] = Number(p.PartialPressure(g))
		partialSI[g.String()] = Number(p.PartialPressureSI(g))
	}

	return PlanetReport{
		Name:               name,
		Inputs:             inputsOf(p.Params()),
		Density:            Number(p.Density()),
		Radius:             Number(p.Radius()),
		Gravity:            Number(p.Gravity()),
		EscapeVelocity:     Number(p.EscapeVelocity()),
		RotationDirection:  p.RotationDirection().String(),
		Tropics:            spanOf(p.Tropics()),
		PolarCircles:       spanOf(p.PolarCircles()),
		SurfaceTemperature: Number(p.SurfaceTemperature()),
		Periapsis:          Number(p.Periapsis()),
		Apoapsis:           Number(p.Apoapsis()),
		OrbitalPeriod:      Number(p.OrbitalPeriod()),
		OrbitalDirection:   p.OrbitalDirection().String(),
		Nitrogen:           Number(p.Nitrogen()),
		AtmosphericDensity: Number(p.AtmosphericDensity()),
		CirculationCells:   p.CirculationCells(),
		CellBands:          spansOf(p.CellBands()),
		PartialPressures:   partial,
		SI: PlanetSI{
			Mass:               Number(p.MassSI()),
			Radius:             Number(p.RadiusSI()),
			Gravity:            Number(p.GravitySI()),
			EscapeVelocity:     Number(p.EscapeVelocitySI()),
			SurfaceTemperature: Number(p.SurfaceTemperatureCelsius()),
			SemiMajorAxis:      Number(p.SemiMajorAxisSI()),
			Periapsis:          Number(p.PeriapsisSI()),
			Apoapsis:           Number(p.ApoapsisSI()),
			OrbitalPeriodDays:  Number(p.OrbitalPeriodDays()),
			Pressure:           Number(p.PressureSI()),
			AtmosphericDensity: Number(p.AtmosphericDensitySI()),
			PartialPressures:   partialSI,
		},
	}
}

// ForSystem reports a star and its planets. names[i] labels planets[i];
// missing names fall back to an empty label.
func ForSystem(name string, star *celestial.Star, planets []*celestial.Planet, names []string) SystemReport {
	r := SystemReport{
		Name:    name,
		Star:    ForStar(name, star),
		Planets: make([]PlanetReport, len(planets)),
	}
	for i, p := range planets {
		var n string
		if i < len(names) {
			n = names[i]
		}
		r.Planets[i] = ForPlanet(n, p)
	}
	return r
}
