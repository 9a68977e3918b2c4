package celestial

import (
	"fmt"
	"sort"
)

// StarParamNames lists the primary inputs accepted by Star.SetParam.
var StarParamNames = []string{"mass", "age"}

// PlanetParamNames lists the primary inputs accepted by Planet.SetParam, in
// physical, orbital, atmospheric order.
var PlanetParamNames = []string{
	"mass", "core_mass_fraction", "axial_tilt", "albedo", "greenhouse_factor",
	"rotation_period", "semi_major_axis", "eccentricity", "inclination",
	"pressure", "oxygen", "carbon_dioxide", "argon",
}

func (s *Star) GetParams() map[string]float64 {
	return map[string]float64{
		"mass": s.mass,
		"age":  s.age,
	}
}

func (s *Star) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		s.SetMass(value)
	case "age":
		s.SetAge(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

var starOutputs = map[string]func(*Star) float64{
	"luminosity":   (*Star).Luminosity,
	"max_age":      (*Star).MaxAge,
	"radius":       (*Star).Radius,
	"density":      (*Star).Density,
	"temperature":  (*Star).Temperature,
	"hz_inner":     func(s *Star) float64 { return s.habitableZone.Lower },
	"hz_outer":     func(s *Star) float64 { return s.habitableZone.Upper },
	"luminosity_w": (*Star).LuminositySI,
	"radius_km":    (*Star).RadiusSI,
}

// Output returns a numeric derived value by name.
func (s *Star) Output(name string) (float64, error) {
	fn, ok := starOutputs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOutput, name)
	}
	return fn(s), nil
}

func StarOutputNames() []string {
	return sortedKeys(starOutputs)
}

func (p *Planet) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":               p.params.Mass,
		"core_mass_fraction": p.params.CoreMassFraction,
		"axial_tilt":         p.params.AxialTilt,
		"albedo":             p.params.Albedo,
		"greenhouse_factor":  p.params.GreenhouseFactor,
		"rotation_period":    p.params.RotationPeriod,
		"semi_major_axis":    p.params.SemiMajorAxis,
		"eccentricity":       p.params.Eccentricity,
		"inclination":        p.params.Inclination,
		"pressure":           p.params.Pressure,
		"oxygen":             p.params.Oxygen,
		"carbon_dioxide":     p.params.CarbonDioxide,
		"argon":              p.params.Argon,
	}
}

// SetParam updates one primary input through its setter, so a successful
// call costs exactly one recompute.
func (p *Planet) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.SetMass(value)
	case "core_mass_fraction":
		p.SetCoreMassFraction(value)
	case "axial_tilt":
		p.SetAxialTilt(value)
	case "albedo":
		p.SetAlbedo(value)
	case "greenhouse_factor":
		p.SetGreenhouseFactor(value)
	case "rotation_period":
		p.SetRotationPeriod(value)
	case "semi_major_axis":
		p.SetSemiMajorAxis(value)
	case "eccentricity":
		p.SetEccentricity(value)
	case "inclination":
		p.SetInclination(value)
	case "pressure":
		p.SetPressure(value)
	case "oxygen":
		p.SetOxygen(value)
	case "carbon_dioxide":
		p.SetCarbonDioxide(value)
	case "argon":
		p.SetArgon(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

var planetOutputs = map[string]func(*Planet) float64{
	"density":             (*Planet).Density,
	"radius":              (*Planet).Radius,
	"gravity":             (*Planet).Gravity,
	"escape_velocity":     (*Planet).EscapeVelocity,
	"surface_temperature": (*Planet).SurfaceTemperature,
	"surface_celsius":     (*Planet).SurfaceTemperatureCelsius,
	"periapsis":           (*Planet).Periapsis,
	"apoapsis":            (*Planet).Apoapsis,
	"orbital_period":      (*Planet).OrbitalPeriod,
	"orbital_days":        (*Planet).OrbitalPeriodDays,
	"nitrogen":            (*Planet).Nitrogen,
	"atmospheric_density": (*Planet).AtmosphericDensity,
	"circulation_cells":   func(p *Planet) float64 { return float64(p.circulationCells) },
	"tropics":             func(p *Planet) float64 { return p.tropics.Upper },
	"polar_circles":       func(p *Planet) float64 { return p.polarCircles.Lower },
}

func (p *Planet) Output(name string) (float64, error) {
	fn, ok := planetOutputs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOutput, name)
	}
	return fn(p), nil
}

func PlanetOutputNames() []string {
	return sortedKeys(planetOutputs)
}

func sortedKeys[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
