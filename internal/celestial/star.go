package celestial

import (
	"math"

	"github.com/san-kum/worldforge/internal/units"
)

// solar density in g/cm^3
const solDensity = 1.408

// Star is a main-sequence star described in solar units.
type Star struct {
	mass float64 // Msol
	age  float64 // Gyr

	luminosity    float64 // Lsol
	maxAge        float64 // Gyr
	radius        float64 // Rsol
	density       float64 // Dsol
	temperature   float64 // K
	habitableZone Range   // AU
	earthLikeLife bool
	class         SpectralClass
}

func NewStar(mass, age float64) *Star {
	s := &Star{mass: mass, age: age}
	s.Recalculate()
	return s
}

// NewSol returns a star with the Sun's mass and age.
func NewSol() *Star {
	return NewStar(1.0, 4.5)
}

func (s *Star) SetMass(mass float64) {
	s.mass = mass
	s.Recalculate()
}

func (s *Star) SetAge(age float64) {
	s.age = age
	s.Recalculate()
}

// Recalculate rebuilds every derived field. The spectral class depends on
// both mass and temperature and therefore runs last.
func (s *Star) Recalculate() {
	s.luminosity = s.calculateLuminosity()
	s.maxAge = s.calculateMaxAge()
	s.radius = s.calculateRadius()
	s.density = s.calculateDensity()
	s.temperature = s.calculateTemperature()
	s.habitableZone = s.calculateHabitableZone()
	s.earthLikeLife = s.calculateEarthLikeLife()
	s.class = classify(s.mass, s.temperature)
}

func (s *Star) Mass() float64 { return s.mass }
func (s *Star) Age() float64 { return s.age }
func (s *Star) Luminosity() float64 { return s.luminosity }
func (s *Star) MaxAge() float64 { return s.maxAge }
func (s *Star) Radius() float64 { return s.radius }
func (s *Star) Density() float64 { return s.density }
func (s *Star) Temperature() float64 { return s.temperature }
func (s *Star) HabitableZone() Range { return s.habitableZone }
func (s *Star) SupportsEarthLikeLife() bool { return s.earthLikeLife }
func (s *Star) SpectralClass() SpectralClass { return s.class }

func (s *Star) MassSI() float64 {
	return units.MassToSI(s.mass, units.Sol)
}

// RadiusSI returns the radius in km.
func (s *Star) RadiusSI() float64 {
	return units.DistanceToSI(s.radius, units.Sol)
}

func (s *Star) LuminositySI() float64 {
	return units.LuminosityToSI(s.luminosity)
}

// DensitySI returns the mean density in g/cm^3.
func (s *Star) DensitySI() float64 {
	return s.density * solDensity
}

// HabitableZoneSI returns the habitable zone bounds in km.
func (s *Star) HabitableZoneSI() Range {
	return Range{
		Lower: units.DistanceToSI(s.habitableZone.Lower, units.AU),
		Upper: units.DistanceToSI(s.habitableZone.Upper, units.AU),
	}
}

func (s *Star) calculateLuminosity() float64 {
	switch {
	case s.mass < 0.43:
		return 0.23 * math.Pow(s.mass, 2.3)
	case s.mass < 2:
		return math.Pow(s.mass, 4)
	default:
		return 1.4 * math.Pow(s.mass, 3.5)
	}
}

func (s *Star) calculateMaxAge() float64 {
	return (s.mass / s.luminosity) * 10
}

func (s *Star) calculateRadius() float64 {
	if s.mass < 1 {
		return math.Pow(s.mass, 0.8)
	}
	return math.Pow(s.mass, 0.57)
}

func (s *Star) calculateDensity() float64 {
	return s.mass / math.Pow(s.radius, 3)
}

func (s *Star) calculateTemperature() float64 {
	return math.Pow(s.luminosity/math.Pow(s.radius, 2), 0.25) * 5776
}

// inner and outer bounds use the runaway-greenhouse and maximum-greenhouse
// stellar flux limits
func (s *Star) calculateHabitableZone() Range {
	return Range{
		Lower: math.Sqrt(s.luminosity / 1.1),
		Upper: math.Sqrt(s.luminosity / 0.53),
	}
}

func (s *Star) calculateEarthLikeLife() bool {
	return s.mass >= 0.5 && s.mass <= 1.4 && s.age >= 3.5
}
