package celestial

import (
	"math"

	"github.com/san-kum/worldforge/internal/units"
)

// PhysicalParams groups the bulk properties of a planet.
type PhysicalParams struct {
	Mass             float64 `json:"mass" yaml:"mass"`                             // Mearth
	CoreMassFraction float64 `json:"core_mass_fraction" yaml:"core_mass_fraction"` // 0-1
	AxialTilt        float64 `json:"axial_tilt" yaml:"axial_tilt"`                 // degrees
	Albedo           float64 `json:"albedo" yaml:"albedo"`                         // 0 absorber, 1 reflector
	GreenhouseFactor float64 `json:"greenhouse_factor" yaml:"greenhouse_factor"`   // 0-500
}

// OrbitalParams groups spin and orbit.
type OrbitalParams struct {
	RotationPeriod float64 `json:"rotation_period" yaml:"rotation_period"` // hours
	SemiMajorAxis  float64 `json:"semi_major_axis" yaml:"semi_major_axis"` // AU
	Eccentricity   float64 `json:"eccentricity" yaml:"eccentricity"`
	Inclination    float64 `json:"inclination" yaml:"inclination"` // degrees
}

// AtmosphereParams groups surface pressure and composition. Nitrogen makes up
// whatever the three listed gases leave over.
type AtmosphereParams struct {
	Pressure      float64 `json:"pressure" yaml:"pressure"` // atm
	Oxygen        float64 `json:"oxygen" yaml:"oxygen"`
	CarbonDioxide float64 `json:"carbon_dioxide" yaml:"carbon_dioxide"`
	Argon         float64 `json:"argon" yaml:"argon"`
}

type PlanetParams struct {
	PhysicalParams   `yaml:",inline"`
	OrbitalParams    `yaml:",inline"`
	AtmosphereParams `yaml:",inline"`
}

// EarthParams returns the Earth values every defaulting constructor starts from.
func EarthParams() PlanetParams {
	return PlanetParams{
		PhysicalParams: PhysicalParams{
			Mass:             1,
			CoreMassFraction: 0.334,
			AxialTilt:        23.5,
			Albedo:           0.29,
			GreenhouseFactor: 1,
		},
		OrbitalParams: OrbitalParams{
			RotationPeriod: 24,
			SemiMajorAxis:  1,
			Eccentricity:   0.0167,
			Inclination:    0,
		},
		AtmosphereParams: AtmosphereParams{
			Pressure:      1,
			Oxygen:        0.2095,
			CarbonDioxide: 0.0004,
			Argon:         0.0093,
		},
	}
}

const (
	earthDensity      = 5.51   // g/cm^3
	earthRadiusMeters = 6371000
	daysPerYear       = 365.256
	solLuminosityErg  = 3.846e33  // erg/s
	stefanBoltzmann   = 0.000056703 // erg cm^-2 s^-1 K^-4
	greenhouseScale   = 0.5841
	surfaceEmissivity = 0.9
	gasConstant       = 8.3145 // J mol^-1 K^-1

	o2MolarMass  = 0.0319988 // kg/mol
	co2MolarMass = 0.04401
	arMolarMass  = 0.03995
	n2MolarMass  = 0.02801
)

// Planet is a terrestrial planet orbiting a shared Star. The planet never owns
// its star: several planets may point at the same one.
type Planet struct {
	star   *Star
	params PlanetParams

	density            float64 // g/cm^3
	radius             float64 // Rearth
	gravity            float64 // g
	escapeVelocity     float64 // Vearth
	rotationDirection  Direction
	tropics            Range // degrees
	polarCircles       Range // degrees
	surfaceTemperature float64 // K
	periapsis          float64 // AU
	apoapsis           float64 // AU
	orbitalPeriod      float64 // local days
	orbitalDirection   Direction
	nitrogen           float64
	atmosphericDensity float64 // g/cm^3
	circulationCells   int
	cellBands          []Range // degrees
}

// NewPlanet builds a planet from a full parameter set. A nil star is a
// programming error and panics.
func NewPlanet(star *Star, params PlanetParams) *Planet {
	if star == nil {
		panic("celestial: planet requires a star")
	}
	p := &Planet{star: star, params: params}
	p.Recalculate()
	return p
}

// NewPlanetWithRotation uses Earth values for everything but the rotation period.
func NewPlanetWithRotation(star *Star, rotationHours float64) *Planet {
	params := EarthParams()
	params.RotationPeriod = rotationHours
	return NewPlanet(star, params)
}

func NewEarthlike(star *Star) *Planet {
	return NewPlanet(star, EarthParams())
}

// ChangeStar points the planet at another star and recomputes.
func (p *Planet) ChangeStar(star *Star) {
	if star == nil {
		panic("celestial: planet requires a star")
	}
	p.star = star
	p.Recalculate()
}

func (p *Planet) SetMass(m float64) {
	p.params.Mass = m
	p.Recalculate()
}

func (p *Planet) SetCoreMassFraction(cmf float64) {
	p.params.CoreMassFraction = cmf
	p.Recalculate()
}

func (p *Planet) SetAxialTilt(deg float64) {
	p.params.AxialTilt = deg
	p.Recalculate()
}

func (p *Planet) SetAlbedo(albedo float64) {
	p.params.Albedo = albedo
	p.Recalculate()
}

func (p *Planet) SetGreenhouseFactor(g float64) {
	p.params.GreenhouseFactor = g
	p.Recalculate()
}

func (p *Planet) SetRotationPeriod(hours float64) {
	p.params.RotationPeriod = hours
	p.Recalculate()
}

func (p *Planet) SetSemiMajorAxis(au float64) {
	p.params.SemiMajorAxis = au
	p.Recalculate()
}

func (p *Planet) SetEccentricity(e float64) {
	p.params.Eccentricity = e
	p.Recalculate()
}

func (p *Planet) SetInclination(deg float64) {
	p.params.Inclination = deg
	p.Recalculate()
}

func (p *Planet) SetPressure(atm float64) {
	p.params.Pressure = atm
	p.Recalculate()
}

func (p *Planet) SetOxygen(fraction float64) {
	p.params.Oxygen = fraction
	p.Recalculate()
}

func (p *Planet) SetCarbonDioxide(fraction float64) {
	p.params.CarbonDioxide = fraction
	p.Recalculate()
}

func (p *Planet) SetArgon(fraction float64) {
	p.params.Argon = fraction
	p.Recalculate()
}

func (p *Planet) SetPhysical(v PhysicalParams) {
	p.params.PhysicalParams = v
	p.Recalculate()
}

func (p *Planet) SetOrbital(v OrbitalParams) {
	p.params.OrbitalParams = v
	p.Recalculate()
}

func (p *Planet) SetAtmosphere(v AtmosphereParams) {
	p.params.AtmosphereParams = v
	p.Recalculate()
}

// Recalculate rebuilds every derived field. Each step only reads fields set
// above it and the star's current outputs.
func (p *Planet) Recalculate() {
	p.density = p.calculateDensity()
	p.radius = math.Pow(p.params.Mass/(p.density/earthDensity), 1.0/3.0)
	p.gravity = p.params.Mass / math.Pow(p.radius, 2)
	p.escapeVelocity = math.Sqrt(p.params.Mass / p.radius)
	p.rotationDirection = rotationDirection(p.params.AxialTilt)
	p.tropics = p.calculateTropics()
	p.polarCircles = p.calculatePolarCircles()
	p.surfaceTemperature = p.calculateSurfaceTemperature()
	p.periapsis = p.params.SemiMajorAxis * (1 - p.params.Eccentricity)
	p.apoapsis = p.params.SemiMajorAxis * (1 + p.params.Eccentricity)
	p.orbitalPeriod = p.OrbitalPeriodDays() * 24 / p.params.RotationPeriod
	p.orbitalDirection = orbitalDirection(p.params.Inclination)
	p.nitrogen = 1 - (p.params.Oxygen + p.params.CarbonDioxide + p.params.Argon)
	p.atmosphericDensity = p.calculateAtmosphericDensity()
	p.circulationCells = circulationCellCount(p.params.RotationPeriod)
	p.cellBands = circulationCellBands(p.circulationCells)
}

// SightDistance returns the distance to the geometric horizon in km for an
// observer standing heightMeters above the surface.
func (p *Planet) SightDistance(heightMeters float64) float64 {
	return math.Sqrt(2*p.radius*earthRadiusMeters*heightMeters+math.Pow(heightMeters, 2)) / 1000
}

func (p *Planet) calculateDensity() float64 {
	cmf := p.params.CoreMassFraction
	d := earthDensity * math.Pow(p.params.Mass, 0.189) / math.Pow(1.07-0.21*cmf, 3)
	if p.params.Mass > 0.6 || d > 3.5+4.37*cmf {
		return d
	}
	return 3.5 * 4.37 * cmf
}

func (p *Planet) calculateTropics() Range {
	tilt := p.params.AxialTilt
	if tilt < 90 {
		return Range{0, tilt}
	}
	return Range{0, 180 - tilt}
}

func (p *Planet) calculatePolarCircles() Range {
	tilt := p.params.AxialTilt
	if tilt < 90 {
		return Range{90 - tilt, 90}
	}
	return Range{90 - (180 - tilt), 90}
}

// radiative balance in cgs units, warmed by the greenhouse term and reduced by
// the surface emissivity before taking the fourth root
func (p *Planet) calculateSurfaceTemperature() float64 {
	luminosity := solLuminosityErg * p.star.Luminosity()
	distance := p.SemiMajorAxisSI() * 100 * 1000
	greenhouse := p.params.GreenhouseFactor * greenhouseScale

	numerator := math.Sqrt((1 - p.params.Albedo) * luminosity / (16 * math.Pi * stefanBoltzmann))
	effective := math.Sqrt(numerator) / math.Sqrt(distance)
	equivalent := math.Pow(effective, 4) * (1 + 3*greenhouse/4)
	return math.Pow(equivalent/surfaceEmissivity, 0.25)
}

// pressure in kPa gives g/cm^3
func (p *Planet) calculateAtmosphericDensity() float64 {
	molar := p.params.Oxygen*o2MolarMass +
		p.params.CarbonDioxide*co2MolarMass +
		p.params.Argon*arMolarMass +
		p.nitrogen*n2MolarMass
	return (p.PressureSI() * molar) / (p.surfaceTemperature * gasConstant)
}

func (p *Planet) Star() *Star { return p.star }

// Params returns a copy of the primary inputs.
func (p *Planet) Params() PlanetParams { return p.params }

func (p *Planet) Mass() float64 { return p.params.Mass }
func (p *Planet) CoreMassFraction() float64 { return p.params.CoreMassFraction }
func (p *Planet) AxialTilt() float64 { return p.params.AxialTilt }
func (p *Planet) Albedo() float64 { return p.params.Albedo }
func (p *Planet) GreenhouseFactor() float64 { return p.params.GreenhouseFactor }
func (p *Planet) RotationPeriod() float64 { return p.params.RotationPeriod }
func (p *Planet) SemiMajorAxis() float64 { return p.params.SemiMajorAxis }
func (p *Planet) Eccentricity() float64 { return p.params.Eccentricity }
func (p *Planet) Inclination() float64 { return p.params.Inclination }
func (p *Planet) Pressure() float64 { return p.params.Pressure }
func (p *Planet) Oxygen() float64 { return p.params.Oxygen }
func (p *Planet) CarbonDioxide() float64 { return p.params.CarbonDioxide }
func (p *Planet) Argon() float64 { return p.params.Argon }

func (p *Planet) Density() float64 { return p.density }
func (p *Planet) Radius() float64 { return p.radius }
func (p *Planet) Gravity() float64 { return p.gravity }
func (p *Planet) EscapeVelocity() float64 { return p.escapeVelocity }
func (p *Planet) RotationDirection() Direction { return p.rotationDirection }
func (p *Planet) Tropics() Range { return p.tropics }
func (p *Planet) PolarCircles() Range { return p.polarCircles }
func (p *Planet) SurfaceTemperature() float64 { return p.surfaceTemperature }
func (p *Planet) Periapsis() float64 { return p.periapsis }
func (p *Planet) Apoapsis() float64 { return p.apoapsis }
func (p *Planet) OrbitalPeriod() float64 { return p.orbitalPeriod }
func (p *Planet) OrbitalDirection() Direction { return p.orbitalDirection }
func (p *Planet) Nitrogen() float64 { return p.nitrogen }
func (p *Planet) AtmosphericDensity() float64 { return p.atmosphericDensity }
func (p *Planet) CirculationCells() int { return p.circulationCells }

// CellBands returns a copy of the circulation cell latitude bands.
func (p *Planet) CellBands() []Range {
	out := make([]Range, len(p.cellBands))
	copy(out, p.cellBands)
	return out
}

func (p *Planet) MassSI() float64 {
	return units.MassToSI(p.params.Mass, units.Earth)
}

// RadiusSI returns km.
func (p *Planet) RadiusSI() float64 {
	return units.DistanceToSI(p.radius, units.Earth)
}

func (p *Planet) GravitySI() float64 {
	return units.GravityToSI(p.gravity, units.Earth)
}

// EscapeVelocitySI returns km/s.
func (p *Planet) EscapeVelocitySI() float64 {
	return units.EscapeVelocityToSI(p.escapeVelocity)
}

// SemiMajorAxisSI returns km.
func (p *Planet) SemiMajorAxisSI() float64 {
	return units.DistanceToSI(p.params.SemiMajorAxis, units.AU)
}

func (p *Planet) PeriapsisSI() float64 {
	return units.DistanceToSI(p.periapsis, units.AU)
}

func (p *Planet) ApoapsisSI() float64 {
	return units.DistanceToSI(p.apoapsis, units.AU)
}

// PressureSI returns kPa.
func (p *Planet) PressureSI() float64 {
	return units.AtmToKPa(p.params.Pressure)
}

func (p *Planet) SurfaceTemperatureCelsius() float64 {
	return units.KelvinToCelsius(p.surfaceTemperature)
}

// AtmosphericDensitySI returns kg/m^3.
func (p *Planet) AtmosphericDensitySI() float64 {
	return p.atmosphericDensity * 1000
}

// OrbitalPeriodYears uses Kepler's third law against the star's current mass.
func (p *Planet) OrbitalPeriodYears() float64 {
	return math.Sqrt(math.Pow(p.params.SemiMajorAxis, 3) / p.star.Mass())
}

func (p *Planet) OrbitalPeriodDays() float64 {
	return p.OrbitalPeriodYears() * daysPerYear
}

// Gas names a constituent of the atmosphere.
type Gas int

const (
	Oxygen Gas = iota
	CarbonDioxide
	Argon
	Nitrogen
)

func (g Gas) String() string {
	switch g {
	case Oxygen:
		return "O2"
	case CarbonDioxide:
		return "CO2"
	case Argon:
		return "Ar"
	case Nitrogen:
		return "N2"
	default:
		return "unknown"
	}
}

// Gases lists every constituent in reporting order.
var Gases = []Gas{Oxygen, CarbonDioxide, Argon, Nitrogen}

func (p *Planet) fraction(g Gas) float64 {
	switch g {
	case Oxygen:
		return p.params.Oxygen
	case CarbonDioxide:
		return p.params.CarbonDioxide
	case Argon:
		return p.params.Argon
	case Nitrogen:
		return p.nitrogen
	default:
		return 0
	}
}

// PartialPressure returns the partial pressure of g in atm.
func (p *Planet) PartialPressure(g Gas) float64 {
	return p.params.Pressure * p.fraction(g)
}

// PartialPressureSI returns the partial pressure of g in kPa.
func (p *Planet) PartialPressureSI(g Gas) float64 {
	return units.AtmToKPa(p.PartialPressure(g))
}
