// Package units converts magnitudes expressed as multiples of a reference
// body (the Sun, the Earth, the Moon, the astronomical unit) into SI units.
//
// Every function is pure. An unrecognised [Reference] never fails: each
// conversion falls back to its documented default body instead.
package units

import (
	"fmt"
	"strings"
)

type Reference int

const (
	Earth Reference = iota
	Sol
	Luna
	AU
)

func (r Reference) String() string {
	switch r {
	case Sol:
		return "sol"
	case Earth:
		return "earth"
	case Luna:
		return "luna"
	case AU:
		return "au"
	default:
		return fmt.Sprintf("reference(%d)", int(r))
	}
}

// ParseReference accepts the long names and the single-letter tags S, E, M, A.
func ParseReference(s string) (Reference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sol", "sun", "s":
		return Sol, nil
	case "earth", "e":
		return Earth, nil
	case "luna", "moon", "m":
		return Luna, nil
	case "au", "a":
		return AU, nil
	}
	return Earth, fmt.Errorf("unknown reference: %s", s)
}

const (
	MassSol   = 1.989e30 // kg
	MassEarth = 5.972e24 // kg
	MassLuna  = 7.342e22 // kg

	RadiusSol   = 696340.0  // km
	RadiusEarth = 6370.11   // km
	RadiusLuna  = 1736.4    // km
	AstroUnit   = 149600000 // km

	LuminositySol = 3.828e26 // W

	GravitySol   = 274.0 // m/s^2
	GravityEarth = 9.81  // m/s^2
	GravityLuna  = 1.625 // m/s^2

	EscapeVelocityEarth = 11.2 // km/s

	kelvinOffset = 273.0
	kPaPerAtm    = 101.3
)

// MassToSI returns kg. Defaults to Earth masses.
func MassToSI(v float64, ref Reference) float64 {
	switch ref {
	case Sol:
		return v * MassSol
	case Luna:
		return v * MassLuna
	default:
		return v * MassEarth
	}
}

func distanceScale(ref Reference) float64 {
	switch ref {
	case Sol:
		return RadiusSol
	case Earth:
		return RadiusEarth
	case Luna:
		return RadiusLuna
	default:
		return AstroUnit
	}
}

// DistanceToSI returns km. Sol, Earth and Luna scale by the body's radius;
// anything else is treated as astronomical units.
func DistanceToSI(v float64, ref Reference) float64 {
	return v * distanceScale(ref)
}

// DistanceFromSI is the inverse of DistanceToSI.
func DistanceFromSI(km float64, ref Reference) float64 {
	return km / distanceScale(ref)
}

// LuminosityToSI returns W. Only solar luminosities are supported.
func LuminosityToSI(v float64) float64 {
	return v * LuminositySol
}

// GravityToSI returns m/s^2. Defaults to Earth gravities.
func GravityToSI(v float64, ref Reference) float64 {
	switch ref {
	case Sol:
		return v * GravitySol
	case Luna:
		return v * GravityLuna
	default:
		return v * GravityEarth
	}
}

// EscapeVelocityToSI returns km/s for a multiple of Earth's escape velocity.
func EscapeVelocityToSI(v float64) float64 {
	return v * EscapeVelocityEarth
}

func KelvinToCelsius(k float64) float64 {
	return k - kelvinOffset
}

func AtmToKPa(atm float64) float64 {
	return atm * kPaPerAtm
}
