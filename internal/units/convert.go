package units

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownKind = errors.New("units: unknown quantity kind")

type converter struct {
	unit string
	fn   func(v float64, ref Reference) float64
}

var converters = map[string]converter{
	"mass":            {"kg", MassToSI},
	"distance":        {"km", DistanceToSI},
	"distance-from":   {"", DistanceFromSI},
	"luminosity":      {"W", func(v float64, _ Reference) float64 { return LuminosityToSI(v) }},
	"gravity":         {"m/s^2", GravityToSI},
	"escape-velocity": {"km/s", func(v float64, _ Reference) float64 { return EscapeVelocityToSI(v) }},
	"temperature":     {"C", func(v float64, _ Reference) float64 { return KelvinToCelsius(v) }},
	"pressure":        {"kPa", func(v float64, _ Reference) float64 { return AtmToKPa(v) }},
}

// Convert dispatches on a quantity kind by name and returns the converted
// value with its unit. Kinds that take no reference ignore ref.
func Convert(kind string, v float64, ref Reference) (float64, string, error) {
	c, ok := converters[kind]
	if !ok {
		return 0, "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	unit := c.unit
	if unit == "" {
		unit = ref.String()
	}
	return c.fn(v, ref), unit, nil
}

func Kinds() []string {
	kinds := make([]string, 0, len(converters))
	for k := range converters {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
