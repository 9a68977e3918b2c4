package celestial

import "fmt"

// Direction classifies a spin or an orbit relative to the reference plane.
type Direction int

const (
	DirectionUndefined Direction = iota
	Prograde
	Retrograde
)

func (d Direction) String() string {
	switch d {
	case Prograde:
		return "Prograde"
	case Retrograde:
		return "Retrograde"
	default:
		return "Undefined"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Range is a closed interval, used for distances in AU or km and for
// latitudes in degrees north/south of the equator.
type Range struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

// Width is Upper - Lower.
func (r Range) Width() float64 {
	return r.Upper - r.Lower
}

func rotationDirection(tilt float64) Direction {
	switch {
	case tilt == 90:
		return DirectionUndefined
	case tilt >= 0 && tilt < 90:
		return Prograde
	default:
		return Retrograde
	}
}

// negative inclinations count as prograde
func orbitalDirection(inclination float64) Direction {
	switch {
	case inclination > 90:
		return Retrograde
	case inclination < 90:
		return Prograde
	default:
		return DirectionUndefined
	}
}
