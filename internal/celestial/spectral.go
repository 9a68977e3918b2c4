package celestial

import (
	"math"
	"strconv"
)

type SpectralLetter int

const (
	ClassNA SpectralLetter = iota
	ClassM
	ClassK
	ClassG
	ClassF
	ClassA
	ClassB
	ClassO
)

var spectralLetters = map[SpectralLetter]string{
	ClassM: "M",
	ClassK: "K",
	ClassG: "G",
	ClassF: "F",
	ClassA: "A",
	ClassB: "B",
	ClassO: "O",
}

func (l SpectralLetter) String() string {
	if s, ok := spectralLetters[l]; ok {
		return s
	}
	return "NA"
}

// SpectralClass approximates Morgan-Keenan notation from temperature alone.
// It is not a catalogue lookup: the decile runs past 9 for most bands.
type SpectralClass struct {
	Letter SpectralLetter
	Decile float64
}

func (c SpectralClass) Valid() bool {
	return c.Letter != ClassNA
}

// String renders the class token, e.g. "G12.8V", or "NA".
func (c SpectralClass) String() string {
	if !c.Valid() {
		return "NA"
	}
	return c.Letter.String() + strconv.FormatFloat(c.Decile, 'f', 1, 64) + "V"
}

func (c SpectralClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type spectralBand struct {
	letter SpectralLetter
	lower  float64
	upper  float64
	spread float64
}

// ordered coolest first; each band's lower edge is the previous band's upper cutoff
var spectralBands = []spectralBand{
	{ClassM, 2000, 3700, 1700},
	{ClassK, 3700, 5200, 1500},
	{ClassG, 5200, 6000, 800},
	{ClassF, 6000, 7500, 1500},
	{ClassA, 7500, 10000, 2500},
	{ClassB, 10000, 33000, 23000},
	{ClassO, 33000, 95000, 62000},
}

const (
	minClassMass = 0.075
	maxClassMass = 100
)

func classify(mass, temperature float64) SpectralClass {
	if mass < minClassMass || mass > maxClassMass {
		return SpectralClass{}
	}
	for _, b := range spectralBands {
		if temperature > b.lower && temperature < b.upper {
			v := 1 - (temperature-b.upper)/b.spread
			return SpectralClass{
				Letter: b.letter,
				Decile: math.Floor(v*100) / 10,
			}
		}
	}
	return SpectralClass{}
}
