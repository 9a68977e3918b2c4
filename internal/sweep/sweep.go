// Package sweep varies one primary input of a star or planet and records how
// a derived output responds.
//
// Parameter and output names are the celestial parameter names. A "star."
// prefix addresses the host star, e.g. "star.mass" or "star.luminosity";
// anything else addresses the planet.
package sweep

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/worldforge/internal/celestial"
	"github.com/san-kum/worldforge/internal/metrics"
	"github.com/san-kum/worldforge/internal/report"
)

const starPrefix = "star."

var ErrNoValues = errors.New("sweep: no values to sweep")

// Base is the system every sweep point starts from.
type Base struct {
	StarMass float64
	StarAge  float64
	Planet   celestial.PlanetParams
}

func DefaultBase() Base {
	return Base{StarMass: 1, StarAge: 4.5, Planet: celestial.EarthParams()}
}

func (b Base) build() (*celestial.Star, *celestial.Planet) {
	star := celestial.NewStar(b.StarMass, b.StarAge)
	return star, celestial.NewPlanet(star, b.Planet)
}

type Spec struct {
	Base
	Param  string
	Output string
	Values []float64
}

type Series struct {
	Param  string    `json:"param" yaml:"param"`
	Output string    `json:"output" yaml:"output"`
	X      []float64 `json:"x" yaml:"x"`
	Y      []float64 `json:"y" yaml:"y"`
}

// MarshalJSON writes non-finite points as "NaN", "+Inf" or "-Inf".
func (s *Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Param  string          `json:"param"`
		Output string          `json:"output"`
		X      []report.Number `json:"x"`
		Y      []report.Number `json:"y"`
	}{s.Param, s.Output, report.Numbers(s.X), report.Numbers(s.Y)})
}

// Range returns steps evenly spaced values from from to to inclusive.
func Range(from, to float64, steps int) []float64 {
	if steps < 1 {
		return nil
	}
	if steps == 1 {
		return []float64{from}
	}
	values := make([]float64, steps)
	step := (to - from) / float64(steps-1)
	for i := range values {
		values[i] = from + float64(i)*step
	}
	values[steps-1] = to
	return values
}

// Run evaluates spec.Output at every value of spec.Param. Each point starts
// from a fresh copy of spec.Base. The context is checked between points.
func Run(ctx context.Context, spec Spec) (*Series, error) {
	if len(spec.Values) == 0 {
		return nil, ErrNoValues
	}
	log := logr.FromContextOrDiscard(ctx).WithName("sweep")

	series := &Series{
		Param:  spec.Param,
		Output: spec.Output,
		X:      make([]float64, 0, len(spec.Values)),
		Y:      make([]float64, 0, len(spec.Values)),
	}

	for _, v := range spec.Values {
		if err := ctx.Err(); err != nil {
			return series, err
		}

		star, planet := spec.Base.build()
		if err := apply(star, planet, spec.Param, v); err != nil {
			return nil, err
		}
		out, err := read(star, planet, spec.Output)
		if err != nil {
			return nil, err
		}

		series.X = append(series.X, v)
		series.Y = append(series.Y, out)
		log.V(2).Info("point", "value", v, "output", out)
	}

	log.V(1).Info("sweep finished", "param", spec.Param, "output", spec.Output, "points", len(series.X))
	return series, nil
}

func apply(star *celestial.Star, planet *celestial.Planet, name string, value float64) error {
	if rest, ok := strings.CutPrefix(name, starPrefix); ok {
		if err := star.SetParam(rest, value); err != nil {
			return err
		}
		planet.Recalculate()
		return nil
	}
	return planet.SetParam(name, value)
}

func read(star *celestial.Star, planet *celestial.Planet, name string) (float64, error) {
	if rest, ok := strings.CutPrefix(name, starPrefix); ok {
		return star.Output(rest)
	}
	return planet.Output(name)
}

// Plot renders the series as an ASCII chart.
func (s *Series) Plot(height, width int) string {
	if len(s.Y) == 0 {
		return ""
	}
	caption := fmt.Sprintf("%s vs %s [%g .. %g]", s.Output, s.Param, s.X[0], s.X[len(s.X)-1])
	return asciigraph.Plot(s.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

func (s *Series) Rows() [][]report.Row {
	rows := make([]report.Row, 0, len(s.X)+1)
	rows = append(rows, report.Row{Label: s.Param, Value: s.Output})
	for i := range s.X {
		rows = append(rows, report.Row{
			Label: strconv.FormatFloat(s.X[i], 'g', 6, 64),
			Value: strconv.FormatFloat(s.Y[i], 'g', 6, 64),
		})
	}
	return [][]report.Row{rows}
}

func (s *Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{s.Param, s.Output}); err != nil {
		return err
	}
	for i := range s.X {
		record := []string{
			strconv.FormatFloat(s.X[i], 'g', -1, 64),
			strconv.FormatFloat(s.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary resets ms, runs them over the series (min/max/mean when ms is
// empty) and returns each value keyed by metric name.
func (s *Series) Summary(ms ...metrics.Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = metrics.Defaults()
	}
	for _, m := range ms {
		m.Reset()
	}
	metrics.Observe(s.X, s.Y, ms...)

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
