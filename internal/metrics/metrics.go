// Package metrics summarises a sweep series. Each metric observes the
// (input, output) points one at a time and reports a single value.
package metrics

import (
	"fmt"
	"math"
)

type Metric interface {
	Name() string
	Observe(x, y float64)
	Value() float64
	Reset()
}

type Min struct {
	value   float64
	samples int
}

func NewMin() *Min { return &Min{} }

func (m *Min) Name() string { return "min" }

func (m *Min) Observe(x, y float64) {
	if m.samples == 0 || y < m.value {
		m.value = y
	}
	m.samples++
}

func (m *Min) Value() float64 {
	if m.samples == 0 {
		return math.NaN()
	}
	return m.value
}

func (m *Min) Reset() { *m = Min{} }

type Max struct {
	value   float64
	samples int
}

func NewMax() *Max { return &Max{} }

func (m *Max) Name() string { return "max" }

func (m *Max) Observe(x, y float64) {
	if m.samples == 0 || y > m.value {
		m.value = y
	}
	m.samples++
}

func (m *Max) Value() float64 {
	if m.samples == 0 {
		return math.NaN()
	}
	return m.value
}

func (m *Max) Reset() { *m = Max{} }

type Mean struct {
	sum     float64
	samples int
}

func NewMean() *Mean { return &Mean{} }

func (m *Mean) Name() string { return "mean" }

func (m *Mean) Observe(x, y float64) {
	m.sum += y
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return math.NaN()
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() { *m = Mean{} }

// Within reports the fraction of points whose output falls inside
// [lower, upper], e.g. the share of orbits with liquid surface water.
type Within struct {
	lower, upper float64
	inside       int
	samples      int
}

func NewWithin(lower, upper float64) *Within {
	return &Within{lower: lower, upper: upper}
}

func (w *Within) Name() string {
	return fmt.Sprintf("within[%g,%g]", w.lower, w.upper)
}

func (w *Within) Observe(x, y float64) {
	w.samples++
	if y >= w.lower && y <= w.upper {
		w.inside++
	}
}

func (w *Within) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.inside) / float64(w.samples)
}

func (w *Within) Reset() {
	w.inside = 0
	w.samples = 0
}

// Defaults returns fresh min, max and mean metrics.
func Defaults() []Metric {
	return []Metric{NewMin(), NewMax(), NewMean()}
}

// Observe feeds every point to every metric.
func Observe(xs, ys []float64, ms ...Metric) {
	for i := range xs {
		if i >= len(ys) {
			break
		}
		for _, m := range ms {
			m.Observe(xs[i], ys[i])
		}
	}
}
