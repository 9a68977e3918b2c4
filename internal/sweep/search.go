package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"github.com/san-kum/worldforge/internal/report"
)

var ErrNoAxes = errors.New("sweep: search needs at least one axis")

// Axis is one parameter of a grid search and the values it takes.
type Axis struct {
	Param  string
	Values []float64
}

// Goal asks for the grid point whose Output lands closest to Target.
type Goal struct {
	Output string
	Target float64
}

type Match struct {
	Params   map[string]float64 `json:"params" yaml:"params"`
	Value    float64            `json:"value" yaml:"value"`
	Distance float64            `json:"distance" yaml:"distance"`
}

func (m *Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Params   map[string]report.Number `json:"params"`
		Value    report.Number            `json:"value"`
		Distance report.Number            `json:"distance"`
	}{report.NumberMap(m.Params), report.Number(m.Value), report.Number(m.Distance)})
}

// Search walks the full grid spanned by axes and returns the best match.
// Points whose parameters or output cannot be resolved abort the search.
func Search(ctx context.Context, base Base, axes []Axis, goal Goal) (*Match, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	for _, a := range axes {
		if len(a.Values) == 0 {
			return nil, ErrNoValues
		}
	}

	g := &gridSearch{base: base, axes: axes, goal: goal, best: &Match{Distance: math.Inf(1)}}
	if err := g.search(ctx, 0, make(map[string]float64, len(axes))); err != nil {
		return nil, err
	}

	logr.FromContextOrDiscard(ctx).WithName("sweep").V(1).Info("search finished",
		"output", goal.Output, "target", goal.Target, "evaluated", g.evaluated, "distance", g.best.Distance)
	return g.best, nil
}

type gridSearch struct {
	base      Base
	axes      []Axis
	goal      Goal
	best      *Match
	evaluated int
}

func (g *gridSearch) search(ctx context.Context, depth int, current map[string]float64) error {
	if depth == len(g.axes) {
		return g.evaluate(ctx, current)
	}

	axis := g.axes[depth]
	for _, v := range axis.Values {
		current[axis.Param] = v
		if err := g.search(ctx, depth+1, current); err != nil {
			return err
		}
	}
	delete(current, axis.Param)
	return nil
}

func (g *gridSearch) evaluate(ctx context.Context, params map[string]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	star, planet := g.base.build()
	for _, name := range sortedStarFirst(params) {
		if err := apply(star, planet, name, params[name]); err != nil {
			return err
		}
	}
	out, err := read(star, planet, g.goal.Output)
	if err != nil {
		return err
	}
	g.evaluated++

	dist := math.Abs(out - g.goal.Target)
	if dist < g.best.Distance {
		g.best.Distance = dist
		g.best.Value = out
		g.best.Params = make(map[string]float64, len(params))
		for k, v := range params {
			g.best.Params[k] = v
		}
	}
	return nil
}

// sortedStarFirst orders names so star inputs are applied before planet ones.
func sortedStarFirst(params map[string]float64) []string {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := isStar(names[i]), isStar(names[j])
		if si != sj {
			return si
		}
		return names[i] < names[j]
	})
	return names
}

func isStar(name string) bool {
	return strings.HasPrefix(name, starPrefix)
}
