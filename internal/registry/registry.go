// Package registry keeps named stars and the planets orbiting them behind
// stable handles. Mutating a star through the registry recomputes every
// planet attached to it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/san-kum/worldforge/internal/celestial"
)

var (
	ErrStarNotFound   = errors.New("registry: star not found")
	ErrStarInUse      = errors.New("registry: star has attached planets")
	ErrPlanetNotFound = errors.New("registry: planet not found")
	ErrPlanetExists   = errors.New("registry: planet already exists")
)

type system struct {
	name    string
	star    *celestial.Star
	planets map[string]*celestial.Planet
}

type Registry struct {
	mu      sync.RWMutex
	log     logr.Logger
	systems map[uuid.UUID]*system
}

func New(log logr.Logger) *Registry {
	return &Registry{
		log:     log.WithName("registry"),
		systems: make(map[uuid.UUID]*system),
	}
}

func (r *Registry) AddStar(name string, star *celestial.Star) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	r.systems[id] = &system{
		name:    name,
		star:    star,
		planets: make(map[string]*celestial.Planet),
	}
	r.mu.Unlock()

	r.log.V(1).Info("star added", "id", id, "name", name, "mass", star.Mass())
	return id
}

// Star returns the live star. Read it freely, but mutate it only through
// UpdateStar so the attached planets are recomputed under the lock.
func (r *Registry) Star(id uuid.UUID) (*celestial.Star, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sys, ok := r.systems[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStarNotFound, id)
	}
	return sys.star, nil
}

// StarName returns the display name given to AddStar.
func (r *Registry) StarName(id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sys, ok := r.systems[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrStarNotFound, id)
	}
	return sys.name, nil
}

// Stars lists handles ordered by star name.
func (r *Registry) Stars() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.systems))
	for id := range r.systems {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.systems[ids[i]].name, r.systems[ids[j]].name
		if a == b {
			return ids[i].String() < ids[j].String()
		}
		return a < b
	})
	return ids
}

func (r *Registry) AddPlanet(starID uuid.UUID, name string, params celestial.PlanetParams) (*celestial.Planet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sys, ok := r.systems[starID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStarNotFound, starID)
	}
	if _, exists := sys.planets[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrPlanetExists, name)
	}

	p := celestial.NewPlanet(sys.star, params)
	sys.planets[name] = p
	r.log.V(1).Info("planet added", "star", sys.name, "planet", name)
	return p, nil
}

// Planet returns the live planet. Mutations belong in UpdatePlanet.
func (r *Registry) Planet(starID uuid.UUID, name string) (*celestial.Planet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sys, ok := r.systems[starID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStarNotFound, starID)
	}
	p, ok := sys.planets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlanetNotFound, name)
	}
	return p, nil
}

// Planets returns the planet names attached to a star, sorted.
func (r *Registry) Planets(starID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sys, ok := r.systems[starID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStarNotFound, starID)
	}
	names := make([]string, 0, len(sys.planets))
	for name := range sys.planets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// UpdateStar applies fn to the star and recomputes every attached planet so
// none of them keeps values derived from the old star state.
func (r *Registry) UpdateStar(id uuid.UUID, fn func(*celestial.Star)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sys, ok := r.systems[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, id)
	}

	fn(sys.star)
	for _, p := range sys.planets {
		p.Recalculate()
	}
	r.log.V(1).Info("star updated", "name", sys.name, "planets", len(sys.planets))
	return nil
}

// UpdatePlanet applies fn to one planet under the registry lock.
func (r *Registry) UpdatePlanet(starID uuid.UUID, name string, fn func(*celestial.Planet)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sys, ok := r.systems[starID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, starID)
	}
	p, ok := sys.planets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlanetNotFound, name)
	}

	fn(p)
	r.log.V(1).Info("planet updated", "star", sys.name, "planet", name)
	return nil
}

func (r *Registry) MovePlanet(name string, from, to uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.systems[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, from)
	}
	dst, ok := r.systems[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, to)
	}
	p, ok := src.planets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlanetNotFound, name)
	}
	if _, exists := dst.planets[name]; exists && from != to {
		return fmt.Errorf("%w: %s", ErrPlanetExists, name)
	}

	delete(src.planets, name)
	p.ChangeStar(dst.star)
	dst.planets[name] = p
	r.log.Info("planet moved", "planet", name, "from", src.name, "to", dst.name)
	return nil
}

func (r *Registry) RemovePlanet(starID uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sys, ok := r.systems[starID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, starID)
	}
	if _, ok := sys.planets[name]; !ok {
		return fmt.Errorf("%w: %s", ErrPlanetNotFound, name)
	}
	delete(sys.planets, name)
	return nil
}

// RemoveStar drops a star. A star still referenced by planets cannot go.
func (r *Registry) RemoveStar(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sys, ok := r.systems[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStarNotFound, id)
	}
	if n := len(sys.planets); n > 0 {
		return fmt.Errorf("%w: %s has %d", ErrStarInUse, sys.name, n)
	}
	delete(r.systems, id)
	r.log.V(1).Info("star removed", "name", sys.name)
	return nil
}
