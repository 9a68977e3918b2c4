package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/worldforge/internal/celestial"
	"github.com/san-kum/worldforge/internal/registry"
)

const (
	DefaultStarName = "Sol"
	DefaultStarMass = 1.0
	DefaultStarAge  = 4.5
)

// SystemConfig is a star system definition: one star and the planets that
// orbit it. It holds primary inputs only; everything else is derived on Build.
type SystemConfig struct {
	Name    string         `yaml:"name"`
	Star    StarConfig     `yaml:"star"`
	Planets []PlanetConfig `yaml:"planets"`
}

type StarConfig struct {
	Name string  `yaml:"name"`
	Mass float64 `yaml:"mass"`
	Age  float64 `yaml:"age"`
}

// PlanetConfig carries a name plus the planet inputs. Fields left out of the
// YAML keep their Earth values.
type PlanetConfig struct {
	Name                   string `yaml:"name"`
	celestial.PlanetParams `yaml:",inline"`
}

func DefaultStar() StarConfig {
	return StarConfig{Name: DefaultStarName, Mass: DefaultStarMass, Age: DefaultStarAge}
}

func DefaultConfig() *SystemConfig {
	return &SystemConfig{
		Name: DefaultStarName,
		Star: DefaultStar(),
		Planets: []PlanetConfig{
			{Name: "Earth", PlanetParams: celestial.EarthParams()},
		},
	}
}

func (s *StarConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain StarConfig
	*s = DefaultStar()
	return value.Decode((*plain)(s))
}

func (p *PlanetConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain PlanetConfig
	*p = PlanetConfig{PlanetParams: celestial.EarthParams()}
	return value.Decode((*plain)(p))
}

func Load(path string) (*SystemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*SystemConfig, error) {
	cfg := &SystemConfig{Star: DefaultStar()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing system definition: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Star.Name
	}
	for i := range cfg.Planets {
		if cfg.Planets[i].Name == "" {
			cfg.Planets[i].Name = fmt.Sprintf("%s %c", cfg.Name, 'b'+rune(i))
		}
	}
	return cfg, nil
}

func Save(path string, cfg *SystemConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the star and every planet around it. The planets share
// the returned star.
func (c *SystemConfig) Build() (*celestial.Star, []*celestial.Planet) {
	star := celestial.NewStar(c.Star.Mass, c.Star.Age)
	planets := make([]*celestial.Planet, 0, len(c.Planets))
	for _, pc := range c.Planets {
		planets = append(planets, celestial.NewPlanet(star, pc.PlanetParams))
	}
	return star, planets
}

// Register adds the system to r and returns the star handle.
func (c *SystemConfig) Register(r *registry.Registry) (uuid.UUID, error) {
	id := r.AddStar(c.Star.Name, celestial.NewStar(c.Star.Mass, c.Star.Age))
	for _, pc := range c.Planets {
		if _, err := r.AddPlanet(id, pc.Name, pc.PlanetParams); err != nil {
			return id, fmt.Errorf("registering %s: %w", c.Name, err)
		}
	}
	return id, nil
}

// Planet returns the named planet definition.
func (c *SystemConfig) Planet(name string) (PlanetConfig, bool) {
	for _, pc := range c.Planets {
		if pc.Name == name {
			return pc, true
		}
	}
	return PlanetConfig{}, false
}

func (c *SystemConfig) PlanetNames() []string {
	names := make([]string, len(c.Planets))
	for i, pc := range c.Planets {
		names[i] = pc.Name
	}
	return names
}
