// Package tui is an interactive terminal editor for a star and the planets
// orbiting it. Every edit goes through the entity setters, so the derived
// panel always shows freshly recomputed values.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/worldforge/internal/celestial"
)

type field struct {
	name string
	star bool
	step float64
}

var steps = map[string]float64{
	"mass":               0.1,
	"core_mass_fraction": 0.01,
	"axial_tilt":         1,
	"albedo":             0.01,
	"greenhouse_factor":  0.1,
	"rotation_period":    1,
	"semi_major_axis":    0.05,
	"eccentricity":       0.01,
	"inclination":        1,
	"pressure":           0.1,
	"oxygen":             0.01,
	"carbon_dioxide":     0.001,
	"argon":              0.001,
}

func editorFields() []field {
	fields := []field{
		{name: "mass", star: true, step: 0.05},
		{name: "age", star: true, step: 0.5},
	}
	for _, name := range celestial.PlanetParamNames {
		fields = append(fields, field{name: name, step: steps[name]})
	}
	return fields
}

type model struct {
	name    string
	star    *celestial.Star
	planets []*celestial.Planet
	labels  []string
	current int

	fields  []field
	cursor  int
	editing bool
	editBuf string
	status  string

	width  int
	height int
}

// NewEditor builds the editor model. A system without planets gets an
// Earth-like one so there is something to edit.
func NewEditor(name string, star *celestial.Star, planets []*celestial.Planet, labels []string) model {
	if len(planets) == 0 {
		planets = []*celestial.Planet{celestial.NewEarthlike(star)}
		labels = []string{"planet"}
	}
	for len(labels) < len(planets) {
		labels = append(labels, fmt.Sprintf("planet %d", len(labels)+1))
	}
	return model{
		name:    name,
		star:    star,
		planets: planets,
		labels:  labels,
		fields:  editorFields(),
		width:   100,
		height:  40,
	}
}

// Run starts the editor on the alternate screen and blocks until it quits.
func Run(name string, star *celestial.Star, planets []*celestial.Planet, labels []string) error {
	p := tea.NewProgram(NewEditor(name, star, planets, labels), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) planet() *celestial.Planet {
	return m.planets[m.current]
}

func (m model) value(f field) float64 {
	if f.star {
		return m.star.GetParams()[f.name]
	}
	return m.planet().GetParams()[f.name]
}

// set routes a value through SetParam. Changing the star also recomputes
// every planet sharing it.
func (m *model) set(f field, v float64) {
	var err error
	if f.star {
		err = m.star.SetParam(f.name, v)
		for _, p := range m.planets {
			p.Recalculate()
		}
	} else {
		err = m.planet().SetParam(f.name, v)
	}
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "left", "h":
		f := m.fields[m.cursor]
		m.set(f, m.value(f)-f.step)
	case "right", "l":
		f := m.fields[m.cursor]
		m.set(f, m.value(f)+f.step)
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.value(m.fields[m.cursor]), 'g', -1, 64)
	case "tab":
		m.current = (m.current + 1) % len(m.planets)
	case "shift+tab":
		m.current = (m.current + len(m.planets) - 1) % len(m.planets)
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err != nil {
			m.status = fmt.Sprintf("invalid number %q", m.editBuf)
		} else {
			m.set(m.fields[m.cursor], v)
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "ctrl+c":
		return m, tea.Quit
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s", m.name, m.star.SpectralClass())
	planet := fmt.Sprintf("%s (%d/%d)", m.labels[m.current], m.current+1, len(m.planets))
	b.WriteString("\n  " + header.Render(cyan.Render(title)+"  "+dim.Render(planet)) + "\n\n")

	inputs := panel.Render(m.viewInputs())
	derived := panel.Render(m.viewDerived())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", inputs, " ", derived) + "\n")

	if m.status != "" {
		b.WriteString("  " + red.Render(m.status) + "\n")
	}
	b.WriteString("  " + keyHint.Render("↑↓ select  ←→ adjust  enter edit  tab planet  q quit") + "\n")
	return b.String()
}

func (m model) viewInputs() string {
	var b strings.Builder
	b.WriteString(white.Render("inputs") + "\n")

	for i, f := range m.fields {
		if i == 2 {
			b.WriteString(dimmer.Render(strings.Repeat("─", 30)) + "\n")
		}
		label := f.name
		if f.star {
			label = "star " + f.name
		}
		val := fmt.Sprintf("%10.4g", m.value(f))
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString(cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-20s", label)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("  " + dim.Render(fmt.Sprintf("%-20s", label)) + dim.Render(val) + "\n")
		}
	}
	return b.String()
}

func (m model) viewDerived() string {
	var b strings.Builder
	b.WriteString(white.Render("star") + "\n")
	for _, name := range celestial.StarOutputNames() {
		v, _ := m.star.Output(name)
		b.WriteString(derivedLine(name, v))
	}
	life := dim.Render("no")
	if m.star.SupportsEarthLikeLife() {
		life = green.Render("yes")
	}
	b.WriteString(dim.Render(fmt.Sprintf("%-22s", "earth-like life")) + life + "\n")

	p := m.planet()
	b.WriteString("\n" + white.Render("planet") + "\n")
	for _, name := range celestial.PlanetOutputNames() {
		v, _ := p.Output(name)
		b.WriteString(derivedLine(name, v))
	}
	b.WriteString(dim.Render(fmt.Sprintf("%-22s", "rotation")) + white.Render(p.RotationDirection().String()) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("%-22s", "orbit")) + white.Render(p.OrbitalDirection().String()) + "\n")
	return b.String()
}

func derivedLine(name string, v float64) string {
	return dim.Render(fmt.Sprintf("%-22s", name)) + white.Render(fmt.Sprintf("%.4g", v)) + "\n"
}
