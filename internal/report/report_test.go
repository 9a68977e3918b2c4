package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/worldforge/internal/celestial"
)

func TestForStar(t *testing.T) {
	r := ForStar("Sol", celestial.NewSol())

	assert.Equal(t, "Sol", r.Name)
	assert.Equal(t, Number(1), r.Luminosity)
	assert.Equal(t, "G12.8V", r.SpectralClass)
	assert.True(t, r.EarthLikeLife)
	assert.InDelta(t, 696340, float64(r.SI.Radius), 1e-6)
}

func TestForPlanet(t *testing.T) {
	r := ForPlanet("Earth", celestial.NewEarthlike(celestial.NewSol()))

	assert.Equal(t, "Prograde", r.RotationDirection)
	assert.Equal(t, "Prograde", r.OrbitalDirection)
	assert.Equal(t, 3, r.CirculationCells)
	assert.Len(t, r.CellBands, 3)
	assert.InDelta(t, 0.7808, float64(r.Nitrogen), 1e-9)
	assert.InDelta(t, 0.2095*101.3, float64(r.SI.PartialPressures["O2"]), 1e-9)
	assert.Equal(t, Number(24), r.Inputs.RotationPeriod)
}

func TestForSystem(t *testing.T) {
	sol := celestial.NewSol()
	planets := []*celestial.Planet{celestial.NewEarthlike(sol), celestial.NewPlanetWithRotation(sol, 48)}

	r := ForSystem("Sol", sol, planets, []string{"Earth"})
	require.Len(t, r.Planets, 2)
	assert.Equal(t, "Earth", r.Planets[0].Name)
	assert.Empty(t, r.Planets[1].Name)
	assert.Equal(t, 1, r.Planets[1].CirculationCells)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, ForPlanet("Earth", celestial.NewEarthlike(celestial.NewSol()))))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Prograde", decoded["rotation_direction"])
	assert.Equal(t, 3.0, decoded["circulation_cells"])

	inputs := decoded["inputs"].(map[string]any)
	assert.Equal(t, 24.0, inputs["rotation_period"])
	assert.Contains(t, buf.String(), "\n  \"name\"")
}

func TestWriteJSONNonFinite(t *testing.T) {
	still := ForPlanet("still", celestial.NewPlanetWithRotation(celestial.NewStar(1, 4.5), 0))
	dead := ForStar("", celestial.NewStar(0, 1))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, still))
	var planet map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &planet))
	assert.Equal(t, "+Inf", planet["orbital_period"])
	assert.Equal(t, 0.0, planet["circulation_cells"])

	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, dead))
	var star map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &star))
	assert.Equal(t, "NaN", star["max_age"])
	assert.Equal(t, "NA", star["spectral_class"])

	var back StarReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.True(t, math.IsNaN(float64(back.MaxAge)))
	assert.Equal(t, Number(0), back.Mass)
}

func TestNumberJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(Number(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(got))
	}

	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
}

func TestWriteYAMLNonFinite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, ForStar("", celestial.NewStar(0, 1))))
	assert.Contains(t, buf.String(), "max_age: .nan")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, ForStar("Sol", celestial.NewSol())))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "G12.8V", decoded["spectral_class"])
	assert.Equal(t, true, decoded["earth_like_life"])
}

func TestWriteTable(t *testing.T) {
	sol := celestial.NewSol()
	sys := ForSystem("Sol", sol, []*celestial.Planet{celestial.NewEarthlike(sol)}, []string{"Earth"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, sys))
	out := buf.String()

	assert.Contains(t, out, "Star Sol")
	assert.Contains(t, out, "G12.8V")
	assert.Contains(t, out, "Planet Earth")
	assert.Contains(t, out, "circulation cells")
	assert.Contains(t, out, "carbon dioxide")
	assert.Regexp(t, `oxygen\s+0\.2095`, out)
	assert.Regexp(t, `argon\s+0\.0093`, out)
	assert.Contains(t, out, "\n\n", "sections are separated by a blank line")

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "luminosity ") {
			assert.Contains(t, line, "Lsol")
		}
	}
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, FormatTable, 42), ErrNotTabular)
	assert.ErrorIs(t, Write(&buf, Format("xml"), 42), ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := ForStar("Sol", celestial.NewSol())

	jsonPath := filepath.Join(dir, "sol.json")
	require.NoError(t, WriteFile(jsonPath, "", r))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	yamlPath := filepath.Join(dir, "sol.yaml")
	require.NoError(t, WriteFile(yamlPath, "", r))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "spectral_class: G12.8V")
}
