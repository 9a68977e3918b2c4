package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("report: unknown format")
	ErrNotTabular    = errors.New("report: value has no table form")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Row is one line of a table: a label, a formatted value and its unit.
type Row struct {
	Label string
	Value string
	Unit  string
}

// Tabular values know how to lay themselves out as rows. Sections are
// separated by a blank line.
type Tabular interface {
	Rows() [][]Row
}

func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		t, ok := v.(Tabular)
		if !ok {
			return fmt.Errorf("%w: %T", ErrNotTabular, v)
		}
		return writeTable(w, t.Rows())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes v to path, picking the format from the extension when
// format is empty.
func WriteFile(path string, format Format, v any) error {
	if format == "" {
		format = FormatJSON
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			format = FormatYAML
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, format, v)
}

func writeTable(w io.Writer, sections [][]Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, rows := range sections {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Label, r.Value, r.Unit)
		}
	}
	return tw.Flush()
}

func num(v Number) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 64)
}

func rangeStr(lo, hi Number) string {
	return num(lo) + " - " + num(hi)
}

func (r StarReport) Rows() [][]Row {
	return [][]Row{r.rows()}
}

func (r StarReport) rows() []Row {
	title := "Star"
	if r.Name != "" {
		title = "Star " + r.Name
	}
	return []Row{
		{title, r.SpectralClass, ""},
		{"mass", num(r.Mass), "Msol"},
		{"age", num(r.Age), "Gyr"},
		{"luminosity", num(r.Luminosity), "Lsol"},
		{"max age", num(r.MaxAge), "Gyr"},
		{"radius", num(r.Radius), "Rsol"},
		{"density", num(r.Density), "rho_sol"},
		{"temperature", num(r.Temperature), "K"},
		{"habitable zone", rangeStr(r.HabitableZone.Lower, r.HabitableZone.Upper), "AU"},
		{"earth-like life", strconv.FormatBool(r.EarthLikeLife), ""},
		{"mass (SI)", num(r.SI.Mass), "kg"},
		{"radius (SI)", num(r.SI.Radius), "km"},
		{"luminosity (SI)", num(r.SI.Luminosity), "W"},
		{"density (SI)", num(r.SI.Density), "g/cm3"},
		{"habitable zone (SI)", rangeStr(r.SI.HabitableZone.Lower, r.SI.HabitableZone.Upper), "km"},
	}
}

func (r PlanetReport) Rows() [][]Row {
	return [][]Row{r.rows()}
}

func (r PlanetReport) rows() []Row {
	title := "Planet"
	if r.Name != "" {
		title = "Planet " + r.Name
	}
	in := r.Inputs
	rows := []Row{
		{title, "", ""},
		{"mass", num(in.Mass), "Mearth"},
		{"core mass fraction", num(in.CoreMassFraction), ""},
		{"axial tilt", num(in.AxialTilt), "deg"},
		{"albedo", num(in.Albedo), ""},
		{"greenhouse factor", num(in.GreenhouseFactor), ""},
		{"rotation period", num(in.RotationPeriod), "h"},
		{"semi-major axis", num(in.SemiMajorAxis), "AU"},
		{"eccentricity", num(in.Eccentricity), ""},
		{"inclination", num(in.Inclination), "deg"},
		{"pressure", num(in.Pressure), "atm"},
		{"oxygen", num(in.Oxygen), ""},
		{"carbon dioxide", num(in.CarbonDioxide), ""},
		{"argon", num(in.Argon), ""},
		{"density", num(r.Density), "rho_earth"},
		{"radius", num(r.Radius), "Rearth"},
		{"gravity", num(r.Gravity), "g"},
		{"escape velocity", num(r.EscapeVelocity), "v_earth"},
		{"rotation", r.RotationDirection, ""},
		{"tropics", rangeStr(r.Tropics.Lower, r.Tropics.Upper), "deg"},
		{"polar circles", rangeStr(r.PolarCircles.Lower, r.PolarCircles.Upper), "deg"},
		{"surface temperature", num(r.SurfaceTemperature), "K"},
		{"surface temperature (SI)", num(r.SI.SurfaceTemperature), "C"},
		{"periapsis", num(r.Periapsis), "AU"},
		{"apoapsis", num(r.Apoapsis), "AU"},
		{"orbital period", num(r.OrbitalPeriod), "local days"},
		{"orbital period (SI)", num(r.SI.OrbitalPeriodDays), "days"},
		{"orbit", r.OrbitalDirection, ""},
		{"nitrogen", num(r.Nitrogen), ""},
		{"atmospheric density", num(r.AtmosphericDensity), "g/cm3"},
		{"atmospheric density (SI)", num(r.SI.AtmosphericDensity), "kg/m3"},
		{"circulation cells", strconv.Itoa(r.CirculationCells), ""},
	}
	for i, b := range r.CellBands {
		rows = append(rows, Row{fmt.Sprintf("  cell %d", i+1), rangeStr(b.Lower, b.Upper), "deg"})
	}
	for _, gas := range []string{"O2", "CO2", "Ar", "N2"} {
		rows = append(rows, Row{"p" + gas, num(r.SI.PartialPressures[gas]), "kPa"})
	}
	return append(rows,
		Row{"mass (SI)", num(r.SI.Mass), "kg"},
		Row{"radius (SI)", num(r.SI.Radius), "km"},
		Row{"gravity (SI)", num(r.SI.Gravity), "m/s2"},
		Row{"escape velocity (SI)", num(r.SI.EscapeVelocity), "km/s"},
		Row{"semi-major axis (SI)", num(r.SI.SemiMajorAxis), "km"},
	)
}

func (r SystemReport) Rows() [][]Row {
	sections := [][]Row{r.Star.rows()}
	for _, p := range r.Planets {
		sections = append(sections, p.rows())
	}
	return sections
}
