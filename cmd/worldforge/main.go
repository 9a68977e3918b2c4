package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/worldforge/internal/celestial"
	"github.com/san-kum/worldforge/internal/config"
	"github.com/san-kum/worldforge/internal/export"
	"github.com/san-kum/worldforge/internal/logging"
	"github.com/san-kum/worldforge/internal/metrics"
	"github.com/san-kum/worldforge/internal/registry"
	"github.com/san-kum/worldforge/internal/report"
	"github.com/san-kum/worldforge/internal/sweep"
	"github.com/san-kum/worldforge/internal/tui"
	"github.com/san-kum/worldforge/internal/units"
)

var (
	settingsFile string
	logLevel     string
	logFormat    string
	outputFormat string

	starMass   float64
	starAge    float64
	starName   string
	planetName string

	planetParams = celestial.EarthParams()

	systemFile string
	preset     string
	saveFile   string
	onlyPlanet string

	sweepParam   string
	sweepMeasure string
	sweepFrom    float64
	sweepTo      float64
	sweepSteps   int
	plotHeight   int
	plotWidth    int
	csvFile      string
	svgFile      string
	withinBand   string
	workers      int

	searchAxes   []string
	searchTarget float64

	sightHeight float64
	reference   string

	log    = logr.Discard()
	format = report.FormatTable
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "worldforge",
		Short:             "star and planet attribute calculator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "", "settings file (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "report format (table, json, yaml)")

	starCmd := &cobra.Command{
		Use:   "star",
		Short: "derive the attributes of a main-sequence star",
		Args:  cobra.NoArgs,
		RunE:  runStar,
	}
	addStarFlags(starCmd.Flags(), "mass", "age")
	starCmd.Flags().StringVar(&starName, "name", "", "star name")

	planetCmd := &cobra.Command{
		Use:   "planet",
		Short: "derive the attributes of a planet around a star",
		Args:  cobra.NoArgs,
		RunE:  runPlanet,
	}
	addStarFlags(planetCmd.Flags(), "star-mass", "star-age")
	addPlanetFlags(planetCmd.Flags())
	planetCmd.Flags().StringVar(&planetName, "name", "planet", "planet name")

	systemCmd := &cobra.Command{
		Use:   "system",
		Short: "derive a whole star system from a definition file or preset",
		Args:  cobra.NoArgs,
		RunE:  runSystem,
	}
	addSystemFlags(systemCmd.Flags())
	addStarFlags(systemCmd.Flags(), "star-mass", "star-age")
	systemCmd.Flags().StringVar(&saveFile, "save", "", "write the system definition to this file")
	systemCmd.Flags().StringVar(&onlyPlanet, "planet", "", "report only this planet")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in star systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Fprintf(out, "  %-10s %-18s %s\n", p, cfg.Name, strings.Join(cfg.PlanetNames(), ", "))
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one input and plot how a derived value responds",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addStarFlags(sweepCmd.Flags(), "star-mass", "star-age")
	addPlanetFlags(sweepCmd.Flags())
	sweepCmd.Flags().StringVar(&sweepParam, "param", "semi_major_axis", "input to vary (prefix star. for the star)")
	sweepCmd.Flags().StringVarP(&sweepMeasure, "measure", "m", "surface_temperature", "derived value to record (prefix star. for the star)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.5, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 2, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of points")
	sweepCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	sweepCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	sweepCmd.Flags().StringVar(&csvFile, "csv", "", "also write the series to a CSV file")
	sweepCmd.Flags().StringVar(&svgFile, "svg", "", "also write the plot to an SVG file")
	sweepCmd.Flags().StringVar(&withinBand, "within", "", "report the share of points inside lo:hi")
	sweepCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers (0 uses all CPUs)")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "grid-search inputs for a derived value closest to a target",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	addStarFlags(searchCmd.Flags(), "star-mass", "star-age")
	addPlanetFlags(searchCmd.Flags())
	searchCmd.Flags().StringArrayVar(&searchAxes, "vary", nil, "axis as param=from:to:steps (repeatable)")
	searchCmd.Flags().StringVarP(&sweepMeasure, "measure", "m", "surface_temperature", "derived value to match")
	searchCmd.Flags().Float64Var(&searchTarget, "target", 288, "target value")
	_ = searchCmd.MarkFlagRequired("vary")

	sightCmd := &cobra.Command{
		Use:   "sight",
		Short: "distance to the horizon for an observer on the planet",
		Args:  cobra.NoArgs,
		RunE:  runSight,
	}
	addStarFlags(sightCmd.Flags(), "star-mass", "star-age")
	addPlanetFlags(sightCmd.Flags())
	sightCmd.Flags().Float64Var(&sightHeight, "height", 1.7, "observer height above the surface (m)")

	convertCmd := &cobra.Command{
		Use:       "convert <kind> <value>",
		Short:     "convert a relative quantity to SI units",
		Long:      "convert a relative quantity to SI units\n\nkinds: " + strings.Join(units.Kinds(), ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: units.Kinds(),
		RunE:      runConvert,
	}
	convertCmd.Flags().StringVar(&reference, "ref", "earth", "reference body (sol, earth, luna, au)")

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "interactive terminal editor",
		Args:  cobra.NoArgs,
		RunE:  runEdit,
	}
	addSystemFlags(editCmd.Flags())

	rootCmd.AddCommand(starCmd, planetCmd, systemCmd, presetsCmd, sweepCmd, searchCmd, sightCmd, convertCmd, editCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addStarFlags(fs *pflag.FlagSet, massFlag, ageFlag string) {
	fs.Float64Var(&starMass, massFlag, config.DefaultStarMass, "star mass (solar masses)")
	fs.Float64Var(&starAge, ageFlag, config.DefaultStarAge, "star age (Gyr)")
}

func addPlanetFlags(fs *pflag.FlagSet) {
	p := &planetParams
	fs.Float64Var(&p.Mass, "mass", p.Mass, "planet mass (Earth masses)")
	fs.Float64Var(&p.CoreMassFraction, "cmf", p.CoreMassFraction, "core mass fraction (0-1)")
	fs.Float64Var(&p.AxialTilt, "tilt", p.AxialTilt, "axial tilt (degrees)")
	fs.Float64Var(&p.Albedo, "albedo", p.Albedo, "albedo (0-1)")
	fs.Float64Var(&p.GreenhouseFactor, "greenhouse", p.GreenhouseFactor, "greenhouse factor")
	fs.Float64Var(&p.RotationPeriod, "rotation", p.RotationPeriod, "rotation period (hours)")
	fs.Float64Var(&p.SemiMajorAxis, "sma", p.SemiMajorAxis, "semi-major axis (AU)")
	fs.Float64Var(&p.Eccentricity, "ecc", p.Eccentricity, "orbital eccentricity")
	fs.Float64Var(&p.Inclination, "inc", p.Inclination, "orbital inclination (degrees)")
	fs.Float64Var(&p.Pressure, "pressure", p.Pressure, "surface pressure (atm)")
	fs.Float64Var(&p.Oxygen, "o2", p.Oxygen, "oxygen fraction")
	fs.Float64Var(&p.CarbonDioxide, "co2", p.CarbonDioxide, "carbon dioxide fraction")
	fs.Float64Var(&p.Argon, "ar", p.Argon, "argon fraction")
}

func addSystemFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&systemFile, "file", "f", "", "system definition file (yaml)")
	fs.StringVar(&preset, "preset", "", "use a built-in system ("+strings.Join(config.ListPresets(), ", ")+")")
}

// setup resolves settings and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(settingsFile, cmd.Flags())
	if err != nil {
		return err
	}

	log, err = logging.New(settings.Log.Level, settings.Log.Format)
	if err != nil {
		return err
	}
	format, err = report.ParseFormat(settings.Output)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logr.NewContext(ctx, log))
	log.V(1).Info("settings loaded", "file", settingsFile, "output", format)
	return nil
}

func runStar(cmd *cobra.Command, args []string) error {
	star := celestial.NewStar(starMass, starAge)
	return report.Write(cmd.OutOrStdout(), format, report.ForStar(starName, star))
}

func runPlanet(cmd *cobra.Command, args []string) error {
	reg := registry.New(log)
	id := reg.AddStar("star", celestial.NewStar(starMass, starAge))
	p, err := reg.AddPlanet(id, planetName, planetParams)
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), format, report.ForPlanet(planetName, p))
}

func loadSystem() (*config.SystemConfig, error) {
	switch {
	case systemFile != "" && preset != "":
		return nil, fmt.Errorf("--file and --preset are mutually exclusive")
	case systemFile != "":
		cfg, err := config.Load(systemFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load system: %w", err)
		}
		return cfg, nil
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	default:
		return config.DefaultConfig(), nil
	}
}

func runSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadSystem()
	if err != nil {
		return err
	}

	reg := registry.New(log)
	id, err := cfg.Register(reg)
	if err != nil {
		return err
	}

	// CLI star flags override the definition.
	if cmd.Flags().Changed("star-mass") || cmd.Flags().Changed("star-age") {
		err := reg.UpdateStar(id, func(s *celestial.Star) {
			if cmd.Flags().Changed("star-mass") {
				s.SetMass(starMass)
				cfg.Star.Mass = starMass
			}
			if cmd.Flags().Changed("star-age") {
				s.SetAge(starAge)
				cfg.Star.Age = starAge
			}
		})
		if err != nil {
			return err
		}
	}

	if saveFile != "" {
		if err := config.Save(saveFile, cfg); err != nil {
			return err
		}
		log.Info("system definition saved", "path", saveFile)
	}

	star, err := reg.Star(id)
	if err != nil {
		return err
	}
	names := cfg.PlanetNames()
	if onlyPlanet != "" {
		if _, ok := cfg.Planet(onlyPlanet); !ok {
			return fmt.Errorf("%s has no planet %q (have %s)", cfg.Name, onlyPlanet, strings.Join(names, ", "))
		}
		names = []string{onlyPlanet}
	}
	planets := make([]*celestial.Planet, 0, len(names))
	for _, n := range names {
		p, err := reg.Planet(id, n)
		if err != nil {
			return err
		}
		planets = append(planets, p)
	}
	return report.Write(cmd.OutOrStdout(), format, report.ForSystem(cfg.Name, star, planets, names))
}

func sweepBase() sweep.Base {
	return sweep.Base{StarMass: starMass, StarAge: starAge, Planet: planetParams}
}

func runSweep(cmd *cobra.Command, args []string) error {
	spec := sweep.Spec{
		Base:   sweepBase(),
		Param:  sweepParam,
		Output: sweepMeasure,
		Values: sweep.Range(sweepFrom, sweepTo, sweepSteps),
	}

	var series *sweep.Series
	var err error
	if workers == 1 {
		series, err = sweep.Run(cmd.Context(), spec)
	} else {
		series, err = sweep.RunParallel(cmd.Context(), spec, workers)
	}
	if err != nil {
		return err
	}

	if csvFile != "" {
		f, err := os.Create(csvFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := series.WriteCSV(f); err != nil {
			return err
		}
		log.Info("series written", "path", csvFile, "points", len(series.X))
	}
	if svgFile != "" {
		title := fmt.Sprintf("%s vs %s", series.Output, series.Param)
		if err := export.WriteSVG(svgFile, series.X, series.Y, 640, 320, title); err != nil {
			return err
		}
		log.Info("plot written", "path", svgFile)
	}

	if format != report.FormatTable {
		return report.Write(cmd.OutOrStdout(), format, series)
	}

	ms := metrics.Defaults()
	if withinBand != "" {
		lo, hi, err := parseBand(withinBand)
		if err != nil {
			return err
		}
		ms = append(ms, metrics.NewWithin(lo, hi))
	}
	summary := series.Summary(ms...)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, series.Plot(plotHeight, plotWidth))
	fmt.Fprintln(out)
	for _, m := range ms {
		fmt.Fprintf(out, "  %-16s %g\n", m.Name(), summary[m.Name()])
	}
	return nil
}

func parseBand(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid band %q: want lo:hi", s)
	}
	lo, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid band %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid band %q: %w", s, err)
	}
	return lo, hi, nil
}

// parseAxis reads "param=from:to:steps".
func parseAxis(s string) (sweep.Axis, error) {
	param, spec, ok := strings.Cut(s, "=")
	if !ok {
		return sweep.Axis{}, fmt.Errorf("invalid axis %q: want param=from:to:steps", s)
	}
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return sweep.Axis{}, fmt.Errorf("invalid axis %q: want param=from:to:steps", s)
	}
	from, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return sweep.Axis{}, fmt.Errorf("invalid axis %q: %w", s, err)
	}
	to, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return sweep.Axis{}, fmt.Errorf("invalid axis %q: %w", s, err)
	}
	steps, err := strconv.Atoi(parts[2])
	if err != nil {
		return sweep.Axis{}, fmt.Errorf("invalid axis %q: %w", s, err)
	}
	return sweep.Axis{Param: param, Values: sweep.Range(from, to, steps)}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	axes := make([]sweep.Axis, 0, len(searchAxes))
	for _, s := range searchAxes {
		a, err := parseAxis(s)
		if err != nil {
			return err
		}
		axes = append(axes, a)
	}

	match, err := sweep.Search(cmd.Context(), sweepBase(), axes, sweep.Goal{Output: sweepMeasure, Target: searchTarget})
	if err != nil {
		return err
	}

	if format != report.FormatTable {
		return report.Write(cmd.OutOrStdout(), format, match)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s = %g (target %g, off by %g)\n", sweepMeasure, match.Value, searchTarget, match.Distance)
	for _, a := range axes {
		fmt.Fprintf(out, "  %s = %g\n", a.Param, match.Params[a.Param])
	}
	return nil
}

func runSight(cmd *cobra.Command, args []string) error {
	p := celestial.NewPlanet(celestial.NewStar(starMass, starAge), planetParams)
	fmt.Fprintf(cmd.OutOrStdout(), "%.3f km\n", p.SightDistance(sightHeight))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	ref, err := units.ParseReference(reference)
	if err != nil {
		return err
	}
	out, unit, err := units.Convert(args[0], v, ref)
	if err != nil {
		return fmt.Errorf("%w (kinds: %s)", err, strings.Join(units.Kinds(), ", "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", out, unit)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadSystem()
	if err != nil {
		return err
	}
	star, planets := cfg.Build()
	return tui.Run(cfg.Name, star, planets, cfg.PlanetNames())
}
