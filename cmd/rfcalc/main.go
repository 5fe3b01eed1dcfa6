package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/rfcalc/internal/analysis"
	"github.com/san-kum/rfcalc/internal/config"
	"github.com/san-kum/rfcalc/internal/logging"
	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/tline"
	"github.com/san-kum/rfcalc/internal/tui"
	"github.com/san-kum/rfcalc/internal/units"
	"github.com/san-kum/rfcalc/internal/viz"
)

var (
	dataDir   string
	logLevel  string
	logFormat string

	// Medium overrides
	er, ur, tanD, sigma float64
	// Line parameters
	lineR, lineL, lineG, lineC float64
	// Cable geometry
	preset     string
	innerDiam  float64
	outerDiam  float64
	thickness  float64
	dielectric string
	conductor  string

	materialKind string
	// Config file
	configFile string

	logger = logging.Noop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rfcalc",
		Short: "rf and microwave field calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the explorer when no command given
			return tui.RunExplorer("", tui.DefaultFrequency, "")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rfcalc", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list built-in materials",
		RunE:  listMaterials,
	}
	materialsCmd.Flags().StringVar(&materialKind, "kind", "all", "all, conductor or dielectric")

	mediumCmd := &cobra.Command{
		Use:   "medium [name]",
		Short: "derived quantities of a medium at one frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showMedium,
	}
	mediumCmd.Flags().String("freq", "1G", "frequency (Hz, accepts k/M/G suffixes)")
	addMediumFlags(mediumCmd)

	rlgcCmd := &cobra.Command{
		Use:   "rlgc",
		Short: "propagation constant and impedance from per-length RLGC",
		RunE:  showRLGC,
	}
	rlgcCmd.Flags().String("freq", "1G", "frequency")
	rlgcCmd.Flags().Float64Var(&lineR, "r", 0, "series resistance (ohm/m)")
	rlgcCmd.Flags().Float64Var(&lineL, "l", 0, "series inductance (H/m)")
	rlgcCmd.Flags().Float64Var(&lineG, "g", 0, "shunt conductance (S/m)")
	rlgcCmd.Flags().Float64Var(&lineC, "c", 0, "shunt capacitance (F/m)")

	coaxCmd := &cobra.Command{
		Use:   "coax",
		Short: "RLGC, propagation constant and impedance of a coaxial cable",
		RunE:  showCoax,
	}
	coaxCmd.Flags().String("freq", "100M", "frequency")
	coaxCmd.Flags().StringVar(&configFile, "config", "", "scenario file with a cable section (yaml)")
	addCableFlags(coaxCmd)

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "physical constants",
		RunE:  listConstants,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [conversion] [value]",
		Short: "unit conversions (run without arguments to list them)",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  convertUnits,
	}

	quantitiesCmd := &cobra.Command{
		Use:   "quantities",
		Short: "list sweepable quantities",
		RunE:  listQuantities,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in cable presets",
		RunE:  listPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [material]",
		Short: "interactive material explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFrequency(cmd)
			if err != nil {
				return err
			}
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			theme, _ := cmd.Flags().GetString("theme")
			return tui.RunExplorer(initial, f, theme)
		},
	}
	exploreCmd.Flags().String("freq", "1G", "initial frequency")
	exploreCmd.Flags().String("theme", viz.Themes[0].Name, "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	rootCmd.AddCommand(materialsCmd, mediumCmd, rlgcCmd, coaxCmd, constantsCmd, convertCmd,
		quantitiesCmd, presetsCmd, exploreCmd)
	rootCmd.AddCommand(runCommands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging installs the command line logger. Without explicit flags
// the RFCALC_LOG_* environment variables apply.
func setupLogging(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("log-level") && !flags.Changed("log-format") {
		logger = logging.NewFromEnv()
	} else {
		logger = logging.New(logging.Config{Level: logLevel, Format: logFormat})
	}
	material.SetLogger(logger)
}

func addMediumFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&er, "er", material.DefaultRelativeDielectric, "relative permittivity override")
	cmd.Flags().Float64Var(&ur, "ur", material.DefaultRelativePermeability, "relative permeability override")
	cmd.Flags().Float64Var(&tanD, "tand", material.DefaultLossTangent, "loss tangent override")
	cmd.Flags().Float64Var(&sigma, "sigma", material.DefaultConductivity, "conductivity override (S/m)")
}

func addCableFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "cable preset (see rfcalc presets)")
	cmd.Flags().Float64Var(&innerDiam, "id", 0, "inner conductor size (m)")
	cmd.Flags().Float64Var(&outerDiam, "od", 0, "dielectric size (m)")
	cmd.Flags().Float64Var(&thickness, "thickness", 0, "outer conductor thickness (m)")
	cmd.Flags().StringVar(&dielectric, "dielectric", "", "dielectric material")
	cmd.Flags().StringVar(&conductor, "conductor", "", "conductor material")
}

// mediumConfig applies the override flags that were given on top of cfg.
func mediumConfig(cmd *cobra.Command, cfg material.MediumConfig) material.MediumConfig {
	if cmd.Flags().Changed("er") {
		cfg.RelativeDielectric = material.Param(er)
	}
	if cmd.Flags().Changed("ur") {
		cfg.RelativePermeability = material.Param(ur)
	}
	if cmd.Flags().Changed("tand") {
		cfg.LossTangent = material.Param(tanD)
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Conductivity = material.Param(sigma)
	}
	return cfg
}

// cableConfig overlays the cable flags that were given on cfg.
func cableConfig(cmd *cobra.Command, cfg config.CableConfig) config.CableConfig {
	if cmd.Flags().Changed("preset") {
		cfg.Preset = preset
	}
	if cmd.Flags().Changed("id") {
		cfg.InnerDiameter = innerDiam
	}
	if cmd.Flags().Changed("od") {
		cfg.OuterDiameter = outerDiam
	}
	if cmd.Flags().Changed("thickness") {
		cfg.OuterThickness = thickness
	}
	if cmd.Flags().Changed("dielectric") {
		cfg.Dielectric = material.MediumConfig{Name: dielectric}
	}
	if cmd.Flags().Changed("conductor") {
		cfg.Conductor = material.MediumConfig{Name: conductor}
	}
	return cfg
}

func parseFrequency(cmd *cobra.Command) (float64, error) {
	s, _ := cmd.Flags().GetString("freq")
	f, err := viz.ParseSI(s)
	if err != nil {
		return 0, fmt.Errorf("--freq: %w", err)
	}
	if err := rf.CheckFrequency(f); err != nil {
		return 0, fmt.Errorf("--freq: %w", err)
	}
	return f, nil
}

func formatComplex(z complex128, unit string) string {
	return strings.TrimSpace(fmt.Sprintf("%.6g %+.6gj %s", real(z), imag(z), unit))
}

func listMaterials(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, name := range material.Names() {
		rec, err := material.Lookup(name)
		if err != nil {
			return err
		}
		switch materialKind {
		case "conductor":
			if !rec.IsConductor() {
				continue
			}
		case "dielectric":
			if rec.IsConductor() {
				continue
			}
		case "all":
		default:
			return fmt.Errorf("unknown material kind %q (all, conductor, dielectric)", materialKind)
		}
		rows = append(rows, []string{
			name,
			strconv.FormatFloat(rec.RelativePermittivity, 'g', -1, 64),
			strconv.FormatFloat(rec.RelativePermeability, 'g', -1, 64),
			strconv.FormatFloat(rec.LossTangent, 'g', -1, 64),
			viz.FormatSI(rec.Conductivity, "S/m"),
		})
	}
	fmt.Print(viz.Table([]string{"MATERIAL", "εr", "µr", "tanδ", "σ"}, rows))
	return nil
}

func showMedium(cmd *cobra.Command, args []string) error {
	f, err := parseFrequency(cmd)
	if err != nil {
		return err
	}

	cfg := material.MediumConfig{Name: "Vacuum"}
	if len(args) > 0 {
		cfg.Name = args[0]
	}
	m, err := material.NewMedium(mediumConfig(cmd, cfg))
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(m.Name()) + "  " + viz.Subtle.Render("at "+viz.FormatSI(f, "Hz")))
	if !m.Builtin() {
		fmt.Println(viz.Warning.Render("not a built-in material, using explicit parameters"))
	}
	fmt.Println()

	reg := analysis.Default()
	for _, q := range reg.ListMedium() {
		v, err := reg.EvalMedium(q.Name, m, f)
		if err != nil {
			fmt.Println(viz.KeyValue(q.Name, "undefined", 20) + viz.Subtle.Render("  "+undefinedReason(err)))
			continue
		}
		fmt.Println(viz.KeyValue(q.Name, viz.FormatSI(v, q.Unit), 20))
	}

	if gamma, err := m.PropagationConstant(f); err == nil {
		fmt.Println(viz.KeyValue("gamma", formatComplex(gamma, "1/m"), 20))
	}
	if eta, err := m.IntrinsicImpedance(f); err == nil {
		fmt.Println(viz.KeyValue("eta", formatComplex(eta, "ohm"), 20))
	}
	return nil
}

func undefinedReason(err error) string {
	switch {
	case errors.Is(err, rf.ErrUndefinedQuantity):
		return "(no conductivity)"
	case errors.Is(err, rf.ErrNumericalInstability):
		return "(overflow)"
	}
	return "(" + err.Error() + ")"
}

func showRLGC(cmd *cobra.Command, args []string) error {
	f, err := parseFrequency(cmd)
	if err != nil {
		return err
	}
	p := tline.RLGC{R: lineR, L: lineL, G: lineG, C: lineC}
	gamma, err := p.Gamma(f)
	if err != nil {
		return err
	}
	z0, err := p.Z0(f)
	if err != nil {
		return err
	}

	fmt.Println(viz.KeyValue("gamma", formatComplex(gamma, "1/m"), 14))
	fmt.Println(viz.KeyValue("attenuation", viz.FormatSI(tline.NepersToDB(real(gamma)), "dB/m"), 14))
	fmt.Println(viz.KeyValue("phase", viz.FormatSI(imag(gamma), "rad/m"), 14))
	fmt.Println(viz.KeyValue("Z0", formatComplex(z0, "ohm"), 14))
	fmt.Println(viz.KeyValue("|Z0|", viz.FormatSI(cmplx.Abs(z0), "ohm"), 14))
	return nil
}

func showCoax(cmd *cobra.Command, args []string) error {
	f, err := parseFrequency(cmd)
	if err != nil {
		return err
	}
	cc := config.CableConfig{}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Cable != nil {
			cc = *cfg.Cable
		}
	}
	cable, err := cableConfig(cmd, cc).Build()
	if err != nil {
		return err
	}

	p, err := cable.CalculateRLGC(f)
	if err != nil {
		return err
	}
	gamma, err := p.Gamma(f)
	if err != nil {
		return err
	}
	z0, err := p.Z0(f)
	if err != nil {
		return err
	}

	name := preset
	if name == "" {
		name = "coax"
	}
	fmt.Println(viz.Title.Render(name) + "  " + viz.Subtle.Render(fmt.Sprintf("%s in %s at %s",
		cable.Conductor.Name(), cable.Dielectric.Name(), viz.FormatSI(f, "Hz"))))
	fmt.Println(viz.Subtle.Render(fmt.Sprintf("a=%s b=%s t=%s", viz.FormatSI(cable.ID, "m"),
		viz.FormatSI(cable.OD, "m"), viz.FormatSI(cable.OuterThickness, "m"))))
	fmt.Println()
	fmt.Println(viz.KeyValue("R", viz.FormatSI(p.R, "ohm/m"), 14))
	fmt.Println(viz.KeyValue("L", viz.FormatSI(p.L, "H/m"), 14))
	fmt.Println(viz.KeyValue("G", viz.FormatSI(p.G, "S/m"), 14))
	fmt.Println(viz.KeyValue("C", viz.FormatSI(p.C, "F/m"), 14))
	fmt.Println(viz.KeyValue("gamma", formatComplex(gamma, "1/m"), 14))
	fmt.Println(viz.KeyValue("attenuation", viz.FormatSI(tline.NepersToDB(real(gamma)), "dB/m"), 14))
	fmt.Println(viz.KeyValue("Z0", formatComplex(z0, "ohm"), 14))
	return nil
}

var constantInfo = map[string]struct{ unit, desc string }{
	"c":    {"m/s", "speed of light in vacuum"},
	"e0":   {"F/m", "vacuum permittivity"},
	"mu0":  {"H/m", "vacuum permeability"},
	"eta0": {"ohm", "impedance of free space"},
	"q":    {"C", "elementary charge"},
	"k_J":  {"J/K", "Boltzmann constant"},
	"k_eV": {"eV/K", "Boltzmann constant"},
}

func listConstants(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, name := range rf.ConstantNames() {
		v, err := rf.Constant(name)
		if err != nil {
			return err
		}
		info := constantInfo[name]
		rows = append(rows, []string{name, strconv.FormatFloat(v, 'g', -1, 64), info.unit, info.desc})
	}
	fmt.Print(viz.Table([]string{"NAME", "VALUE", "UNIT", "DESCRIPTION"}, rows))
	return nil
}

func convertUnits(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		var rows [][]string
		for _, key := range units.Keys() {
			c, _ := units.Lookup(key)
			rows = append(rows, []string{key, c.From, c.To})
		}
		fmt.Print(viz.Table([]string{"CONVERSION", "FROM", "TO"}, rows))
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: rfcalc convert [conversion] [value]")
	}

	c, err := units.Lookup(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}
	out, err := c.Convert(v)
	if err != nil {
		return err
	}
	fmt.Printf("%g %s = %g %s\n", v, c.From, out, c.To)
	return nil
}

func listQuantities(cmd *cobra.Command, args []string) error {
	reg := analysis.Default()
	var rows [][]string
	for _, q := range reg.ListMedium() {
		rows = append(rows, []string{q.Name, "medium", q.Unit, q.Description})
	}
	for _, q := range reg.ListLine() {
		rows = append(rows, []string{q.Name, "cable", q.Unit, q.Description})
	}
	fmt.Print(viz.Table([]string{"QUANTITY", "KIND", "UNIT", "DESCRIPTION"}, rows))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	var rows [][]string
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		cable, err := p.Build()
		if err != nil {
			return err
		}
		z0 := "-"
		if z, err := cable.CharacteristicImpedance(100e6); err == nil && !math.IsNaN(real(z)) {
			z0 = viz.FormatSI(cmplx.Abs(z), "ohm")
		}
		rows = append(rows, []string{
			name,
			viz.FormatSI(p.InnerDiameter, "m"),
			viz.FormatSI(p.OuterDiameter, "m"),
			cable.Dielectric.Name(),
			z0,
		})
	}
	fmt.Print(viz.Table([]string{"PRESET", "INNER", "OUTER", "DIELECTRIC", "|Z0| @100MHz"}, rows))
	return nil
}
