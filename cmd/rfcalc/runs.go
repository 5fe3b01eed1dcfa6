package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rfcalc/internal/analysis"
	"github.com/san-kum/rfcalc/internal/config"
	"github.com/san-kum/rfcalc/internal/export"
	"github.com/san-kum/rfcalc/internal/logging"
	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
	"github.com/san-kum/rfcalc/internal/storage"
	"github.com/san-kum/rfcalc/internal/viz"
)

var (
	mediumName string
	startStr   string
	stopStr    string
	points     int
	logSweep   bool
	quantities []string

	outFile    string
	plotHeight int
	plotWidth  int

	length     float64
	maxFreqStr string
	samples    int
)

func runCommands() []*cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep quantities over frequency and store the run",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&mediumName, "medium", config.DefaultMedium, "medium to sweep")
	sweepCmd.Flags().StringVar(&startStr, "start", "1M", "start frequency")
	sweepCmd.Flags().StringVar(&stopStr, "stop", "1G", "stop frequency")
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of frequencies")
	sweepCmd.Flags().BoolVar(&logSweep, "log", true, "logarithmic spacing")
	sweepCmd.Flags().StringSliceVar(&quantities, "quantities", nil, "quantities to evaluate (see rfcalc quantities)")
	addMediumFlags(sweepCmd)
	addCableFlags(sweepCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&quantities, "quantities", nil, "quantities to plot (default all)")
	plotCmd.Flags().StringVar(&outFile, "out", "", "write an image instead (.png, .svg, .pdf)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "terminal plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "terminal plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "step response of a length of medium or cable",
		RunE:  runPulse,
	}
	pulseCmd.Flags().StringVar(&mediumName, "medium", "Polyethylene", "medium, when no cable is given")
	pulseCmd.Flags().Float64Var(&length, "length", 1, "propagation length (m)")
	pulseCmd.Flags().StringVar(&maxFreqStr, "max-freq", "10G", "highest frequency sampled")
	pulseCmd.Flags().IntVar(&samples, "samples", 1024, "time samples (even)")
	pulseCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")
	pulseCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	addCableFlags(pulseCmd)

	return []*cobra.Command{sweepCmd, listCmd, plotCmd, exportJSONCmd, pulseCmd}
}

func cableFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"preset", "id", "od", "thickness", "dielectric", "conductor"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// sweepConfig merges the config file, if any, with the flags that were set.
func sweepConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("medium") {
		cfg.Medium = material.MediumConfig{Name: mediumName}
	}
	cfg.Medium = mediumConfig(cmd, cfg.Medium)
	if flags.Changed("start") {
		f, err := viz.ParseSI(startStr)
		if err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
		cfg.Sweep.Start = f
	}
	if flags.Changed("stop") {
		f, err := viz.ParseSI(stopStr)
		if err != nil {
			return nil, fmt.Errorf("--stop: %w", err)
		}
		cfg.Sweep.Stop = f
	}
	if flags.Changed("points") {
		cfg.Sweep.Points = points
	}
	if flags.Changed("log") {
		cfg.Sweep.Log = logSweep
	}

	if cableFlagsChanged(cmd) {
		cc := config.CableConfig{}
		if cfg.Cable != nil {
			cc = *cfg.Cable
		}
		cc = cableConfig(cmd, cc)
		cfg.Cable = &cc
		if configFile == "" {
			// The medium defaults do not apply to a cable.
			cfg.Quantities = nil
		}
	}
	if flags.Changed("quantities") {
		cfg.Quantities = quantities
	}
	return cfg, cfg.Validate()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	var (
		res  *analysis.Result
		meta storage.RunMetadata
	)
	if cfg.Cable != nil {
		cable, err := cfg.Cable.Build()
		if err != nil {
			return err
		}
		res, err = analysis.RunCable(cable, cfg.Sweep, cfg.Quantities)
		if err != nil {
			return err
		}
		subject := cfg.Cable.Preset
		if subject == "" {
			subject = "coax"
		}
		meta = storage.RunMetadata{
			Kind:    "cable",
			Subject: subject,
			Params: map[string]float64{
				"inner_diameter":  cable.ID,
				"outer_diameter":  cable.OD,
				"outer_thickness": cable.OuterThickness,
			},
		}
	} else {
		m, err := cfg.BuildMedium()
		if err != nil {
			return err
		}
		res, err = analysis.RunMedium(m, cfg.Sweep, cfg.Quantities)
		if err != nil {
			return err
		}
		meta = storage.RunMetadata{
			Kind:    "medium",
			Subject: m.Name(),
			Params: map[string]float64{
				"relative_dielectric":   m.RelativePermittivity(),
				"relative_permeability": m.RelativePermeability(),
				"loss_tangent":          m.LossTangent(),
				"conductivity":          m.Conductivity(),
			},
		}
	}

	meta.Sweep = cfg.Sweep
	meta.Units = make(map[string]string, len(res.Quantities))
	for _, name := range res.Quantities {
		if q, err := analysis.Default().Describe(name); err == nil {
			meta.Units[name] = q.Unit
		}
	}

	runID, err := st.Save(meta, res)
	if err != nil {
		return err
	}
	logger.Info("sweep stored",
		logging.String("run", runID),
		logging.String("subject", meta.Subject),
		logging.Any("points", cfg.Sweep.Points))

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("%s: %s .. %s, %d points\n", meta.Subject,
		viz.FormatSI(cfg.Sweep.Start, "Hz"), viz.FormatSI(cfg.Sweep.Stop, "Hz"), cfg.Sweep.Points)
	for _, name := range res.Quantities {
		line := fmt.Sprintf("  %-22s %s", name, viz.SparklineChart(res.Series[name], 40))
		if n := res.Failed(name); n > 0 {
			line += viz.Warning.Render(fmt.Sprintf("  %d undefined", n))
		}
		fmt.Println(line)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSUBJECT\tTIME\tSTART\tSTOP\tPOINTS\tFAILED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Kind,
			run.Subject,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			viz.FormatSI(run.Sweep.Start, "Hz"),
			viz.FormatSI(run.Sweep.Stop, "Hz"),
			run.Sweep.Points,
			len(run.Errors),
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *analysis.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	res, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, res, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, res, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if outFile != "" {
		opts := export.PlotOptions{
			Title:      fmt.Sprintf("%s (%s)", meta.Subject, meta.ID),
			Quantities: quantities,
			Units:      meta.Units,
			LogX:       meta.Sweep.Log,
		}
		if err := export.SavePlot(outFile, res, opts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	names := quantities
	if len(names) == 0 {
		names = res.Quantities
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("%s: %s\n", meta.Kind, meta.Subject)
	fmt.Printf("samples: %d\n\n", len(res.Frequencies))

	for _, name := range names {
		series, ok := res.Series[name]
		if !ok {
			return fmt.Errorf("run %s has no quantity %q", meta.ID, name)
		}
		data := make([]float64, 0, len(series))
		for _, v := range series {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				data = append(data, v)
			}
		}
		if len(data) == 0 {
			fmt.Println(viz.Warning.Render(name + ": undefined over the whole sweep"))
			fmt.Println()
			continue
		}

		caption := fmt.Sprintf("%s (%s) vs frequency, %s .. %s", name, meta.Units[name],
			viz.FormatSI(meta.Sweep.Start, "Hz"), viz.FormatSI(meta.Sweep.Stop, "Hz"))
		if meta.Sweep.Log {
			caption += " log"
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, res, err := loadRun(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export.WriteJSON(out, meta, res)
}

func runPulse(cmd *cobra.Command, args []string) error {
	maxFreq, err := viz.ParseSI(maxFreqStr)
	if err != nil {
		return fmt.Errorf("--max-freq: %w", err)
	}
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return fmt.Errorf("%w: --length must be positive, got %g", rf.ErrParameterBounds, length)
	}

	var (
		h       analysis.Transfer
		subject string
	)
	if cableFlagsChanged(cmd) {
		cable, err := cableConfig(cmd, config.CableConfig{}).Build()
		if err != nil {
			return err
		}
		h = analysis.CableTransfer(cable, length)
		subject = preset
		if subject == "" {
			subject = "coax"
		}
	} else {
		name, _ := cmd.Flags().GetString("medium")
		m, err := material.FromName(name)
		if err != nil {
			return err
		}
		h = analysis.MediumTransfer(m, length)
		subject = m.Name()
	}

	resp, err := analysis.ImpulseResponse(h, maxFreq, samples)
	if err != nil {
		return err
	}
	logger.Debug("pulse response",
		logging.String("subject", subject),
		logging.Float("dt", resp.Dt),
		logging.Any("samples", samples))

	fmt.Printf("%s, %g m\n", subject, length)
	fmt.Println(viz.KeyValue("time step", viz.FormatSI(resp.Dt, "s"), 12))
	fmt.Println(viz.KeyValue("window", viz.FormatSI(resp.Dt*float64(samples), "s"), 12))
	fmt.Println(viz.KeyValue("delay", viz.FormatSI(resp.Delay(), "s"), 12))
	fmt.Println(viz.KeyValue("final", fmt.Sprintf("%.4g", resp.Step[len(resp.Step)-1]), 12))
	fmt.Println()

	graph := asciigraph.Plot(resp.Step,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("step response, 0 .. %s", viz.FormatSI(resp.Dt*float64(samples), "s"))),
	)
	fmt.Println(graph)
	return nil
}
