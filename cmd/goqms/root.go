package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/icelab/goqms/internal/config"
	"github.com/icelab/goqms/pkg/integrate"
	"github.com/icelab/goqms/pkg/io/qmsfile"
	"github.com/icelab/goqms/pkg/io/report"
	"github.com/icelab/goqms/pkg/plot"
	"github.com/icelab/goqms/pkg/qms"
)

var (
	flagConfig     string
	flagInput      string
	flagMode       string
	flagMasses     []string
	flagWindow     []float64
	flagNoBaseline bool
	flagPlots      bool
	flagReport     string
)

var rootCmd = &cobra.Command{
	Use:   "goqms",
	Short: "Integrate QMS traces from astrophysical ice experiments",
	Long: `goqms reads a quadrupole mass spectrometer data file, integrates the
selected m/z channels over a window of time or temperature after removing a
linear background, and writes the per-channel areas to a text report.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "JSON config file")
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "QMS data file")
	rootCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "analysis mode: time or temperature")
	rootCmd.Flags().StringSliceVar(&flagMasses, "masses", nil, "m/z channels to integrate (default: discover)")
	rootCmd.Flags().Float64SliceVar(&flagWindow, "window", nil, "integration window bounds (minutes in time mode)")
	rootCmd.Flags().BoolVar(&flagNoBaseline, "no-baseline", false, "disable baseline correction")
	rootCmd.Flags().BoolVar(&flagPlots, "plots", false, "save signal and integration figures")
	rootCmd.Flags().StringVarP(&flagReport, "report", "o", "", "report output file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := qmsfile.NewReader(cfg.Path)
	if err != nil {
		return err
	}
	tbl, err := r.Read()
	r.Close()
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s: %d columns, %d samples\n", cfg.Path, len(tbl.Headers), tbl.Len())

	masses := cfg.Masses
	if len(masses) == 0 {
		masses = qms.MassChannels(tbl.Headers)
	}
	if len(masses) == 0 {
		return fmt.Errorf("no mass channels found in %s", cfg.Path)
	}

	xKey := cfg.XKey()
	xLabel := "Time (min)"
	if cfg.Mode == config.ModeTemperature {
		xLabel = "Temperature (K)"
	}

	if cfg.PlotSignals && cfg.SavePlots {
		path := filepath.Join(cfg.PlotDir, "qms_signals.png")
		opts := plot.Options{
			Title:  "QMS signals",
			XLabel: xLabel,
			YLabel: "Intensity (A)",
		}
		if err := plot.Channels(tbl, xKey, masses, path, opts); err != nil {
			fmt.Printf("warning: signal plot failed: %v\n", err)
		}
	}

	var opts []integrate.Option
	if cfg.Mode == config.ModeTime {
		opts = append(opts, integrate.WithTimeAxis())
	}
	if !cfg.CorrectBaseline || flagNoBaseline {
		opts = append(opts, integrate.WithoutBaseline())
	}
	if cfg.SavePlots {
		opts = append(opts, integrate.WithPlotter(&plot.Saver{
			Dir:  cfg.PlotDir,
			Opts: plot.Options{XLabel: xLabel, YLabel: "Intensity (A)"},
		}))
	}
	it := integrate.New(opts...)

	win := integrate.Window{Min: cfg.Window[0], Max: cfg.Window[1]}

	fmt.Printf("Integrating %d channels between %g and %g\n", len(masses), win.Min, win.Max)
	results := it.Batch(tbl, xKey, masses, win)

	fmt.Println("Integration results (area under the curve):")
	for _, m := range results.Channels {
		fmt.Printf("  mass %s: %.4e\n", m, results.Areas[m])
	}

	var fluxArea float64
	hasFlux := false
	if cfg.Mode == config.ModeTime && cfg.PhotonKey != "" {
		fluxArea, err = it.PhotonFlux(tbl, cfg.TimeKey, cfg.PhotonKey, cfg.PhotonScale, win)
		if err != nil {
			return fmt.Errorf("photon flux: %w", err)
		}
		hasFlux = true
		fmt.Printf("Integrated photon flux: %.6e photons/cm^2\n", fluxArea)
	}

	if cfg.ReportFile != "" {
		if err := writeReport(cfg.ReportFile, results, fluxArea, hasFlux); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", cfg.ReportFile)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagInput != "" {
		cfg.Path = flagInput
	}
	if flagMode != "" {
		cfg.Mode = flagMode
	}
	if len(flagMasses) > 0 {
		cfg.Masses = flagMasses
	}
	if len(flagWindow) > 0 {
		if len(flagWindow) != 2 {
			return nil, fmt.Errorf("--window needs exactly two bounds, got %d", len(flagWindow))
		}
		cfg.Window = [2]float64{flagWindow[0], flagWindow[1]}
	}
	if cmd.Flags().Changed("plots") {
		cfg.SavePlots = flagPlots
		cfg.PlotSignals = flagPlots
	}
	if flagReport != "" {
		cfg.ReportFile = flagReport
	}
	return cfg, nil
}

func writeReport(path string, results *integrate.BatchResult, fluxArea float64, hasFlux bool) error {
	w, err := report.NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(results); err != nil {
		w.Close()
		return err
	}
	if hasFlux {
		if err := w.WriteFlux(fluxArea); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
