// Package config holds the runtime configuration for the goqms tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Analysis modes.
const (
	ModeTime        = "time"
	ModeTemperature = "temperature"
)

// Config is the explicit configuration value passed into the analysis entry
// point, validated once at startup.
type Config struct {
	// Path is the QMS data file to analyze.
	Path string `json:"path"`
	// Mode selects the x axis: "time" or "temperature".
	Mode string `json:"mode"`

	TimeKey string `json:"time_key"`
	TempKey string `json:"temp_key"`

	// Masses lists the m/z channels to integrate; empty means discover
	// every numeric-looking channel name in the file.
	Masses []string `json:"masses"`

	// Window bounds in minutes (time mode) or Kelvin (temperature mode),
	// given in trace order.
	Window          [2]float64 `json:"window"`
	CorrectBaseline bool       `json:"correct_baseline"`

	// PhotonKey names the measured photon current channel; empty disables
	// flux integration. PhotonScale converts the current to a flux.
	PhotonKey   string  `json:"photon_key"`
	PhotonScale float64 `json:"photon_scale"`

	PlotSignals bool   `json:"plot_signals"`
	SavePlots   bool   `json:"save_plots"`
	PlotDir     string `json:"plot_dir"`

	ReportFile string `json:"report_file"`
}

// Default returns the default configuration, with environment overrides for
// the common deployment knobs.
func Default() *Config {
	return &Config{
		Mode:            getEnv("QMS_MODE", ModeTime),
		TimeKey:         getEnv("QMS_TIME_KEY", "TimesExp"),
		TempKey:         getEnv("QMS_TEMP_KEY", "TempAK"),
		CorrectBaseline: true,
		PhotonScale:     getEnvFloat("QMS_PHOTON_SCALE", 1.924e22),
		PlotSignals:     true,
		SavePlots:       true,
		PlotDir:         "results/integrations",
		ReportFile:      getEnv("QMS_REPORT_FILE", "results/qms_integration_results.txt"),
	}
}

// Load reads a JSON config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration once at startup.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Mode != ModeTime && c.Mode != ModeTemperature {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeTime, ModeTemperature, c.Mode)
	}
	if c.Window[0] == c.Window[1] {
		return fmt.Errorf("integration window [%g, %g] is empty", c.Window[0], c.Window[1])
	}
	if c.Mode == ModeTime && c.TimeKey == "" {
		return fmt.Errorf("time_key is required in time mode")
	}
	if c.Mode == ModeTemperature && c.TempKey == "" {
		return fmt.Errorf("temp_key is required in temperature mode")
	}
	if c.PhotonScale <= 0 {
		return fmt.Errorf("photon scale must be positive, got %g", c.PhotonScale)
	}
	return nil
}

// XKey returns the x-axis column for the configured mode.
func (c *Config) XKey() string {
	if c.Mode == ModeTemperature {
		return c.TempKey
	}
	return c.TimeKey
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
