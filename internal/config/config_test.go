package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Path = "data/qms.txt"
	cfg.Window = [2]float64{0, 4}
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing path", mutate: func(c *Config) { c.Path = "" }, wantErr: "path"},
		{name: "bad mode", mutate: func(c *Config) { c.Mode = "frequency" }, wantErr: "mode"},
		{name: "empty window", mutate: func(c *Config) { c.Window = [2]float64{3, 3} }, wantErr: "window"},
		{
			name: "descending window is allowed",
			mutate: func(c *Config) {
				c.Mode = ModeTemperature
				c.Window = [2]float64{120, 80}
			},
		},
		{
			name:    "time mode needs time key",
			mutate:  func(c *Config) { c.TimeKey = "" },
			wantErr: "time_key",
		},
		{
			name: "temperature mode needs temp key",
			mutate: func(c *Config) {
				c.Mode = ModeTemperature
				c.TempKey = ""
			},
			wantErr: "temp_key",
		},
		{
			name:    "non-positive scale",
			mutate:  func(c *Config) { c.PhotonScale = 0 },
			wantErr: "scale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestXKey(t *testing.T) {
	cfg := validConfig()
	cfg.TimeKey = "TimesExp"
	cfg.TempKey = "TempAK"

	cfg.Mode = ModeTime
	assert.Equal(t, "TimesExp", cfg.XKey())

	cfg.Mode = ModeTemperature
	assert.Equal(t, "TempAK", cfg.XKey())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"path": "run42.txt",
		"mode": "temperature",
		"masses": ["18.00", "28.00"],
		"window": [80, 120],
		"photon_key": "Photodiode"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "run42.txt", cfg.Path)
	assert.Equal(t, ModeTemperature, cfg.Mode)
	assert.Equal(t, []string{"18.00", "28.00"}, cfg.Masses)
	assert.Equal(t, [2]float64{80, 120}, cfg.Window)
	assert.Equal(t, "Photodiode", cfg.PhotonKey)
	// defaults survive for fields the file does not set
	assert.Equal(t, "TempAK", cfg.TempKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
