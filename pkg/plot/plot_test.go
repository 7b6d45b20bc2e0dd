package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icelab/goqms/pkg/integrate"
	"github.com/icelab/goqms/pkg/qms"
)

func sampleTrace() ([]float64, []float64) {
	x := make([]float64, 30)
	y := make([]float64, 30)
	for i := range x {
		x[i] = float64(i)
		y[i] = 1 + float64(i%7)
	}
	return x, y
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestIntegration(t *testing.T) {
	x, y := sampleTrace()
	res, err := integrate.New().Signal(x, y, integrate.Window{Min: 5, Max: 25})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "figs", "integration.png")
	require.NoError(t, Integration(x, y, res, path, Options{Title: "test"}))
	assertPNG(t, path)
}

func TestChannels(t *testing.T) {
	x, y := sampleTrace()
	tbl := qms.NewTable(
		[]string{"TempAK", "28.00"},
		map[string][]float64{"TempAK": x, "28.00": y},
	)

	path := filepath.Join(t.TempDir(), "signals.png")
	err := Channels(tbl, "TempAK", []string{"28.00", "44.00"}, path, Options{})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestChannelsMissingAxis(t *testing.T) {
	tbl := qms.NewTable([]string{"A"}, map[string][]float64{"A": {1, 2}})

	err := Channels(tbl, "TempAK", []string{"A"}, "unused.png", Options{})
	assert.Error(t, err)
}

func TestSaverNamesFileAfterChannel(t *testing.T) {
	x, y := sampleTrace()
	res, err := integrate.New().Signal(x, y, integrate.Window{Min: 5, Max: 25})
	require.NoError(t, err)

	dir := t.TempDir()
	s := &Saver{Dir: dir}
	require.NoError(t, s.Integration(x, y, res, "28.00"))
	assertPNG(t, filepath.Join(dir, "integrated_28_00.png"))
}
