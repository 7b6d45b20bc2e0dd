package integrate

import (
	"math"

	"github.com/icelab/goqms/pkg/qms"
)

// BatchResult maps channel names to integrated areas. Channels preserves the
// request order; failed channels carry NaN so the report shape is
// independent of partial failures.
type BatchResult struct {
	Channels []string
	Areas    map[string]float64
}

// Area returns the integrated area for a channel, NaN if it is unknown.
func (r *BatchResult) Area(name string) float64 {
	if a, ok := r.Areas[name]; ok {
		return a
	}
	return math.NaN()
}

// Batch integrates every named channel against the shared x axis and window.
// On a time axis the window is given in minutes and converted to seconds
// once, before the loop. A failure on one channel (missing column, window
// out of range, malformed data) is logged with the channel name and cause,
// recorded as NaN, and never aborts the remaining channels.
func (it *Integrator) Batch(tbl *qms.Table, xKey string, keys []string, w Window) *BatchResult {
	if it.timeAxis {
		w = w.MinutesToSeconds()
	}

	out := &BatchResult{
		Channels: append([]string(nil), keys...),
		Areas:    make(map[string]float64, len(keys)),
	}

	x, haveX := tbl.Column(xKey)
	for _, key := range keys {
		res, err := it.batchOne(x, haveX, tbl, xKey, key, w)
		if err != nil {
			it.logger.Printf("channel %s: %v", key, err)
			out.Areas[key] = math.NaN()
			continue
		}
		out.Areas[key] = res.Area
	}

	return out
}

func (it *Integrator) batchOne(x []float64, haveX bool, tbl *qms.Table, xKey, key string, w Window) (*Result, error) {
	if !haveX {
		return nil, &qms.MissingColumnError{Columns: []string{xKey}}
	}
	y, ok := tbl.Column(key)
	if !ok {
		return nil, &qms.MissingColumnError{Columns: []string{key}}
	}
	return it.signal(x, y, w, it.correctBaseline, minChannelSamples, key)
}
