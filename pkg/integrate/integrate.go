// Package integrate reduces QMS measurement channels to baseline-corrected
// integrated areas over a caller-specified window.
package integrate

import (
	"fmt"
	"log"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/icelab/goqms/pkg/qms"
)

// minChannelSamples is the window floor for baseline-corrected channel
// integration: two distinct baseline endpoints plus at least one interior
// sample.
const minChannelSamples = 3

// Plotter renders the integrated region of a single channel. Implementations
// must not modify the result they receive.
type Plotter interface {
	Integration(x, y []float64, res *Result, name string) error
}

// Result holds the outcome of one single-channel integration. Mask spans the
// full x axis; Baseline, RegionX and RegionY cover the selected samples only
// (the renderer hand-off). Results are computed fresh per call and never
// mutated after return.
type Result struct {
	// Area is the signed definite integral of the baseline-corrected
	// signal, in y-units times x-units.
	Area float64
	// Baseline is the fitted line over the selected region, all zeros when
	// correction is disabled.
	Baseline []float64
	// RegionX and RegionY are the selected samples in trace order.
	RegionX []float64
	RegionY []float64
	// Mask flags the in-window samples of the full x axis.
	Mask []bool
}

// Integrator computes definite integrals of one or many measurement channels.
// The zero configuration corrects baselines and treats the x axis as native
// units; see the Options for the time-axis and rendering variants.
type Integrator struct {
	correctBaseline bool
	timeAxis        bool
	logger          *log.Logger
	plotter         Plotter
}

// New creates an Integrator with the given options.
func New(opts ...Option) *Integrator {
	it := &Integrator{
		correctBaseline: true,
		logger:          log.New(os.Stderr, "integrate: ", log.LstdFlags),
	}

	for _, opt := range opts {
		opt(it)
	}

	return it
}

// Signal integrates y over the window on x, both given in x's own units.
// The in-window samples are selected orientation-aware: a decreasing x axis
// (cooling trace) reverses the comparisons so the window still covers the
// same physical region. When baseline correction is enabled, the unique line
// through the first and last selected sample is subtracted before
// integration; the fit is exact at both window edges and deliberately
// sensitive to edge noise. Fewer than three selected samples fail with a
// *qms.RangeError.
func (it *Integrator) Signal(x, y []float64, w Window) (*Result, error) {
	return it.signal(x, y, w, it.correctBaseline, minChannelSamples, "signal")
}

func (it *Integrator) signal(x, y []float64, w Window, baseline bool, floor int, name string) (*Result, error) {
	if len(x) != len(y) {
		return nil, &qms.MalformedInputError{
			Reason: fmt.Sprintf("x and y lengths differ (%d vs %d)", len(x), len(y)),
		}
	}
	if len(x) == 0 {
		return nil, &qms.MalformedInputError{Reason: "empty channel"}
	}

	mask := make([]bool, len(x))
	descending := x[0] > x[len(x)-1]
	n := 0
	for i, xv := range x {
		if descending {
			mask[i] = xv <= w.Min && xv >= w.Max
		} else {
			mask[i] = xv >= w.Min && xv <= w.Max
		}
		if mask[i] {
			n++
		}
	}
	if n < floor {
		return nil, &qms.RangeError{
			Min:      w.Min,
			Max:      w.Max,
			DataMin:  floats.Min(x),
			DataMax:  floats.Max(x),
			Selected: n,
		}
	}

	rx := make([]float64, 0, n)
	ry := make([]float64, 0, n)
	for i, in := range mask {
		if in {
			rx = append(rx, x[i])
			ry = append(ry, y[i])
		}
	}

	finite := 0
	for _, v := range ry {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite++
		}
	}
	if finite == 0 {
		return nil, &qms.MalformedInputError{
			Reason: fmt.Sprintf("channel %s has no finite samples in the window", name),
		}
	}

	base := make([]float64, n)
	corrected := make([]float64, n)
	if baseline {
		slope := (ry[n-1] - ry[0]) / (rx[n-1] - rx[0])
		intercept := ry[0] - slope*rx[0]
		for i := range rx {
			base[i] = slope*rx[i] + intercept
			corrected[i] = ry[i] - base[i]
		}
	} else {
		copy(corrected, ry)
	}

	// Simpson's rule wants weakly increasing abscissae; cooling traces
	// arrive reversed.
	var area float64
	if rx[0] > rx[n-1] {
		xr := append([]float64(nil), rx...)
		yr := append([]float64(nil), corrected...)
		floats.Reverse(xr)
		floats.Reverse(yr)
		area = simpson(xr, yr)
	} else {
		area = simpson(rx, corrected)
	}

	res := &Result{
		Area:     area,
		Baseline: base,
		RegionX:  rx,
		RegionY:  ry,
		Mask:     mask,
	}

	if it.plotter != nil {
		if err := it.plotter.Integration(x, y, res, name); err != nil {
			it.logger.Printf("plot %s: %v", name, err)
		}
	}

	return res, nil
}
