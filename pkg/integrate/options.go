package integrate

import "log"

// Option configures an Integrator.
type Option func(*Integrator)

// WithoutBaseline disables the two-point linear baseline subtraction.
func WithoutBaseline() Option {
	return func(it *Integrator) {
		it.correctBaseline = false
	}
}

// WithTimeAxis marks the x axis as time. Batch windows are then given in
// minutes and converted to the seconds stored in the file once per call.
func WithTimeAxis() Option {
	return func(it *Integrator) {
		it.timeAxis = true
	}
}

// WithLogger sets the logger used for per-channel batch warnings.
func WithLogger(l *log.Logger) Option {
	return func(it *Integrator) {
		it.logger = l
	}
}

// WithPlotter attaches a renderer for the integrated region of every
// successful call. Rendering failures are logged, never returned, and the
// plotter has no effect on any numeric result.
func WithPlotter(p Plotter) Option {
	return func(it *Integrator) {
		it.plotter = p
	}
}
