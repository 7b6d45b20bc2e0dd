package integrate

import "math"

// simpson evaluates the composite Simpson rule over weakly increasing,
// possibly non-uniformly spaced abscissae. Interval pairs are integrated
// under the parabola through their three samples; an odd interval count
// leaves one trailing interval, integrated under the parabola through the
// last three samples. Exactly two samples degrade to the trapezoid rule.
func simpson(x, y []float64) float64 {
	n := len(x)
	switch {
	case n < 2:
		// callers enforce the sample floor before reaching here
		return math.NaN()
	case n == 2:
		return 0.5 * (x[1] - x[0]) * (y[0] + y[1])
	}

	var area float64
	i := 0
	for ; i+2 < n; i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		h := h0 + h1
		area += h / 6 * ((2-h1/h0)*y[i] + h*h/(h0*h1)*y[i+1] + (2-h0/h1)*y[i+2])
	}
	if i+1 < n {
		area += lastInterval(x[n-2]-x[n-3], x[n-1]-x[n-2], y[n-3], y[n-2], y[n-1])
	}
	return area
}

// lastInterval integrates the parabola through the final three samples over
// the final interval only. h0 and h1 are the widths of the two trailing
// intervals, f0..f2 the corresponding ordinates.
func lastInterval(h0, h1, f0, f1, f2 float64) float64 {
	alpha := (2*h1*h1 + 3*h0*h1) / (6 * (h0 + h1))
	beta := (h1*h1 + 3*h0*h1) / (6 * h0)
	eta := h1 * h1 * h1 / (6 * h0 * (h0 + h1))
	return alpha*f2 + beta*f1 - eta*f0
}
