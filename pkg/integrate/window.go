package integrate

// Window is a closed interval [Min, Max] over the x axis, expressed in the
// caller's public unit: minutes in time mode, native units (e.g. Kelvin)
// otherwise. For traces stored in decreasing x order the bounds are given in
// trace order, so Min is the first bound encountered along the axis.
type Window struct {
	Min float64
	Max float64
}

// MinutesToSeconds converts a time-mode window to the seconds stored in the
// raw file. This is the only place the minutes/seconds boundary is crossed;
// Batch and PhotonFlux apply it exactly once per call, before any
// per-channel work.
func (w Window) MinutesToSeconds() Window {
	return Window{Min: w.Min * 60, Max: w.Max * 60}
}
