package qms

import (
	"fmt"
	"strings"
)

// RangeError reports an integration window that lies outside the data
// extent or selects fewer samples than the integrator's floor.
type RangeError struct {
	// Min and Max are the requested window bounds.
	Min, Max float64
	// DataMin and DataMax span the available x axis.
	DataMin, DataMax float64
	// Selected is the number of samples inside the window.
	Selected int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integration window [%g, %g] selects %d samples; data spans %.1f-%.1f",
		e.Min, e.Max, e.Selected, e.DataMin, e.DataMax)
}

// MissingColumnError reports required columns absent from a table.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing column(s): " + strings.Join(e.Columns, ", ")
}

// MalformedInputError reports data that could not be used numerically,
// such as an empty file or a channel with no finite samples.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}
