// Package io provides input/output utilities for QMS data files and reports.
package io

import (
	"github.com/icelab/goqms/pkg/integrate"
	"github.com/icelab/goqms/pkg/qms"
)

// TableReader is the interface for sources that produce a channel table.
type TableReader interface {
	// Read returns the complete channel table.
	Read() (*qms.Table, error)

	// Close releases resources.
	Close() error
}

// ReportWriter is the interface for persisting integration results.
type ReportWriter interface {
	// Write outputs one line per batch channel, in batch order.
	Write(res *integrate.BatchResult) error

	// WriteFlux appends the trailing photon flux line.
	WriteFlux(area float64) error

	// Close flushes and releases resources.
	Close() error
}
