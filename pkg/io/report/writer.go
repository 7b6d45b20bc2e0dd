// Package report writes integration results to tab-separated text reports.
package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/icelab/goqms/pkg/integrate"
	qmsio "github.com/icelab/goqms/pkg/io"
)

// Writer persists the {channel -> area} mapping, one channel per line in
// batch order, with a trailing photon flux line when one was integrated.
// Failed channels are reported as NaN so the report shape never depends on
// partial failures.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

var _ qmsio.ReportWriter = (*Writer)(nil)

// NewWriter creates the report file, along with any missing parent
// directories, and writes the column header.
func NewWriter(filename string) (*Writer, error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		file: file,
		buf:  bufio.NewWriter(file),
	}
	if _, err := fmt.Fprintf(w.buf, "Mass\tIntegrated_Area\n"); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// Write outputs one channel<TAB>area line per batch channel, in batch order.
func (w *Writer) Write(res *integrate.BatchResult) error {
	for _, name := range res.Channels {
		if _, err := fmt.Fprintf(w.buf, "%s\t%.6e\n", name, res.Areas[name]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFlux appends the trailing photon flux line.
func (w *Writer) WriteFlux(area float64) error {
	_, err := fmt.Fprintf(w.buf, "\nPhoton_Flux\t%.6e\n", area)
	return err
}

// Close flushes and releases resources.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
