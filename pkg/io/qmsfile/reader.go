// Package qmsfile reads raw QMS data files into channel tables.
package qmsfile

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	qmsio "github.com/icelab/goqms/pkg/io"
	"github.com/icelab/goqms/pkg/qms"
)

// Reader reads whitespace- or tab-delimited QMS text files. The first
// non-empty line carries the column names; every following non-empty line is
// a numeric row. Cells that fail to parse become NaN so row alignment across
// columns is preserved.
type Reader struct {
	file      *os.File
	path      string
	delimiter string
}

var _ qmsio.TableReader = (*Reader)(nil)

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter forces the column separator instead of sniffing the header
// line for tabs.
func WithDelimiter(d string) Option {
	return func(r *Reader) {
		r.delimiter = d
	}
}

// NewReader opens a QMS data file.
func NewReader(filename string, opts ...Option) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		file: file,
		path: filename,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Read parses the whole file into a channel table. A column-count mismatch
// between the header and the numeric rows is reconciled by truncating the
// header list or padding it with synthesized col_N names.
func (r *Reader) Read() (*qms.Table, error) {
	scanner := bufio.NewScanner(r.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &qms.MalformedInputError{
			Reason: fmt.Sprintf("file %s is empty or unreadable", r.path),
		}
	}

	sep := r.delimiter
	if sep == "" && strings.Contains(lines[0], "\t") {
		sep = "\t"
	}
	headers := splitLine(lines[0], sep)

	rows := make([][]float64, 0, len(lines)-1)
	width := 0
	for _, line := range lines[1:] {
		fields := splitLine(line, sep)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				v = math.NaN()
			}
			row[i] = v
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if width == 0 {
		return nil, &qms.MalformedInputError{
			Reason: fmt.Sprintf("file %s has no numeric rows", r.path),
		}
	}

	// Reconcile header names with the numeric column count.
	if len(headers) > width {
		headers = headers[:width]
	}
	for i := len(headers); i < width; i++ {
		headers = append(headers, fmt.Sprintf("col_%d", i))
	}

	columns := make(map[string][]float64, len(headers))
	for i, name := range headers {
		col := make([]float64, len(rows))
		for j, row := range rows {
			if i < len(row) {
				col[j] = row[i]
			} else {
				col[j] = math.NaN()
			}
		}
		columns[name] = col
	}

	return qms.NewTable(headers, columns), nil
}

// Close releases resources.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// splitLine splits on the given separator, or on runs of whitespace when the
// separator is empty.
func splitLine(line, sep string) []string {
	if sep == "" {
		return strings.Fields(line)
	}
	fields := strings.Split(line, sep)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
