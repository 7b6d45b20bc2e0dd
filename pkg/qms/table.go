// Package qms holds the shared data model for QMS trace analysis.
package qms

import "regexp"

// Table is a column-oriented numeric table read from a QMS data file.
// Headers preserves the file column order; the column map is the
// authoritative source for lookups. Every column shares one sample index
// with the x-axis column. A Table is read-only for the duration of an
// integration pass.
type Table struct {
	Headers []string
	columns map[string][]float64
}

// NewTable builds a table from ordered headers and their columns.
func NewTable(headers []string, columns map[string][]float64) *Table {
	return &Table{
		Headers: headers,
		columns: columns,
	}
}

// Column returns the named channel and whether it exists.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Has reports whether the named channel exists.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Len returns the number of samples per channel, 0 for an empty table.
func (t *Table) Len() int {
	for _, col := range t.columns {
		return len(col)
	}
	return 0
}

// massPattern matches channel names that denote m/z values, e.g. "28.00".
var massPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// MassChannels filters headers down to the ones naming m/z channels.
// Discovery is opt-in: a header is a mass channel exactly when it is a
// plain decimal number. Header order is preserved.
func MassChannels(headers []string) []string {
	var masses []string
	for _, h := range headers {
		if massPattern.MatchString(h) {
			masses = append(masses, h)
		}
	}
	return masses
}
