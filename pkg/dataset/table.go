// Package dataset loads tabular design-study results and exposes their
// numeric columns as Pareto score points.
package dataset

import (
	"strconv"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/pkg/errors"
)

// ErrUnknownColumn is returned when a column name is not in the table header.
var ErrUnknownColumn = errors.New("unknown column")

// Table is a header plus string cells. Rows are padded to the header width.
type Table struct {
	Source  string
	Columns []string
	Rows    [][]string
}

// NewTable builds a table and pads short rows with empty cells.
func NewTable(source string, columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s: table has no header", source)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s: duplicate column %q", source, c)
		}
		seen[c] = struct{}{}
	}

	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) > len(columns) {
			return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s: row %d has %d cells, header has %d", source, i+1, len(row), len(columns))
		}
		padded := make([]string, len(columns))
		copy(padded, row)
		out = append(out, padded)
	}
	return &Table{Source: source, Columns: columns, Rows: out}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrUnknownColumn, "%q not in %s", name, t.Source)
}

// HasColumn reports whether name is in the header.
func (t *Table) HasColumn(name string) bool {
	_, err := t.ColumnIndex(name)
	return err == nil
}

// Strings returns a copy of a column's raw cells.
func (t *Table) Strings(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Float64s parses a column as numbers. Empty or non-numeric cells fail with
// pareto.ErrInvalidInput.
func (t *Table) Float64s(name string) ([]float64, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[idx])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s: row %d column %q: %q is not a number", t.Source, i+1, name, row[idx])
		}
		out[i] = v
	}
	return out, nil
}

// Points pairs two numeric columns.
func (t *Table) Points(xCol, yCol string) ([]pareto.Point, error) {
	xs, err := t.Float64s(xCol)
	if err != nil {
		return nil, err
	}
	ys, err := t.Float64s(yCol)
	if err != nil {
		return nil, err
	}
	return pareto.Zip(xs, ys)
}

// RowByID returns the first row whose idColumn equals id. Numeric ids match
// by value, so "7" finds "7.0".
func (t *Table) RowByID(idColumn, id string) (int, error) {
	idx, err := t.ColumnIndex(idColumn)
	if err != nil {
		return -1, err
	}
	want := strings.TrimSpace(id)
	wantNum, wantErr := strconv.ParseFloat(want, 64)
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[idx])
		if cell == want {
			return i, nil
		}
		if wantErr == nil {
			if v, err := strconv.ParseFloat(cell, 64); err == nil && v == wantNum {
				return i, nil
			}
		}
	}
	return -1, errors.Wrapf(pareto.ErrInvalidInput, "no row with %s=%q in %s", idColumn, id, t.Source)
}

// IDs returns the identifier of every row: the idColumn cell when the column
// exists, otherwise the zero-based row position.
func (t *Table) IDs(idColumn string) []string {
	out := make([]string, len(t.Rows))
	idx := -1
	if idColumn != "" {
		idx, _ = t.ColumnIndex(idColumn)
	}
	for i, row := range t.Rows {
		if idx >= 0 {
			out[i] = strings.TrimSpace(row[idx])
		} else {
			out[i] = strconv.Itoa(i)
		}
	}
	return out
}
