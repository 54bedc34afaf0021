// Package table provides the in-memory tabular structure produced by the
// bulkread readers: an ordered set of named columns over text cells with an
// aligned row count, plus row-wise binding of compatible tables.
//
// Cells are untyped text because both supported sources (CSV, XLSX sheet
// extraction) deliver text; typing them further is left to the caller.
package table

import (
	"fmt"
	"strings"
)

// Table holds named columns and row-major cell data. The zero value is not
// usable; construct with New.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// SchemaError reports a structural incompatibility between tables that were
// asked to bind, or an invalid row appended to a table.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return "table: " + e.Msg
}

// New creates an empty table with the given column names.
// Column names must be non-empty and unique.
func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, &SchemaError{Msg: "table requires at least one column"}
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, &SchemaError{Msg: fmt.Sprintf("column %d has an empty name", i)}
		}
		if _, dup := index[name]; dup {
			return nil, &SchemaError{Msg: fmt.Sprintf("duplicate column name %q", name)}
		}
		index[name] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds one row. The cell count must equal the column count.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.columns) {
		return &SchemaError{Msg: fmt.Sprintf("row has %d cells, table has %d columns", len(cells), len(t.columns))}
	}
	t.rows = append(t.rows, append([]string(nil), cells...))
	return nil
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Column returns all cells of the named column, top to bottom.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &SchemaError{Msg: fmt.Sprintf("no column %q", name)}
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Cell returns the value at the given row in the named column.
func (t *Table) Cell(row int, name string) (string, error) {
	if row < 0 || row >= len(t.rows) {
		return "", &SchemaError{Msg: fmt.Sprintf("row %d out of range (%d rows)", row, len(t.rows))}
	}
	i, ok := t.index[name]
	if !ok {
		return "", &SchemaError{Msg: fmt.Sprintf("no column %q", name)}
	}
	return t.rows[row][i], nil
}

// Bind concatenates the given tables row-wise into a new table. The first
// table fixes the column order; every other table must carry the same column
// set, matched by name in any order, and its rows are re-projected to the
// reference order. Inputs are not modified.
func Bind(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, &SchemaError{Msg: "nothing to bind"}
	}
	ref := tables[0]
	out, err := New(ref.columns)
	if err != nil {
		return nil, err
	}
	for ti, t := range tables {
		proj, err := projection(ref, t, ti)
		if err != nil {
			return nil, err
		}
		for _, row := range t.rows {
			cells := make([]string, len(ref.columns))
			for i, src := range proj {
				cells[i] = row[src]
			}
			out.rows = append(out.rows, cells)
		}
	}
	return out, nil
}

// projection maps each reference column to its position in t.
func projection(ref, t *Table, pos int) ([]int, error) {
	if len(t.columns) != len(ref.columns) {
		return nil, &SchemaError{Msg: fmt.Sprintf(
			"table %d has columns [%s], expected [%s]",
			pos, strings.Join(t.columns, " "), strings.Join(ref.columns, " "))}
	}
	proj := make([]int, len(ref.columns))
	for i, name := range ref.columns {
		src, ok := t.index[name]
		if !ok {
			return nil, &SchemaError{Msg: fmt.Sprintf("table %d is missing column %q", pos, name)}
		}
		proj[i] = src
	}
	return proj, nil
}
