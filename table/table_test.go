package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, columns []string, rows ...[]string) *Table {
	t.Helper()
	tbl, err := New(columns)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr string
	}{
		{
			name:    "valid columns",
			columns: []string{"x", "y"},
		},
		{
			name:    "no columns",
			columns: nil,
			wantErr: "at least one column",
		},
		{
			name:    "empty column name",
			columns: []string{"x", ""},
			wantErr: "empty name",
		},
		{
			name:    "duplicate column name",
			columns: []string{"x", "x"},
			wantErr: "duplicate column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.columns)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var schemaErr *SchemaError
				assert.ErrorAs(t, err, &schemaErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.columns, tbl.Columns())
			assert.Equal(t, 0, tbl.Len())
		})
	}
}

func TestAppendRow(t *testing.T) {
	tbl := mustTable(t, []string{"x", "y"})

	require.NoError(t, tbl.AppendRow([]string{"1", "2"}))
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"1", "2"}, tbl.Row(0))

	err := tbl.AppendRow([]string{"1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 cells")
	assert.Equal(t, 1, tbl.Len())
}

func TestAppendRowCopiesInput(t *testing.T) {
	tbl := mustTable(t, []string{"x"})
	cells := []string{"a"}
	require.NoError(t, tbl.AppendRow(cells))

	cells[0] = "mutated"
	assert.Equal(t, []string{"a"}, tbl.Row(0))
}

func TestColumnAndCell(t *testing.T) {
	tbl := mustTable(t, []string{"x", "y"},
		[]string{"1", "a"},
		[]string{"2", "b"})

	col, err := tbl.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, col)

	_, err = tbl.Column("z")
	require.Error(t, err)

	cell, err := tbl.Cell(1, "x")
	require.NoError(t, err)
	assert.Equal(t, "2", cell)

	_, err = tbl.Cell(5, "x")
	require.Error(t, err)
	_, err = tbl.Cell(0, "z")
	require.Error(t, err)

	assert.True(t, tbl.HasColumn("x"))
	assert.False(t, tbl.HasColumn("z"))
}

func TestBindIdenticalSchemas(t *testing.T) {
	a := mustTable(t, []string{"x", "y"},
		[]string{"1", "a"},
		[]string{"2", "b"})
	b := mustTable(t, []string{"x", "y"},
		[]string{"3", "c"},
		[]string{"4", "d"},
		[]string{"5", "e"})

	combined, err := Bind(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, combined.Columns())
	assert.Equal(t, 5, combined.Len())
	assert.Equal(t, []string{"1", "a"}, combined.Row(0))
	assert.Equal(t, []string{"5", "e"}, combined.Row(4))

	// inputs untouched
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestBindReprojectsByName(t *testing.T) {
	a := mustTable(t, []string{"x", "y"}, []string{"1", "a"})
	b := mustTable(t, []string{"y", "x"}, []string{"b", "2"})

	combined, err := Bind(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, combined.Columns())
	assert.Equal(t, []string{"2", "b"}, combined.Row(1))
}

func TestBindIncompatibleSchemas(t *testing.T) {
	a := mustTable(t, []string{"x", "y"}, []string{"1", "a"})
	b := mustTable(t, []string{"p", "q"}, []string{"2", "b"})

	_, err := Bind(a, b)
	require.Error(t, err)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "table 1")
}

func TestBindColumnCountMismatch(t *testing.T) {
	a := mustTable(t, []string{"x", "y"}, []string{"1", "a"})
	b := mustTable(t, []string{"x"}, []string{"2"})

	_, err := Bind(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestBindNothing(t *testing.T) {
	_, err := Bind()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to bind")
}

func TestBindSingle(t *testing.T) {
	a := mustTable(t, []string{"x"}, []string{"1"})
	combined, err := Bind(a)
	require.NoError(t, err)
	assert.Equal(t, 1, combined.Len())
}
