// Package excel provides the XLSX reader capability. Importing it (usually
// blank) registers the "xlsx" format with the reader registry:
//
//	import _ "bulkread/reader/excel"
//
// Builds that never import it report spreadsheet support as missing.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"bulkread/reader"
	"bulkread/table"
)

func init() {
	reader.Register("xlsx", New)
}

// Reader reads one sheet of an XLSX workbook into a table.
type Reader struct{}

// New is the registered factory for the "xlsx" format. The workbook format
// carries its own header and text encoding, so the normalized config is
// deliberately ignored; header presence is controlled per call through the
// format-native "header" option.
func New(reader.Config) (reader.Capability, error) {
	return &Reader{}, nil
}

// Read extracts one sheet. Recognized pass-through options: "sheet" (string,
// default: the workbook's first sheet) and "header" (bool, default true).
func (x *Reader) Read(path string, opts reader.Options) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheet, err := opts.String("sheet", "")
	if err != nil {
		return nil, err
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheet, path)
	}

	// GetRows trims trailing empty cells per row; pad to the widest row so
	// every record aligns with the column set.
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header, err := opts.Bool("header", true)
	if err != nil {
		return nil, err
	}

	var tbl *table.Table
	body := rows
	if header {
		tbl, err = table.New(headerColumns(pad(rows[0], width)))
		body = rows[1:]
	} else {
		columns := make([]string, width)
		for i := range columns {
			columns[i] = fmt.Sprintf("V%d", i+1)
		}
		tbl, err = table.New(columns)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, row := range body {
		if err := tbl.AppendRow(pad(row, width)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return tbl, nil
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// headerColumns trims cell text and names blank header cells V1..Vn by
// position, so sparse header rows still yield a usable column set.
func headerColumns(cells []string) []string {
	columns := make([]string, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			c = fmt.Sprintf("V%d", i+1)
		}
		columns[i] = c
	}
	return columns
}
