// Package export writes tables back out as CSV for the bulkread CLI.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bulkread/table"
)

// Options configures CSV output.
type Options struct {
	// BOM prefixes the output with a UTF-8 byte order mark so spreadsheet
	// applications pick the right encoding.
	BOM bool

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// WriteFile writes t to path as CSV, creating parent directories as needed.
// An existing file is truncated.
func WriteFile(path string, t *table.Table, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := Write(f, t, opts); err != nil {
		return err
	}
	return f.Close()
}

// Write writes t to w as CSV: one header record, then the rows in order.
func Write(w io.Writer, t *table.Table, opts Options) error {
	if opts.BOM {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
