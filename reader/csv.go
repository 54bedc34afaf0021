package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bulkread/table"
)

func init() {
	Register("csv", NewCSV)
}

// CSV reads comma-separated files into tables. Construct with NewCSV or fill
// the fields directly; the zero value reads headerless UTF-8 with default
// csv.Reader settings.
type CSV struct {
	// Header indicates the first record holds column names. Without it,
	// columns are named V1..Vn after the first record's width.
	Header bool

	// Encoding is the IANA name of the file's text encoding. Empty means
	// UTF-8.
	Encoding string
}

// NewCSV is the registered factory for the "csv" format.
func NewCSV(cfg Config) (Capability, error) {
	return &CSV{Header: cfg.Header, Encoding: cfg.Encoding}, nil
}

// Read parses one CSV file. Recognized pass-through options: "comma" and
// "comment" (rune or one-character string), "lazy_quotes" and "trim_space"
// (bool).
func (c *CSV) Read(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	decoded, err := decodingReader(bufio.NewReader(f), c.Encoding)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(stripBOM(decoded))
	if r.Comma, err = opts.Rune("comma", ','); err != nil {
		return nil, err
	}
	if r.Comment, err = opts.Rune("comment", 0); err != nil {
		return nil, err
	}
	if r.LazyQuotes, err = opts.Bool("lazy_quotes", false); err != nil {
		return nil, err
	}
	trim, err := opts.Bool("trim_space", false)
	if err != nil {
		return nil, err
	}
	r.TrimLeadingSpace = trim

	first, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var tbl *table.Table
	if c.Header {
		columns := make([]string, len(first))
		for i, name := range first {
			columns[i] = strings.TrimSpace(name)
		}
		tbl, err = table.New(columns)
	} else {
		tbl, err = table.New(syntheticColumns(len(first)))
		if err == nil {
			err = tbl.AppendRow(first)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return tbl, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := tbl.AppendRow(record); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
}

// syntheticColumns names headerless columns V1..Vn.
func syntheticColumns(n int) []string {
	columns := make([]string, n)
	for i := range columns {
		columns[i] = fmt.Sprintf("V%d", i+1)
	}
	return columns
}

// stripBOM drops a leading UTF-8 byte order mark. Spreadsheet exports
// commonly carry one.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil && lead[0] == 0xEF && lead[1] == 0xBB && lead[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
