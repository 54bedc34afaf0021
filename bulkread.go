// Package bulkread reads a batch of tabular files in one call: it resolves a
// file-name pattern against a directory, reads every match through a per-file
// reader, isolates per-file failures, and optionally concatenates the
// surviving tables into one combined table.
//
//	res, err := bulkread.Read(ctx, "*.csv", bulkread.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Combined.Len())
//
// The reader is picked from the pattern's extension (.csv always, .xlsx when
// bulkread/reader/excel is imported), or supplied explicitly through
// Options.Reader. One unreadable file does not abort the batch; it is logged
// as a warning and reported in Result.Failures. Only when every file fails,
// or when the combined tables are structurally incompatible, does Read fail.
package bulkread

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"bulkread/internal/files"
	"bulkread/reader"
	"bulkread/table"
)

// Options configures one Read call. Start from DefaultOptions; the zero
// value fails validation.
type Options struct {
	// Dir is the directory whose entries are matched. Default ".".
	Dir string `validate:"required"`

	// Bind combines all successfully read tables into one. When false, Read
	// returns the per-file tables in file-resolution order instead.
	Bind bool

	// Reader overrides extension-based reader selection. The capability is
	// used as given; Header and Encoding are not applied to it.
	Reader reader.Capability

	// Header indicates each file's first record holds column names.
	Header bool

	// Encoding is the IANA name of the files' text encoding. Ignored by
	// readers whose format encodes this itself.
	Encoding string `validate:"required"`

	// Concurrency bounds the number of files read in parallel. 0 or 1 reads
	// sequentially. Output order is file-resolution order either way.
	Concurrency int `validate:"min=0"`

	// ReaderOptions is forwarded verbatim to the resolved reader.
	ReaderOptions reader.Options

	// Logger receives the per-file diagnostics and warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults: current directory, bind
// enabled, header row expected, UTF-8, sequential reads.
func DefaultOptions() Options {
	return Options{
		Dir:      ".",
		Bind:     true,
		Header:   true,
		Encoding: "UTF-8",
	}
}

// Result is the outcome of a Read call.
type Result struct {
	// Combined holds the bound table. Set only when Options.Bind.
	Combined *table.Table

	// Tables holds the surviving per-file tables in file-resolution order,
	// failed files omitted. Set only when Options.Bind is false.
	Tables []*table.Table

	// Failures records the files that could not be read, in file-resolution
	// order. Never fatal by itself.
	Failures []*FileError
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Read resolves pattern against opts.Dir and reads every matching file.
//
// Fatal errors: *NoMatchError (nothing matched), *UnsupportedFormatError and
// *MissingCapabilityError (no usable reader), *AllFailedError (no file could
// be read), *BindError (combining failed; no partial result is returned on
// that path). Per-file failures short of all-failed are reported in
// Result.Failures only.
func Read(ctx context.Context, pattern string, opts Options) (*Result, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern must not be empty")
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := files.Resolve(opts.Dir, pattern)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &NoMatchError{Pattern: pattern, Dir: opts.Dir}
	}

	rd := opts.Reader
	if rd == nil {
		rd, err = selectReader(pattern, reader.Config{Header: opts.Header, Encoding: opts.Encoding})
		if err != nil {
			return nil, err
		}
	}

	tables, failures := readAll(ctx, logger, rd, paths, opts)

	survivors := make([]*table.Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			survivors = append(survivors, t)
		}
	}
	if len(survivors) == 0 {
		return nil, &AllFailedError{Failures: failures}
	}

	if opts.Bind {
		combined, err := table.Bind(survivors...)
		if err != nil {
			return nil, &BindError{Err: err}
		}
		return &Result{Combined: combined, Failures: failures}, nil
	}
	return &Result{Tables: survivors, Failures: failures}, nil
}

// selectReader infers the reader from the pattern text, not from the
// resolved file names.
func selectReader(pattern string, cfg reader.Config) (reader.Capability, error) {
	var format string
	switch lower := strings.ToLower(pattern); {
	case strings.HasSuffix(lower, ".csv"):
		format = "csv"
	case strings.HasSuffix(lower, ".xlsx"):
		format = "xlsx"
	default:
		return nil, &UnsupportedFormatError{Pattern: pattern}
	}

	rd, ok, err := reader.New(format, cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingCapabilityError{Format: format}
	}
	return rd, nil
}

// readAll attempts every path and returns a slot-per-path table slice (nil
// slots mark failures) plus the failures in path order. Each read is fault
// isolated; reader errors never escape the slot.
func readAll(ctx context.Context, logger *slog.Logger, rd reader.Capability, paths []string, opts Options) ([]*table.Table, []*FileError) {
	tables := make([]*table.Table, len(paths))
	errs := make([]error, len(paths))

	readOne := func(i int) {
		path := paths[i]
		logger.Info("reading file", slog.String("path", path))
		tbl, err := rd.Read(path, opts.ReaderOptions)
		if err != nil {
			logger.Warn("failed to read file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			errs[i] = err
			return
		}
		tables[i] = tbl
	}

	if opts.Concurrency > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Concurrency)
		for i := range paths {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				continue
			}
			g.Go(func() error {
				readOne(i)
				return nil
			})
		}
		g.Wait()
	} else {
		for i := range paths {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				continue
			}
			readOne(i)
		}
	}

	var failures []*FileError
	for i, err := range errs {
		if err != nil {
			failures = append(failures, &FileError{Path: paths[i], Err: err})
		}
	}
	return tables, failures
}
