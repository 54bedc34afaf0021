package bulkread

import (
	"fmt"
	"strings"
)

// NoMatchError is returned when the pattern matches no file in the
// directory. No file is opened on this path.
type NoMatchError struct {
	Pattern string
	Dir     string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no files matching %q in %s", e.Pattern, e.Dir)
}

// MissingCapabilityError is returned when the pattern implies a format whose
// reader is not linked into the binary (see reader/excel).
type MissingCapabilityError struct {
	Format string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("no %s reader is registered; import bulkread/reader/excel to enable spreadsheet support", e.Format)
}

// UnsupportedFormatError is returned when no reader was supplied and the
// pattern implies no known format.
type UnsupportedFormatError struct {
	Pattern string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("cannot infer a reader from pattern %q; supply Options.Reader", e.Pattern)
}

// FileError records one file's failed read. It never aborts the batch by
// itself; it is logged as a warning and collected in Result.Failures.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// AllFailedError is returned when every matched file failed to read.
type AllFailedError struct {
	Failures []*FileError
}

func (e *AllFailedError) Error() string {
	paths := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		paths[i] = f.Path
	}
	return fmt.Sprintf("all %d files failed to read: %s", len(e.Failures), strings.Join(paths, ", "))
}

// BindError is returned when the surviving tables could not be concatenated.
// The wrapped error names the structural mismatch.
type BindError struct {
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("cannot combine tables: %v", e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
