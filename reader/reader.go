// Package reader defines the per-file reader contract used by bulkread and
// the registry through which file formats resolve to reader implementations.
//
// A format is registered under its lowercase file extension without the dot
// ("csv", "xlsx"). The CSV reader is always available; spreadsheet support
// lives in the reader/excel subpackage and registers itself on import, so a
// build that never imports it simply lacks the capability.
package reader

import (
	"fmt"
	"sort"
	"sync"

	"bulkread/table"
)

// Options is the open set of reader-specific options forwarded verbatim from
// the caller to the resolved reader. Unknown keys are ignored by the built-in
// adapters.
type Options map[string]any

// Capability reads one file at the given path into a Table.
type Capability interface {
	Read(path string, opts Options) (*table.Table, error)
}

// Func adapts a plain function to the Capability interface.
type Func func(path string, opts Options) (*table.Table, error)

// Read implements Capability.
func (f Func) Read(path string, opts Options) (*table.Table, error) {
	return f(path, opts)
}

// Config carries the two normalized caller-facing concepts every adapter
// understands. Factories translate them into their own option names at
// construction time; adapters whose format encodes these itself (XLSX) are
// free to ignore them.
type Config struct {
	// Header indicates the first record of each file holds column names.
	Header bool

	// Encoding is the IANA name of the text encoding, e.g. "UTF-8" or
	// "ISO-8859-1".
	Encoding string
}

// Factory builds a Capability for one format from the normalized config.
type Factory func(cfg Config) (Capability, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a factory available under the given format name. It panics
// if the format is already taken, mirroring database/sql driver registration.
func Register(format string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("reader: Register with nil factory")
	}
	if _, dup := registry[format]; dup {
		panic(fmt.Sprintf("reader: Register called twice for format %q", format))
	}
	registry[format] = f
}

// New constructs the registered reader for format, or reports ok=false when
// no factory is registered for it.
func New(format string, cfg Config) (Capability, bool, error) {
	registryMu.RLock()
	f, ok := registry[format]
	registryMu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	r, err := f(cfg)
	if err != nil {
		return nil, true, fmt.Errorf("building %s reader: %w", format, err)
	}
	return r, true, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	formats := make([]string, 0, len(registry))
	for name := range registry {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Option accessors used by the built-in adapters. Each returns the fallback
// when the key is absent, and an error when it is present with an unusable
// type.

// String extracts a string option.
func (o Options) String(key, fallback string) (string, error) {
	v, ok := o[key]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("option %q: want string, got %T", key, v)
	}
	return s, nil
}

// Bool extracts a boolean option.
func (o Options) Bool(key string, fallback bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return fallback, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("option %q: want bool, got %T", key, v)
	}
	return b, nil
}

// Rune extracts a rune option; a one-rune string is accepted as well.
func (o Options) Rune(key string, fallback rune) (rune, error) {
	v, ok := o[key]
	if !ok {
		return fallback, nil
	}
	switch r := v.(type) {
	case rune:
		return r, nil
	case string:
		runes := []rune(r)
		if len(runes) != 1 {
			return 0, fmt.Errorf("option %q: want a single character, got %q", key, r)
		}
		return runes[0], nil
	default:
		return 0, fmt.Errorf("option %q: want rune or string, got %T", key, v)
	}
}
