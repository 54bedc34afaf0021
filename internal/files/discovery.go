// Package files provides the directory resolution used by the batch reader:
// matching a shell-style pattern against the plain files of one directory.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Resolve lists the plain files in dir whose names match pattern, using
// filepath.Match semantics against the name only. Results are full paths in
// lexical name order. A missing or unreadable dir is an error; an invalid
// pattern is an error; zero matches is not.
func Resolve(dir, pattern string) ([]string, error) {
	// Validate the pattern up front so a bad pattern is not mistaken for an
	// empty directory.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
