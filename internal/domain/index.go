// Package domain implements the duplicate-detection engine: reference
// indexing, exact content comparison and the dedup workflow.
package domain

import (
	"errors"
	"fmt"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// ErrNoBaseName reports a path without a resolvable final component. The
// scanner only emits regular files, so hitting this means a broken caller
// contract; it is surfaced instead of silently skipped.
var ErrNoBaseName = errors.New("path has no base name component")

// ReferenceIndex groups reference file paths by base name. It is built once
// per run and read-only afterwards. Candidate order per name mirrors the
// order paths were supplied in.
type ReferenceIndex struct {
	byName map[string][]m.Path
}

// NewReferenceIndex builds an index from the given paths. No file content is
// read; grouping is by name only.
func NewReferenceIndex(paths []m.Path) (*ReferenceIndex, error) {
	byName := make(map[string][]m.Path, len(paths))

	for _, path := range paths {
		name, err := baseName(path)
		if err != nil {
			return nil, err
		}

		byName[name] = append(byName[name], path)
	}

	return &ReferenceIndex{byName: byName}, nil
}

// Candidates returns the reference paths sharing the given base name, in
// insertion order. The result is nil when the name is unknown.
func (idx *ReferenceIndex) Candidates(name string) []m.Path {
	return idx.byName[name]
}

// Names returns the number of distinct base names in the index.
func (idx *ReferenceIndex) Names() int {
	return len(idx.byName)
}

func baseName(path m.Path) (string, error) {
	name := path.Base()
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: %q", ErrNoBaseName, path)
	}

	return name, nil
}
