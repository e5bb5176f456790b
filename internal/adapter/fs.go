// Package adapter contains filesystem and persistence adapters for the
// dupesweep CLI.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// TreeFS abstracts the filesystem operations the domain layer relies on. It
// hides direct `os` access so the dedup workflow can be tested without
// touching the disk, and so dry-run tests can prove nothing was removed.
type TreeFS interface {
	// ScanTree enumerates every regular, non-symlink file under root,
	// recursively. Exclude patterns are regular expressions matched against
	// base names; matching files are left out of the result.
	ScanTree(root m.Path, exclude ...string) ([]m.Path, error)

	// Remove deletes a single file.
	Remove(path m.Path) error
}

// LocalTreeFS is the concrete TreeFS backed by the local filesystem.
type LocalTreeFS struct{}

// NewLocalTreeFS constructs a LocalTreeFS ready to be wired into the workflow.
func NewLocalTreeFS() *LocalTreeFS {
	return &LocalTreeFS{}
}

// ScanTree walks root with an explicit worklist so that very deep trees cannot
// exhaust the call stack. Symbolic links are neither followed nor included;
// other non-regular entries (sockets, devices) are skipped as well. Any
// directory read failure aborts the scan.
func (fs *LocalTreeFS) ScanTree(root m.Path, exclude ...string) ([]m.Path, error) {
	filters, err := compileFilters(exclude)
	if err != nil {
		return nil, err
	}

	pending := []string{string(root)}

	var files []m.Path

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			// DirEntry.Type reports the link itself, not its destination, so
			// this covers links to files and to directories alike.
			if entry.Type()&os.ModeSymlink != 0 {
				slog.Debug("skipping symlink", "path", path)
				continue
			}

			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}

			if matchesAny(filters, entry.Name()) {
				slog.Debug("excluded by pattern", "path", path)
				continue
			}

			files = append(files, m.Path(path))
		}
	}

	slog.Debug("scan finished", "root", root, "files", len(files))

	return files, nil
}

// Remove deletes the file at path.
func (fs *LocalTreeFS) Remove(path m.Path) error {
	if err := os.Remove(string(path)); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	return nil
}

func compileFilters(patterns []string) ([]*regexp.Regexp, error) {
	filters := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filters = append(filters, re)
	}

	return filters, nil
}

func matchesAny(filters []*regexp.Regexp, name string) bool {
	for _, re := range filters {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
