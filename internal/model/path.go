package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the final component of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}
