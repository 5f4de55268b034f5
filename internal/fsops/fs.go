// Package fsops provides the filesystem access used by treecmp.
//
// treecmp only reads: listing files are loaded whole into memory, and the
// working directory is scanned for candidate listings when the command is
// invoked incorrectly. Going through the FS interface keeps the engine
// testable with an in-memory implementation.
package fsops

import (
	"fmt"
	"os"
	"sort"
)

// FS provides an abstraction for filesystem reads.
type FS interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists. Symlinks are followed, so a dangling
	// link does not exist.
	Exists(path string) (bool, error)

	// ReadDirNames returns the sorted names of the entries in dir.
	ReadDirNames(dir string) ([]string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// ReadFile reads the entire contents of a file.
// The file is closed before ReadFile returns, whether or not reading failed.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return os.ReadFile(path)
}

// Exists checks if a path exists, following symlinks.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadDirNames returns the sorted names of the entries in dir.
func (fs *RealFS) ReadDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
