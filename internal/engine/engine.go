// Package engine provides the core logic for treecmp operations.
//
// The engine sits between the CLI commands and the lower-level packages. It
// loads listing files through fsops, parses them with the listing package and
// compares the results.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Load: read, decode and parse a single listing file
//   - Compare: load two listings and compute their differences
package engine

import (
	"strings"

	"github.com/danieljhkim/treecmp/internal/fsops"
	"github.com/danieljhkim/treecmp/internal/listing"
)

// listingExt is the extension of the files offered as usage hints.
const listingExt = ".txt"

// Engine orchestrates all treecmp operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs    fsops.FS
	rules listing.Rules
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, rules listing.Rules) *Engine {
	return &Engine{
		fs:    fs,
		rules: rules,
	}
}

// TxtFiles returns the sorted names of the .txt files in dir.
func (e *Engine) TxtFiles(dir string) ([]string, error) {
	names, err := e.fs.ReadDirNames(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range names {
		if strings.HasSuffix(name, listingExt) {
			out = append(out, name)
		}
	}
	return out, nil
}
