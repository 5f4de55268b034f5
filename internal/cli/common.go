package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danieljhkim/treecmp/internal/engine"
	"github.com/danieljhkim/treecmp/internal/fsops"
	"github.com/danieljhkim/treecmp/internal/listing"
)

// newEngine creates a new engine with the real filesystem and the parse
// rules selected by the global flags.
func newEngine() *engine.Engine {
	rules := listing.DefaultRules().WithSkipPrefixes(skipPrefixes...)
	return engine.New(fsops.NewRealFS(), rules)
}

// printLoadErrors reports load failures and reports whether err consisted
// only of them.
func printLoadErrors(w io.Writer, err error) bool {
	loadErrs := engine.LoadErrors(err)
	if len(loadErrs) == 0 {
		return false
	}
	for _, le := range loadErrs {
		printError(w, describeLoadError(le))
	}
	return true
}

func describeLoadError(le *engine.LoadError) string {
	if errors.Is(le, engine.ErrNotFound) {
		return fmt.Sprintf("Error: file %s does not exist", le.Path)
	}
	return fmt.Sprintf("Error reading file %s: %v", le.Path, le.Cause)
}

// printUsageHint prints how to invoke treecmp and the listing files in the
// current directory.
func printUsageHint(w io.Writer, eng *engine.Engine) {
	_, _ = fmt.Fprintln(w, "Usage: treecmp <tree file 1> <tree file 2>")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Compares the number of directories and files in two tree listing files.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Example:")
	_, _ = fmt.Fprintln(w, "  treecmp tree1.txt tree2.txt")
	_, _ = fmt.Fprintln(w)
	_, _ = headerColor.Fprintln(w, ".txt files in the current directory:")

	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	names, err := eng.TxtFiles(cwd)
	if err != nil {
		return
	}
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  - %s\n", name)
	}
}
