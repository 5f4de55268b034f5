package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/treecmp/internal/engine"
)

// runCompare compares the two listings named by args.
func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	eng := newEngine()

	if len(args) != 2 {
		printUsageHint(out, eng)
		return ErrUsage
	}

	req := &engine.CompareRequest{
		BeforePath: args[0],
		AfterPath:  args[1],
	}

	result, err := eng.Compare(cmd.Context(), req)
	if err != nil {
		printHeader(out, req.BeforePath, req.AfterPath)
		if printLoadErrors(out, err) {
			return nil
		}
		return err
	}

	printReport(out, result)
	return nil
}

// printHeader prints the names of the compared listings.
func printHeader(w io.Writer, before, after string) {
	_, _ = headerColor.Fprintln(w, "Comparing tree files:")
	_, _ = fmt.Fprintf(w, "File 1: %s\n", before)
	_, _ = fmt.Fprintf(w, "File 2: %s\n", after)
	printSeparator(w)
}

// printReport prints the full comparison report.
func printReport(w io.Writer, r *engine.CompareResult) {
	printHeader(w, r.Before.Path, r.After.Path)

	printSummary(w, "File 1 statistics", r.Before)
	_, _ = fmt.Fprintln(w)
	printSummary(w, "File 2 statistics", r.After)

	printSection(w, "Detailed change analysis")

	if len(r.AddedDirs) > 0 {
		printChangeList(w, addedColor, "+", "Added directories", r.AddedDirs)
	}
	if len(r.RemovedDirs) > 0 {
		printChangeList(w, removedColor, "-", "Removed directories", r.RemovedDirs)
	}
	if !r.DirsChanged() {
		printEmptyState(w, "Directories")
	}

	if len(r.AddedFiles) > 0 {
		printChangeList(w, addedColor, "+", "Added files", r.AddedFiles)
	}
	if len(r.RemovedFiles) > 0 {
		printChangeList(w, removedColor, "-", "Removed files", r.RemovedFiles)
	}
	if !r.FilesChanged() {
		printEmptyState(w, "Files")
	}

	printSection(w, "Summary")
	printDelta(w, "Directories", r.DirDifference, r.Before.Dirs, r.After.Dirs)
	printDelta(w, "Files", r.FileDifference, r.Before.Files, r.After.Files)
	printDelta(w, "Total", r.TotalDifference, r.Before.Total(), r.After.Total())
}

// printSummary prints the statistics block of one listing.
func printSummary(w io.Writer, title string, s engine.ListingSummary) {
	_, _ = fmt.Fprintf(w, "%s:\n", title)
	printStat(w, "Directories", s.Dirs)
	printStat(w, "Files", s.Files)
	printStat(w, "Total", s.Total())
}

// printDelta prints "label: +d (before → after)".
func printDelta(w io.Writer, label string, delta, before, after int) {
	clr := dimColor
	switch {
	case delta > 0:
		clr = successColor
	case delta < 0:
		clr = errorColor
	}
	_, _ = fmt.Fprintf(w, "%s: ", label)
	_, _ = clr.Fprint(w, signed(delta))
	_, _ = fmt.Fprintf(w, " (%d → %d)\n", before, after)
}
