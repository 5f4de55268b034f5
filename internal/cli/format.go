package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these when output is not a TTY or --no-color is set
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// separatorWidth is the width of the "=" rule between report sections.
const separatorWidth = 60

// printSeparator prints a full-width "=" rule.
func printSeparator(w io.Writer) {
	_, _ = dimColor.Fprintln(w, strings.Repeat("=", separatorWidth))
}

// printSection prints a title framed by separators, preceded by a blank line.
func printSection(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w)
	printSeparator(w)
	_, _ = headerColor.Fprintf(w, "%s:\n", title)
	printSeparator(w)
}

// printStat prints one "  - label: value" statistics line.
func printStat(w io.Writer, label string, value int) {
	_, _ = fmt.Fprintf(w, "  - %s: ", label)
	_, _ = labelColor.Fprintf(w, "%d\n", value)
}

// printChangeList prints a titled list of paths, each behind marker.
func printChangeList(w io.Writer, clr *color.Color, marker, title string, items []string) {
	_, _ = fmt.Fprintln(w)
	_, _ = clr.Fprintf(w, "[%s] %s (%d):\n", marker, title, len(items))
	for _, item := range items {
		_, _ = clr.Fprintf(w, "    %s %s\n", marker, item)
	}
}

// printEmptyState prints the message shown when a category has no changes.
func printEmptyState(w io.Writer, category string) {
	_, _ = fmt.Fprintln(w)
	_, _ = dimColor.Fprintf(w, "[%s] No changes\n", category)
}

// printList prints paths indented below a heading.
func printList(w io.Writer, title string, items []string) {
	_, _ = headerColor.Fprintf(w, "%s (%d):\n", title, len(items))
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "    %s\n", item)
	}
}

// printError prints an error line to w.
func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintln(w, msg)
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// signed formats n with an explicit sign.
func signed(n int) string {
	return fmt.Sprintf("%+d", n)
}
