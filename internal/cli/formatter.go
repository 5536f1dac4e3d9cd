package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/LuxMerlin/file-scanner/internal/treescan"
)

const (
	// Marker precedes the kind label on every tree line.
	Marker = "↳ "
	// Placeholder replaces bytes of a name or path that are not valid UTF-8.
	Placeholder = "\uFFFD"
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *treescan.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintText outputs the counts, the totals if present and, when showOutput is set, the tree.
func PrintText(report *treescan.Report, showOutput, verbose bool, writer io.Writer) error {
	w := bufio.NewWriter(writer)

	PrintCounts(w, report.Counts)

	if report.Totals != nil {
		PrintTotals(w, report.Totals)
	}

	if showOutput {
		PrintTree(w, report.Root, report.Entries, verbose)
	}

	return w.Flush()
}

// PrintCounts outputs the top-level file and folder counts.
func PrintCounts(w io.Writer, counts treescan.Counts) {
	fmt.Fprintf(w, "File Count: %d\n", counts.Files)
	fmt.Fprintf(w, "Folder Count: %d\n", counts.Directories)
}

// PrintTotals outputs full-depth totals.
func PrintTotals(w io.Writer, summary *treescan.Summary) {
	fmt.Fprintf(w, "Total Files: %d\n", summary.Files)
	fmt.Fprintf(w, "Total Folders: %d\n", summary.Directories)
	fmt.Fprintf(w, "Total Size: %s (%d bytes)\n",
		humanize.IBytes(uint64(summary.Bytes)), summary.Bytes) //nolint:gosec // Bytes is always positive

	if summary.Unreadable > 0 {
		fmt.Fprintf(w, "Unreadable: %d\n", summary.Unreadable)
	}
}

// PrintTree outputs the root line followed by the entries, children indented one
// space per level. Siblings are printed in reverse of the order they were scanned in.
func PrintTree(w io.Writer, root string, entries []treescan.Entry, verbose bool) {
	fmt.Fprintf(w, "Root: %s\n", displayText(root))
	printEntries(w, entries, 1, verbose)
}

func printEntries(w io.Writer, entries []treescan.Entry, level int, verbose bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]

		path := ""
		if verbose {
			path = displayText(entry.Path)
		}

		fmt.Fprintf(w, "%s%s : %s : %s\n", prefix(level), entry.Kind, displayText(entry.Name), path)

		if len(entry.Children) > 0 {
			printEntries(w, entry.Children, level+1, verbose)
		}
	}
}

// prefix returns the indentation and marker for a tree line at the given depth.
func prefix(level int) string {
	return strings.Repeat(" ", level) + Marker
}

// displayText returns s with invalid UTF-8 sequences replaced by Placeholder.
func displayText(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, Placeholder)
}
