package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/LuxMerlin/file-scanner/internal/treescan"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func logic(ctx context.Context, options treescan.Options, stdout, stderr io.Writer) error {
	enableProgress := options.Output == "text" &&
		!options.Debug &&
		isTerminal(stderr)

	// Skipped-entry lines would break the JSON document on stdout.
	options.Diagnostics = stdout
	if options.Output == "json" {
		options.Diagnostics = stderr
	}

	options.Log = stderr

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(entries int64) {
			fmt.Fprintf(stderr, "\r\033[2KScanning… %s entries\r", humanize.Comma(entries))
		}
	}

	report, err := treescan.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch options.Output {
	case "json":
		return PrintJSON(report, stdout)
	case "text":
		return PrintText(report, options.ShowOutput, options.Verbose, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
