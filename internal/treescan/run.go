package treescan

import (
	"context"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(entries) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, source func() int64, hook func(int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(source())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans opt.Path and returns the forest together with its top-level counts.
// When opt.Totals is set, full-depth totals are computed after the scan.
//
// The scan completes before anything is returned; progressHook, if provided,
// is called periodically from another goroutine with the number of entries found so far.
func Run(ctx context.Context, opt Options, progressHook func(int64)) (*Report, error) {
	scanner := NewScanner(opt)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Totals reuse the reporter, so progress keeps growing after the scan.
	totals := &collector{}
	progress := func() int64 { return scanner.Discovered() + totals.seen() }

	start := time.Now()

	startProgressReporter(ctx, progress, progressHook, opt.ProgressInterval)

	entries, err := scanner.Scan(ctx, opt.Path)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Root:    opt.Path,
		Counts:  Count(entries),
		Entries: entries,
	}

	scanner.log.printf("[debug]: top level: %d files, %d directories\n",
		report.Counts.Files, report.Counts.Directories)

	if opt.Totals {
		summary, err := walkTotals(ctx, opt.Path, opt.Follow, totals)
		if err != nil {
			return nil, err
		}

		if summary.Err != nil {
			scanner.log.printf("[debug]: %v\n", summary.Err)
		}

		report.Totals = summary
	}

	report.Elapsed = time.Since(start)

	return report, nil
}
