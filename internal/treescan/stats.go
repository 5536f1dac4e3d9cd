package treescan

import (
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to scan.
	Path string
	// ShowOutput indicates whether the tree is rendered after the counts.
	ShowOutput bool
	// Verbose adds each entry's full path when rendering.
	Verbose bool
	// Follow resolves symlinks and classifies them by their target.
	Follow bool
	// Totals requests full-depth totals in addition to the top-level counts.
	Totals bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (text or json).
	Output string
	// Diagnostics receives one line per skipped entry. Defaults to stdout.
	Diagnostics io.Writer
	// Log receives debug output. Defaults to stderr.
	Log io.Writer
}

// Counts holds the number of files and directories directly below the root.
type Counts struct {
	// Files is the number of top-level entries of kind File.
	Files int `json:"files"`
	// Directories is the number of top-level entries of kind Directory.
	Directories int `json:"directories"`
}

// Count tallies the given entries by kind without descending into children.
func Count(entries []Entry) Counts {
	var counts Counts

	for _, e := range entries {
		if e.IsDir() {
			counts.Directories++
		} else {
			counts.Files++
		}
	}

	return counts
}

// Summary holds full-depth totals for a tree.
type Summary struct {
	// Files is the number of non-directory entries at any depth.
	Files int64 `json:"files"`
	// Directories is the number of directories at any depth, excluding the root.
	Directories int64 `json:"directories"`
	// Bytes is the cumulative size of all regular files.
	Bytes int64 `json:"bytes"`
	// Unreadable is the number of entries that could not be read.
	Unreadable int64 `json:"unreadable"`
	// Err collects the errors behind Unreadable, nil if there were none.
	Err error `json:"-"`
}

// Report is the result of a Run.
type Report struct {
	// Root is the path as given by the caller.
	Root string `json:"root"`
	// Counts covers the top level only.
	Counts Counts `json:"counts"`
	// Totals is set when full-depth totals were requested.
	Totals *Summary `json:"totals,omitempty"`
	// Entries is the scanned forest.
	Entries []Entry `json:"entries"`
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration `json:"elapsed"`
}

// collector aggregates totals from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu          sync.Mutex // Protect concurrent access
	files       int64
	directories int64
	bytes       int64
	unreadable  int64
	errs        *multierror.Error
}

// addError records an entry that could not be read. This operation is protected
// by a mutex since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unreadable++
	c.errs = multierror.Append(c.errs, err)
}

// addDir records a directory.
func (c *collector) addDir() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.directories++
}

// addFile records a file and its size.
func (c *collector) addFile(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files++
	c.bytes += size
}

// seen returns the number of entries recorded so far.
func (c *collector) seen() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.files + c.directories
}

// finalize produces the Summary from the collected data.
func (c *collector) finalize() *Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Summary{
		Files:       c.files,
		Directories: c.directories,
		Bytes:       c.bytes,
		Unreadable:  c.unreadable,
		Err:         c.errs.ErrorOrNil(),
	}
}
