package treescan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
)

// ErrUnreadable is returned when the root, or any directory below it, cannot be listed.
var ErrUnreadable = errors.New("directory cannot be listed")

// logger provides conditional debug output.
type logger struct {
	enabled bool
	out     io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.out != nil {
		fmt.Fprintf(l.out, format, args...)
	}
}

// Scanner builds the entry forest for a directory.
// A Scanner is meant for a single run; the forest it returns is owned by the caller.
type Scanner struct {
	follow      bool
	diagnostics io.Writer
	log         logger
	discovered  atomic.Int64
}

// NewScanner creates a Scanner from the options.
// Skipped entries are reported on opt.Diagnostics and debug lines go to opt.Log.
func NewScanner(opt Options) *Scanner {
	diagnostics := opt.Diagnostics
	if diagnostics == nil {
		diagnostics = os.Stdout
	}

	out := opt.Log
	if out == nil {
		out = os.Stderr
	}

	return &Scanner{
		follow:      opt.Follow,
		diagnostics: diagnostics,
		log:         logger{enabled: opt.Debug, out: out},
	}
}

// Scan lists root recursively with default options.
func Scan(root string) ([]Entry, error) {
	return NewScanner(Options{}).Scan(context.Background(), root)
}

// Discovered returns the number of entries classified so far.
// It is safe to call while a scan is in progress.
func (s *Scanner) Discovered() int64 {
	return s.discovered.Load()
}

// Scan returns the immediate children of root, each expanded recursively.
// The root itself is not part of the result.
//
// If root, or any directory below it, cannot be listed the whole scan fails
// with an error wrapping ErrUnreadable. Entries whose kind cannot be determined
// are reported on the diagnostics writer and left out.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: accessing path %q: %w", ErrUnreadable, root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: path %q is not a directory", ErrUnreadable, root)
	}

	return s.scan(ctx, root)
}

func (s *Scanner) scan(ctx context.Context, dir string) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.log.printf("[debug]: listing %s\n", dir)

	dirEntries, err := readDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing directory %q: %w", ErrUnreadable, dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))

	//nolint:varnamelen // d is standard for DirEntry
	for _, d := range dirEntries {
		path := joinPath(dir, d.Name())

		kind, err := s.kindOf(path, d)
		if err != nil {
			fmt.Fprintf(s.diagnostics, "could not determine file type for %q\n", path)
			s.log.printf("[debug]: skipping %s: %v\n", path, err)

			continue
		}

		s.discovered.Add(1)

		entry := Entry{
			Path:     path,
			Name:     d.Name(),
			Kind:     kind,
			Children: []Entry{},
		}

		if entry.IsDir() {
			children, err := s.scan(ctx, path)
			if err != nil {
				return nil, err
			}

			entry.Children = children
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// kindOf classifies a directory entry. Symlinks are classified by their own
// type unless following is enabled, in which case the target decides.
func (s *Scanner) kindOf(path string, d fs.DirEntry) (Kind, error) {
	typ := d.Type()

	if typ&fs.ModeSymlink != 0 && s.follow {
		info, err := os.Stat(path)
		if err != nil {
			return File, fmt.Errorf("resolving symlink: %w", err)
		}

		typ = info.Mode().Type()
	}

	if typ.IsDir() {
		return Directory, nil
	}

	return File, nil
}

// joinPath appends name to dir without cleaning, so entry paths keep the root as given.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}

	return dir + string(filepath.Separator) + name
}

// readDir lists dir in the order the filesystem returns, unlike os.ReadDir which sorts.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}
