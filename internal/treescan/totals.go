package treescan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// Totals walks root to full depth and counts every file and directory below it.
// Unlike Scan it runs in parallel, builds no tree and tolerates unreadable
// entries, which are counted in Summary.Unreadable.
func Totals(ctx context.Context, root string, follow bool) (*Summary, error) {
	return walkTotals(ctx, root, follow, &collector{})
}

func walkTotals(ctx context.Context, root string, follow bool, c *collector) (*Summary, error) {
	root = filepath.Clean(root)

	if statInfo, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: accessing path %q: %w", ErrUnreadable, root, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("%w: path %q is not a directory", ErrUnreadable, root)
	}

	conf := &fastwalk.Config{
		Follow: follow,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.addError(fmt.Errorf("accessing %q: %w", path, err))

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if filepath.Clean(path) == root {
			return nil
		}

		isDir := d.IsDir()

		var resolved fs.FileInfo

		if d.Type()&fs.ModeSymlink != 0 && follow {
			info, err := fastwalk.StatDirEntry(path, d)
			if err != nil {
				c.addError(fmt.Errorf("resolving symlink %q: %w", path, err))

				return nil
			}

			resolved = info
			isDir = info.IsDir()
		}

		if isDir {
			c.addDir()

			return nil
		}

		var size int64

		switch {
		case resolved != nil:
			if resolved.Mode().IsRegular() {
				size = resolved.Size()
			}
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				c.addError(fmt.Errorf("reading info for %q: %w", path, err))

				return nil
			}

			size = info.Size()
		}

		c.addFile(size)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", root, walkErr)
	}

	return c.finalize(), nil
}
