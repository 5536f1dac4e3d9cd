package treescan

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCount(t *testing.T) {
	t.Run("counts only the top level", func(t *testing.T) {
		entries := []Entry{
			{Name: "a.txt", Kind: File},
			{Name: "b.txt", Kind: File},
			{Name: "sub", Kind: Directory, Children: []Entry{
				{Name: "c.txt", Kind: File},
				{Name: "nested", Kind: Directory},
			}},
		}

		got := Count(entries)
		if got.Files != 2 || got.Directories != 1 {
			t.Errorf("expected 2 files and 1 directory, got %+v", got)
		}
	})

	t.Run("nested file is not counted", func(t *testing.T) {
		root := setupTree(t, map[string]any{
			"sub": map[string]any{"c.txt": "c"},
		})

		entries, err := Scan(root)
		if err != nil {
			t.Fatal(err)
		}

		got := Count(entries)
		if got.Files != 0 || got.Directories != 1 {
			t.Errorf("expected 0 files and 1 directory, got %+v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Count(nil); got != (Counts{}) {
			t.Errorf("expected zero counts, got %+v", got)
		}
	})
}

func TestTotals(t *testing.T) {
	t.Run("counts every level", func(t *testing.T) {
		root := setupTree(t, map[string]any{
			"a.txt": "12345",
			"sub": map[string]any{
				"c.txt": "123",
				"deeper": map[string]any{
					"d.txt": "12",
				},
			},
		})

		summary, err := Totals(context.Background(), root, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if summary.Files != 3 {
			t.Errorf("expected 3 files, got %d", summary.Files)
		}
		if summary.Directories != 2 {
			t.Errorf("expected 2 directories, got %d", summary.Directories)
		}
		if summary.Bytes != 10 {
			t.Errorf("expected 10 bytes, got %d", summary.Bytes)
		}
		if summary.Unreadable != 0 || summary.Err != nil {
			t.Errorf("expected no unreadable entries, got %d (%v)", summary.Unreadable, summary.Err)
		}
	})

	t.Run("empty root", func(t *testing.T) {
		summary, err := Totals(context.Background(), t.TempDir(), false)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Files != 0 || summary.Directories != 0 {
			t.Errorf("expected zero totals, got %+v", summary)
		}
	})

	t.Run("nonexistent root", func(t *testing.T) {
		_, err := Totals(context.Background(), filepath.Join(t.TempDir(), "missing"), false)
		if !errors.Is(err, ErrUnreadable) {
			t.Fatalf("expected ErrUnreadable, got %v", err)
		}
	})

	t.Run("followed symlink to a file adds its size", func(t *testing.T) {
		root := setupTree(t, map[string]any{"a.txt": "12345"})
		symlink(t, filepath.Join(root, "a.txt"), filepath.Join(root, "link"))

		summary, err := Totals(context.Background(), root, true)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Files != 2 {
			t.Errorf("expected 2 files, got %d", summary.Files)
		}
		if summary.Bytes != 10 {
			t.Errorf("expected 10 bytes, got %d", summary.Bytes)
		}
	})

	t.Run("symlink to a file adds no size when not followed", func(t *testing.T) {
		root := setupTree(t, map[string]any{"a.txt": "12345"})
		symlink(t, filepath.Join(root, "a.txt"), filepath.Join(root, "link"))

		summary, err := Totals(context.Background(), root, false)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Files != 2 || summary.Bytes != 5 {
			t.Errorf("expected 2 files and 5 bytes, got %d files and %d bytes", summary.Files, summary.Bytes)
		}
	})

	t.Run("dangling symlink is unreadable when followed", func(t *testing.T) {
		root := setupTree(t, map[string]any{"a.txt": "a"})
		symlink(t, filepath.Join(root, "missing"), filepath.Join(root, "dangling"))

		summary, err := Totals(context.Background(), root, true)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Files != 1 {
			t.Errorf("expected 1 file, got %d", summary.Files)
		}
		if summary.Unreadable != 1 {
			t.Errorf("expected 1 unreadable entry, got %d", summary.Unreadable)
		}
		if summary.Err == nil || !strings.Contains(summary.Err.Error(), "dangling") {
			t.Errorf("expected error naming the link, got %v", summary.Err)
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("report without totals", func(t *testing.T) {
		root := setupTree(t, map[string]any{
			"a.txt": "a",
			"b.txt": "b",
			"sub":   map[string]any{},
		})

		report, err := Run(context.Background(), Options{Path: root}, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.Root != root {
			t.Errorf("expected root %s, got %s", root, report.Root)
		}
		if report.Counts != (Counts{Files: 2, Directories: 1}) {
			t.Errorf("unexpected counts %+v", report.Counts)
		}
		if len(report.Entries) != 3 {
			t.Errorf("expected 3 entries, got %d", len(report.Entries))
		}
		if report.Totals != nil {
			t.Error("expected no totals")
		}
	})

	t.Run("report with totals", func(t *testing.T) {
		root := setupTree(t, map[string]any{
			"sub": map[string]any{"c.txt": "c"},
		})

		report, err := Run(context.Background(), Options{Path: root, Totals: true}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if report.Counts.Files != 0 || report.Counts.Directories != 1 {
			t.Errorf("unexpected counts %+v", report.Counts)
		}
		if report.Totals == nil {
			t.Fatal("expected totals")
		}
		if report.Totals.Files != 1 || report.Totals.Directories != 1 {
			t.Errorf("unexpected totals %+v", report.Totals)
		}
	})

	t.Run("progress reporter calls the hook", func(t *testing.T) {
		called := make(chan int64, 1)

		hook := func(entries int64) {
			select {
			case called <- entries:
			default:
			}
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		startProgressReporter(ctx, func() int64 { return 1 }, hook, time.Millisecond)

		select {
		case got := <-called:
			if got != 1 {
				t.Errorf("expected 1, got %d", got)
			}
		case <-time.After(time.Second):
			t.Fatal("progress hook was not called")
		}
	})

	t.Run("missing root produces no report", func(t *testing.T) {
		report, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "missing")}, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if report != nil {
			t.Error("expected nil report")
		}
	})
}
