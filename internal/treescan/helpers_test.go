package treescan

import (
	"os"
	"path/filepath"
	"testing"
)

// Helpers

// setupTree creates structure below a fresh temporary directory and returns it.
// A string value is a file with that content, a map is a directory.
func setupTree(t *testing.T, structure map[string]any) string {
	t.Helper()
	root := t.TempDir()
	createStructure(t, root, structure)

	return root
}

func createStructure(t *testing.T, basePath string, structure map[string]any) {
	t.Helper()
	for name, content := range structure {
		path := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := os.WriteFile(path, []byte(v), 0o644); err != nil {
				t.Fatalf("failed to create file %s: %v", path, err)
			}
		case map[string]any:
			if err := os.Mkdir(path, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", path, err)
			}
			createStructure(t, path, v)
		default:
			t.Fatalf("unsupported structure type for %s", name)
		}
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}

func findEntry(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not found", name)

	return Entry{}
}

type triple struct {
	name  string
	kind  Kind
	depth int
}

// triples flattens a forest into a multiset of (name, kind, depth).
func triples(entries []Entry, depth int, into map[triple]int) map[triple]int {
	for _, e := range entries {
		into[triple{name: e.Name, kind: e.Kind, depth: depth}]++
		triples(e.Children, depth+1, into)
	}

	return into
}
