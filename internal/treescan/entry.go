package treescan

import "fmt"

// Kind classifies an Entry as a file or a directory.
type Kind int

const (
	// File is anything that is not a directory, including symlinks when they are not followed.
	File Kind = iota
	// Directory is a directory whose children were listed.
	Directory
)

// String returns the label used when rendering.
func (k Kind) String() string {
	switch k {
	case File:
		return "File"
	case Directory:
		return "Directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one filesystem node discovered during a scan.
type Entry struct {
	// Path is the listed directory, as given, followed by Name.
	Path string `json:"path"`
	// Name is the final path segment.
	Name string `json:"name"`
	// Kind is the file or directory classification.
	Kind Kind `json:"kind"`
	// Children holds the expanded contents of a directory. Always empty for files.
	Children []Entry `json:"children"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}
