package treescan

import (
	"encoding/json"
	"testing"
)

func TestEntryJSON(t *testing.T) {
	entry := Entry{
		Path: "root/sub",
		Name: "sub",
		Kind: Directory,
		Children: []Entry{
			{Path: "root/sub/a.txt", Name: "a.txt", Kind: File, Children: []Entry{}},
		},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"path":"root/sub","name":"sub","kind":"Directory","children":` +
		`[{"path":"root/sub/a.txt","name":"a.txt","kind":"File","children":[]}]}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got: %s\nwant: %s", data, want)
	}
}
