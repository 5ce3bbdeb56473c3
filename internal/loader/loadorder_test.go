package loader

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadLoadOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "loadorder.txt", "Skyrim.esm\n# a comment\n\nUpdate.esm\nDawnguard.esm\n")

	got, err := LoadLoadOrder(path)
	if err != nil {
		t.Fatalf("LoadLoadOrder: %v", err)
	}
	want := []string{"Skyrim.esm", "Update.esm", "Dawnguard.esm"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadLoadOrder = %v, want %v", got, want)
	}
}

func TestLoadLoadOrder_MissingFile(t *testing.T) {
	got, err := LoadLoadOrder(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("LoadLoadOrder: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for a missing file, got %v", got)
	}
}
