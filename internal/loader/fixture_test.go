package loader

import (
	"path/filepath"
	"testing"
)

func TestLoadPluginFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.plugin.toml", `
name = "a.esp"
records = ["REC1", "REC2"]
`)
	writeFile(t, dir, "b.plugin.toml", `
name = "b.esm"
master = true
masters = ["a.esp"]
group_count = 4
assets = ["textures/b.dds"]
crc = 305419896
`)
	writeFile(t, dir, "ignored.txt", "not a manifest")

	providers, err := LoadPluginFixtures(dir)
	if err != nil {
		t.Fatalf("LoadPluginFixtures: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}

	if providers[0].Name() != "a.esp" {
		t.Fatalf("providers[0].Name() = %q, want a.esp (sorted by file name)", providers[0].Name())
	}
	if providers[0].OverrideRecordCount() != 2 {
		t.Fatalf("providers[0].OverrideRecordCount() = %d, want 2", providers[0].OverrideRecordCount())
	}

	b := providers[1]
	if !b.IsMaster() {
		t.Fatalf("providers[1].IsMaster() = false, want true")
	}
	if len(b.Masters()) != 1 || b.Masters()[0] != "a.esp" {
		t.Fatalf("providers[1].Masters() = %+v", b.Masters())
	}
	if b.RecordAndGroupCount() != 4 {
		t.Fatalf("providers[1].RecordAndGroupCount() = %d, want 4", b.RecordAndGroupCount())
	}
	if b.CRC() != 305419896 {
		t.Fatalf("providers[1].CRC() = %d, want 305419896", b.CRC())
	}
}

func TestLoadPluginFixtures_MissingName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.plugin.toml", `records = ["REC1"]`)

	if _, err := LoadPluginFixtures(dir); err == nil {
		t.Fatal("expected an error for a manifest with no name")
	}
}

func TestLoadPluginFixtures_EmptyDir(t *testing.T) {
	providers, err := LoadPluginFixtures(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPluginFixtures: %v", err)
	}
	if len(providers) != 0 {
		t.Fatalf("expected 0 providers, got %d", len(providers))
	}
}

func TestLoadPluginFixtures_MissingDir(t *testing.T) {
	if _, err := LoadPluginFixtures(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
