package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/loot-go/lootsort/internal/metadata"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadMetadata_MissingFile(t *testing.T) {
	plugins, groups, err := LoadMetadata(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadMetadata: %v", err)
	}
	if plugins != nil || groups != nil {
		t.Fatalf("expected nil, nil for a missing file, got %v, %v", plugins, groups)
	}
}

func TestLoadMetadata_ParsesGroupsAndPlugins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "masterlist.yaml", `
groups:
  - name: default
  - name: quests
    after: [default]
plugins:
  - name: Requiem.esp
    group: quests
    after:
      - name: Skyrim.esm
    req:
      - name: SkyUI.esp
        display: "SkyUI"
    tag:
      - name: Relev
        add: true
    dirty:
      - crc: 0xDEADBEEF
        itm: 3
        deleted_refs: 1
        util: "TES5Edit"
`)

	plugins, groups, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata: %v", err)
	}

	if len(groups) != 2 || groups[1].Name != "quests" || len(groups[1].AfterGroups) != 1 || groups[1].AfterGroups[0].Name != "default" {
		t.Fatalf("unexpected groups: %+v", groups)
	}

	if len(plugins) != 1 {
		t.Fatalf("expected 1 plugin, got %d", len(plugins))
	}
	p := plugins[0]
	if p.Name() != "Requiem.esp" {
		t.Fatalf("Name() = %q", p.Name())
	}
	if group, ok := p.Group(); !ok || group != "quests" {
		t.Fatalf("Group() = %q, %v", group, ok)
	}
	if len(p.LoadAfterFiles()) != 1 || p.LoadAfterFiles()[0].Name != "Skyrim.esm" {
		t.Fatalf("LoadAfterFiles = %+v", p.LoadAfterFiles())
	}
	if len(p.Requirements()) != 1 || p.Requirements()[0].Display != "SkyUI" {
		t.Fatalf("Requirements = %+v", p.Requirements())
	}
	if len(p.Tags()) != 1 || !p.Tags()[0].IsAddition {
		t.Fatalf("Tags = %+v", p.Tags())
	}
	if len(p.DirtyInfo()) != 1 || p.DirtyInfo()[0].ITMCount != 3 {
		t.Fatalf("DirtyInfo = %+v", p.DirtyInfo())
	}
}

func TestMessageType(t *testing.T) {
	tests := map[string]metadata.MessageType{
		"say":     metadata.MessageSay,
		"":        metadata.MessageSay,
		"warn":    metadata.MessageWarn,
		"error":   metadata.MessageError,
		"garbage": metadata.MessageSay,
	}
	for in, want := range tests {
		if got := messageType(in); got != want {
			t.Errorf("messageType(%q) = %v, want %v", in, got, want)
		}
	}
}
