package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsPluginChange(t *testing.T) {
	dir := t.TempDir()

	pluginFile := filepath.Join(dir, "test.esp")
	if err := os.WriteFile(pluginFile, []byte("stub"), 0644); err != nil {
		t.Fatalf("failed to create plugin file: %v", err)
	}

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(pluginFile, []byte("updated"), 0644); err != nil {
		t.Fatalf("failed to update plugin file: %v", err)
	}

	select {
	case changed := <-w.Changes:
		if changed != pluginFile {
			t.Errorf("expected change for %q, got %q", pluginFile, changed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	select {
	case changed := <-w.Changes:
		t.Errorf("unexpected change event: %s", changed)
	case <-time.After(300 * time.Millisecond):
		// Expected: no events for non-plugin files.
	}
}

func TestWatcher_DetectsFixtureManifestChange(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	manifest := filepath.Join(dir, "test.plugin.toml")
	if err := os.WriteFile(manifest, []byte(`name = "test.esp"`), 0644); err != nil {
		t.Fatalf("failed to create manifest: %v", err)
	}

	select {
	case changed := <-w.Changes:
		if changed != manifest {
			t.Errorf("expected change for %q, got %q", manifest, changed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestIsPluginFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Skyrim.esm", true},
		{"MyMod.esp", true},
		{"MyMod.esl", true},
		{"world.omwaddon", true},
		{"fixture.plugin.toml", true},
		{"notes.txt", false},
		{"readme.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPluginFile(tt.name); got != tt.want {
				t.Errorf("isPluginFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
