package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mercator-hq/atlas/pkg/config"
)

func TestCollectWatchedTemplates(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "network", "prod")
	hidden := filepath.Join(dir, ".git")
	for _, d := range []string{nested, hidden} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	writeFile(t, filepath.Join(dir, "top.yaml"), "Resources: {}\n")
	writeFile(t, filepath.Join(nested, "deep.yml"), "Resources: {}\n")
	writeFile(t, filepath.Join(dir, "network", "mid.yaml"), "Resources: {}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a template\n")
	writeFile(t, filepath.Join(dir, ".hidden.yaml"), "Resources: {}\n")
	writeFile(t, filepath.Join(hidden, "ignored.yaml"), "Resources: {}\n")

	cfg := &config.WatchConfig{
		Path:       dir,
		Extensions: []string{".yaml", ".yml"},
	}

	got, err := collectWatchedTemplates(cfg)
	if err != nil {
		t.Fatalf("collectWatchedTemplates() error = %v", err)
	}

	// Nested templates are included; hidden and unwatched files are not.
	want := []string{
		filepath.Join(dir, "network", "mid.yaml"),
		filepath.Join(nested, "deep.yml"),
		filepath.Join(dir, "top.yaml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestCollectWatchedTemplatesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.yaml")
	writeFile(t, path, "Resources: {}\n")

	got, err := collectWatchedTemplates(&config.WatchConfig{
		Path:       path,
		Extensions: []string{".yaml"},
	})
	if err != nil {
		t.Fatalf("collectWatchedTemplates() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{path}) {
		t.Errorf("paths = %v, want the file itself", got)
	}
}

func TestCollectWatchedTemplatesMissingPath(t *testing.T) {
	_, err := collectWatchedTemplates(&config.WatchConfig{
		Path:       filepath.Join(t.TempDir(), "absent"),
		Extensions: []string{".yaml"},
	})
	if err == nil {
		t.Error("collectWatchedTemplates() = nil error for missing path")
	}
}
