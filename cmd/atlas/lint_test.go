package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mercator-hq/atlas/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectTemplatePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "Resources: {}\n")
	writeFile(t, filepath.Join(dir, "a.yml"), "Resources: {}\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a template\n")

	t.Run("single file", func(t *testing.T) {
		got, err := collectTemplatePaths("stack.yaml", "")
		if err != nil {
			t.Fatalf("collectTemplatePaths() error = %v", err)
		}
		if !reflect.DeepEqual(got, []string{"stack.yaml"}) {
			t.Errorf("paths = %v", got)
		}
	})

	t.Run("directory globs yaml and yml sorted", func(t *testing.T) {
		got, err := collectTemplatePaths("", dir)
		if err != nil {
			t.Fatalf("collectTemplatePaths() error = %v", err)
		}
		want := []string{filepath.Join(dir, "a.yml"), filepath.Join(dir, "b.yaml")}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("paths = %v, want %v", got, want)
		}
	})

	t.Run("both flags rejected", func(t *testing.T) {
		if _, err := collectTemplatePaths("stack.yaml", dir); err == nil {
			t.Error("error = nil, want mutually-exclusive error")
		}
	})

	t.Run("neither flag rejected", func(t *testing.T) {
		if _, err := collectTemplatePaths("", ""); err == nil {
			t.Error("error = nil, want required-flag error")
		}
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		if _, err := collectTemplatePaths("", t.TempDir()); err == nil {
			t.Error("error = nil, want no-templates error")
		}
	})
}

func TestLintPaths(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	writeFile(t, good, `
AWSTemplateFormatVersion: "2010-09-09"
Parameters:
  Env:
    Type: String
Resources:
  Bucket:
    Type: AWS::S3::Bucket
Outputs:
  Name:
    Value: x
`)
	warned := filepath.Join(dir, "warned.yaml")
	writeFile(t, warned, `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  Bucket:
    Type: AWS::S3::Bucket
`)
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "Description: no resources\n")
	unreadable := filepath.Join(dir, "absent.yaml")

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	t.Run("default strictness", func(t *testing.T) {
		results, failed := lintPaths(cfg, []string{good, warned, bad, unreadable}, false)
		if len(results) != 4 {
			t.Fatalf("results = %d, want 4", len(results))
		}
		if failed != 2 {
			t.Errorf("failed = %d, want bad and unreadable only", failed)
		}

		if !results[0].Valid || results[0].ResourceCount != 1 {
			t.Errorf("good result = %+v", results[0])
		}
		if !results[1].Valid || len(results[1].Warnings) != 2 {
			t.Errorf("warned result = %+v", results[1])
		}
		if results[2].Valid || len(results[2].Errors) == 0 {
			t.Errorf("bad result = %+v", results[2])
		}
		if results[3].Valid || len(results[3].Errors) != 1 {
			t.Errorf("unreadable result = %+v", results[3])
		}
	})

	t.Run("strict counts warnings as failures", func(t *testing.T) {
		_, failed := lintPaths(cfg, []string{good, warned}, true)
		if failed != 1 {
			t.Errorf("failed = %d, want warned file to fail under strict", failed)
		}
	})

	t.Run("configured format versions", func(t *testing.T) {
		custom := &config.Config{}
		config.ApplyDefaults(custom)
		custom.Lint.FormatVersions = []string{"2024-06-01"}

		results, failed := lintPaths(custom, []string{good}, false)
		if failed != 1 || results[0].Valid {
			t.Errorf("2010-09-09 accepted despite custom version set: %+v", results[0])
		}
	})
}
