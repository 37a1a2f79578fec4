package template

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stack.yaml")
	content := `
AWSTemplateFormatVersion: "2010-09-09"
Parameters:
  Env:
    Type: String
Resources:
  Bucket:
    Type: AWS::S3::Bucket
Outputs:
  BucketName:
    Value: x
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, result, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if !result.Valid() {
		t.Errorf("Valid() = false, errors: %v", result.ErrorMessages())
	}
	if doc.SourceFile != path {
		t.Errorf("SourceFile = %q, want %q", doc.SourceFile, path)
	}
}

func TestLoadAndValidateBytesSeparatesFatalFromStructural(t *testing.T) {
	// Structural problems land in the result, not the error.
	_, result, err := LoadAndValidateBytes([]byte("Description: empty\n"), "mem.yaml")
	if err != nil {
		t.Fatalf("LoadAndValidateBytes() error = %v, want structural problems in result", err)
	}
	if result.Valid() {
		t.Error("Valid() = true for template with no resources")
	}

	// Loader failures land in the error, with no result at all.
	_, result, err = LoadAndValidateBytes([]byte("- not\n- a\n- template\n"), "mem.yaml")
	if err == nil {
		t.Fatal("LoadAndValidateBytes() error = nil for non-mapping root")
	}
	if result != nil {
		t.Error("result != nil alongside a loader error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want io error")
	}
}
