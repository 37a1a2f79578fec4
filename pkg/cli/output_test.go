package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatText, "*cli.TextFormatter"},
		{FormatJSON, "*cli.JSONFormatter"},
		{FormatCSV, "*cli.CSVFormatter"},
		{OutputFormat("unknown"), "*cli.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format)
			if got := typeName(f); got != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *TextFormatter:
		return "*cli.TextFormatter"
	case *JSONFormatter:
		return "*cli.JSONFormatter"
	case *CSVFormatter:
		return "*cli.CSVFormatter"
	default:
		return "unknown"
	}
}

func TestJSONFormatter(t *testing.T) {
	type report struct {
		Path  string `json:"path"`
		Valid bool   `json:"valid"`
	}

	f := &JSONFormatter{Indent: true}
	var buf bytes.Buffer
	if err := f.FormatTo(&buf, report{Path: "a.yaml", Valid: true}); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Path != "a.yaml" || !decoded.Valid {
		t.Errorf("round-trip = %+v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("indented output expected")
	}
}

func TestCSVFormatter(t *testing.T) {
	f := &CSVFormatter{Headers: []string{"path", "valid"}}

	out, err := f.Format([][]string{
		{"a.yaml", "true"},
		{"b.yaml", "false"},
	})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want header plus 2 rows:\n%s", len(lines), out)
	}
	if lines[0] != "path,valid" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "b.yaml,false" {
		t.Errorf("last row = %q", lines[2])
	}
}

func TestCSVFormatterRejectsNonRows(t *testing.T) {
	f := &CSVFormatter{}
	if _, err := f.Format("not rows"); err == nil {
		t.Error("Format() = nil error for non-[][]string data")
	}
}

func TestCSVFormatterQuoting(t *testing.T) {
	f := &CSVFormatter{}
	out, err := f.Format([][]string{{"a,b", `say "hi"`}})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != `"a,b","say ""hi"""` {
		t.Errorf("quoted output = %q", got)
	}
}
