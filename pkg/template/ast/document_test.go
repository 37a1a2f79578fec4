package ast

import "testing"

func TestNewDocument(t *testing.T) {
	root := MappingNode(
		Entry{Key: KeyFormatVersion, Value: StringNode("2010-09-09")},
		Entry{Key: KeyDescription, Value: StringNode("test template")},
		Entry{Key: KeyResources, Value: MappingNode(
			Entry{Key: "Bucket", Value: MappingNode(
				Entry{Key: KeyType, Value: StringNode("AWS::S3::Bucket")},
			)},
		)},
		Entry{Key: "Metadata", Value: MappingNode()},
		Entry{Key: "Transform", Value: StringNode("Serverless")},
	)

	doc, err := NewDocument(root, "test.yaml")
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	if v, ok := doc.FormatVersion.StringValue(); !ok || v != "2010-09-09" {
		t.Errorf("FormatVersion = %v, want 2010-09-09", doc.FormatVersion)
	}
	if !doc.HasResources() {
		t.Error("HasResources() = false, want true")
	}
	if doc.HasParameters() || doc.HasOutputs() {
		t.Error("absent sections reported present")
	}
	if doc.SourceFile != "test.yaml" {
		t.Errorf("SourceFile = %q, want test.yaml", doc.SourceFile)
	}

	// Unrecognized sections pass through opaquely
	if len(doc.Extra) != 2 {
		t.Fatalf("Extra has %d sections, want 2", len(doc.Extra))
	}
	if doc.Extra["Transform"] == nil || doc.Extra["Metadata"] == nil {
		t.Error("unrecognized sections not carried in Extra")
	}
}

func TestNewDocumentNonMappingRoot(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{"nil root", nil},
		{"scalar root", StringNode("not a template")},
		{"sequence root", SequenceNode(StringNode("item"))},
		{"null root", NullNode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDocument(tt.root, ""); err == nil {
				t.Error("NewDocument() error = nil, want error for non-mapping root")
			}
		})
	}
}

func TestDocumentSectionPresence(t *testing.T) {
	// Null-valued sections still count as present; absence means the key
	// never appeared.
	root := MappingNode(
		Entry{Key: KeyResources, Value: NullNode()},
		Entry{Key: KeyOutputs, Value: MappingNode()},
	)

	doc, err := NewDocument(root, "")
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	if !doc.HasResources() {
		t.Error("HasResources() = false for null-valued section, want true")
	}
	if !doc.HasOutputs() {
		t.Error("HasOutputs() = false for empty mapping section, want true")
	}
	if doc.HasParameters() {
		t.Error("HasParameters() = true for absent section, want false")
	}
}
