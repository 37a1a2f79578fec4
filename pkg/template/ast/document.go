package ast

import "fmt"

// Well-known top-level section keys of a template document.
const (
	KeyFormatVersion = "AWSTemplateFormatVersion"
	KeyDescription   = "Description"
	KeyParameters    = "Parameters"
	KeyResources     = "Resources"
	KeyOutputs       = "Outputs"
)

// Well-known fields of resource, parameter, and output entries.
const (
	KeyType           = "Type"
	KeyProperties     = "Properties"
	KeyValue          = "Value"
	KeyDeletionPolicy = "DeletionPolicy"
)

// Document represents the root of a parsed template.
// The recognized top-level sections are broken out; any other section is
// carried opaquely in Extra and never interpreted.
//
// A Document is immutable by convention after construction: validators and
// introspection queries only read it, so it may be shared freely.
type Document struct {
	// FormatVersion is the format-version scalar, or nil if absent.
	FormatVersion *Node

	// Description is the description scalar, or nil if absent.
	Description *Node

	// Parameters is the parameters section node, or nil if absent.
	// When present it is usually a mapping of name to parameter spec,
	// but malformed documents may carry any kind here.
	Parameters *Node

	// Resources is the resources section node, or nil if absent.
	Resources *Node

	// Outputs is the outputs section node, or nil if absent.
	Outputs *Node

	// Extra holds unrecognized top-level sections, keyed by section name.
	// They pass through untouched.
	Extra map[string]*Node

	// SourceFile is the path the document was loaded from, if any.
	SourceFile string

	// Location is the source location of the document root.
	Location Location
}

// NewDocument constructs a Document from a parsed root node.
// The root must be a mapping; anything else cannot be a template document.
//
// This is the supported way to build documents from in-memory trees, e.g.
// for constructing malformed-document scenarios in tests without reaching
// into parser internals.
func NewDocument(root *Node, sourceFile string) (*Document, error) {
	if !root.IsMapping() {
		kind := KindNull
		if root != nil {
			kind = root.Kind
		}
		return nil, fmt.Errorf("template root must be a mapping, got %s", kind)
	}

	doc := &Document{
		SourceFile: sourceFile,
		Location:   root.Location,
	}

	for _, e := range root.Entries {
		switch e.Key {
		case KeyFormatVersion:
			doc.FormatVersion = e.Value
		case KeyDescription:
			doc.Description = e.Value
		case KeyParameters:
			doc.Parameters = e.Value
		case KeyResources:
			doc.Resources = e.Value
		case KeyOutputs:
			doc.Outputs = e.Value
		default:
			if doc.Extra == nil {
				doc.Extra = make(map[string]*Node)
			}
			doc.Extra[e.Key] = e.Value
		}
	}

	return doc, nil
}

// HasResources returns true if the document has a resources section,
// regardless of its shape or contents.
func (d *Document) HasResources() bool {
	return d.Resources != nil
}

// HasParameters returns true if the document has a parameters section.
func (d *Document) HasParameters() bool {
	return d.Parameters != nil
}

// HasOutputs returns true if the document has an outputs section.
func (d *Document) HasOutputs() bool {
	return d.Outputs != nil
}
