package inspect

import (
	"strings"

	"mercator-hq/atlas/pkg/template/ast"
)

// CountResources returns the number of entries in the resources section,
// or 0 if the section is absent or not a mapping. Sub-structures are not
// recursed into.
func CountResources(doc *ast.Document) int {
	return doc.Resources.Len()
}

// CountParameters returns the number of entries in the parameters section,
// or 0 if the section is absent or not a mapping.
func CountParameters(doc *ast.Document) int {
	return doc.Parameters.Len()
}

// CountOutputs returns the number of entries in the outputs section,
// or 0 if the section is absent or not a mapping.
func CountOutputs(doc *ast.Document) int {
	return doc.Outputs.Len()
}

// UsesNamingToken returns true iff at least one resource's serialized body
// contains the given token string, e.g. a substitution placeholder used for
// deployment-uniqueness suffixes.
//
// This is a textual scan over the structural serialization, not semantic
// evaluation: the token's value is never resolved. Absent resources
// sections and null or non-mapping entries yield false for that entry and
// the scan continues.
func UsesNamingToken(doc *ast.Document, token string) bool {
	if doc.Resources == nil || !doc.Resources.IsMapping() || token == "" {
		return false
	}
	for _, entry := range doc.Resources.Entries {
		if entry.Value == nil {
			continue
		}
		if strings.Contains(entry.Value.String(), token) {
			return true
		}
	}
	return false
}

// UsesRetentionPolicy returns true iff at least one resource carries a
// deletion-policy field equal to the given value, e.g. "Retain" to detect
// resources marked to survive deletion of their owning template. This is a
// governance signal useful for cost and cleanup auditing.
//
// Null and non-mapping resource entries are skipped; an absent resources
// section yields false.
func UsesRetentionPolicy(doc *ast.Document, policy string) bool {
	if doc.Resources == nil || !doc.Resources.IsMapping() {
		return false
	}
	for _, entry := range doc.Resources.Entries {
		if !entry.Value.IsMapping() {
			continue
		}
		if value, ok := entry.Value.Get(ast.KeyDeletionPolicy).StringValue(); ok && value == policy {
			return true
		}
	}
	return false
}

// Summary is an aggregate introspection record over a single document,
// used by reporting tooling and the CLI inspect command.
type Summary struct {
	SourceFile     string `json:"source_file,omitempty"`
	ResourceCount  int    `json:"resource_count"`
	ParameterCount int    `json:"parameter_count"`
	OutputCount    int    `json:"output_count"`
	UsesToken      bool   `json:"uses_naming_token"`
	RetainsOnDrop  bool   `json:"uses_retention_policy"`
}

// Summarize computes a Summary for the document. The naming token and
// retention policy value to probe for are caller-supplied; empty strings
// skip the respective probe.
func Summarize(doc *ast.Document, namingToken, retentionPolicy string) Summary {
	s := Summary{
		SourceFile:     doc.SourceFile,
		ResourceCount:  CountResources(doc),
		ParameterCount: CountParameters(doc),
		OutputCount:    CountOutputs(doc),
	}
	if namingToken != "" {
		s.UsesToken = UsesNamingToken(doc, namingToken)
	}
	if retentionPolicy != "" {
		s.RetainsOnDrop = UsesRetentionPolicy(doc, retentionPolicy)
	}
	return s
}
