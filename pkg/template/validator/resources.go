package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// ValidateResources checks the template's resources section.
//
// Resources is the only section whose absence is an error rather than a
// warning: a template with zero resources cannot describe any
// infrastructure. A present-but-empty section is also an error. Every entry
// is checked; errors accumulate across entries rather than short-circuiting
// on the first bad one.
func (v *Validator) ValidateResources(doc *ast.Document) *Result {
	result := NewResult()

	if doc.Resources == nil {
		result.add(&tplErrors.Error{
			Kind:       tplErrors.KindMissingResources,
			Severity:   tplErrors.SeverityError,
			Location:   doc.Location,
			Suggestion: "Add a Resources section with at least one resource",
		})
		return result
	}

	if doc.Resources.IsNull() {
		result.addError(tplErrors.KindEmptyResources, "", doc.Resources.Location)
		return result
	}

	// A sequence or scalar section has no name-to-definition entries at all,
	// so entry checks below would be vacuous and the template would pass with
	// zero usable resources.
	if !doc.Resources.IsMapping() {
		result.add(&tplErrors.Error{
			Kind:       tplErrors.KindMalformedResources,
			Severity:   tplErrors.SeverityError,
			Value:      string(doc.Resources.Kind),
			Location:   doc.Resources.Location,
			Suggestion: "Resources must map logical names to resource definitions",
		})
		return result
	}

	if doc.Resources.Len() == 0 {
		result.addError(tplErrors.KindEmptyResources, "", doc.Resources.Location)
		return result
	}

	for _, entry := range doc.Resources.Entries {
		if !validTypedEntry(entry.Value) {
			result.addError(tplErrors.KindInvalidResource, entry.Key, entryLocation(entry, doc.Resources))
		}
	}

	return result
}

// validTypedEntry reports whether an entry is a mapping carrying a
// non-empty string Type field. Null entries, bare scalars, and mappings
// missing the field are all equally invalid; callers never need to
// distinguish "wrong kind" from "missing field".
func validTypedEntry(node *ast.Node) bool {
	if !node.IsMapping() {
		return false
	}
	typeValue, ok := node.Get(ast.KeyType).StringValue()
	return ok && typeValue != ""
}

// entryLocation picks the most precise location available for an entry.
func entryLocation(entry ast.Entry, section *ast.Node) ast.Location {
	if entry.Value != nil && entry.Value.Location.IsValid() {
		return entry.Value.Location
	}
	return section.Location
}
