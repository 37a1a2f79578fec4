package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// ValidateParameters checks the template's parameters section.
//
// Parameters follow the same section policy as outputs (absent or empty
// only warns) but the same entry invariant as resources: each entry must be
// a mapping with a non-empty string Type field.
func (v *Validator) ValidateParameters(doc *ast.Document) *Result {
	result := NewResult()

	if doc.Parameters == nil {
		result.addWarning(tplErrors.KindNoParameters, "", doc.Location)
		return result
	}

	if doc.Parameters.IsNull() {
		result.addWarning(tplErrors.KindEmptyParameters, "", doc.Parameters.Location)
		return result
	}

	if !doc.Parameters.IsMapping() {
		result.addWarning(tplErrors.KindMalformedParameters, "", doc.Parameters.Location)
		return result
	}

	if doc.Parameters.Len() == 0 {
		result.addWarning(tplErrors.KindEmptyParameters, "", doc.Parameters.Location)
		return result
	}

	for _, entry := range doc.Parameters.Entries {
		if !validTypedEntry(entry.Value) {
			result.addError(tplErrors.KindInvalidParameter, entry.Key, entryLocation(entry, doc.Parameters))
		}
	}

	return result
}
