package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// ValidateOutputs checks the template's outputs section.
//
// Outputs are optional by design, so an absent or empty section only warns.
// Individual malformed entries are still errors: each entry must be a
// mapping with a Value field present (of any type).
func (v *Validator) ValidateOutputs(doc *ast.Document) *Result {
	result := NewResult()

	if doc.Outputs == nil {
		result.addWarning(tplErrors.KindNoOutputs, "", doc.Location)
		return result
	}

	if doc.Outputs.IsNull() {
		result.addWarning(tplErrors.KindEmptyOutputs, "", doc.Outputs.Location)
		return result
	}

	// Section-level problems stay warnings here; a non-mapping section has no
	// entries to raise entry errors for.
	if !doc.Outputs.IsMapping() {
		result.addWarning(tplErrors.KindMalformedOutputs, "", doc.Outputs.Location)
		return result
	}

	if doc.Outputs.Len() == 0 {
		result.addWarning(tplErrors.KindEmptyOutputs, "", doc.Outputs.Location)
		return result
	}

	for _, entry := range doc.Outputs.Entries {
		if !entry.Value.IsMapping() || !entry.Value.Has(ast.KeyValue) {
			result.addError(tplErrors.KindInvalidOutput, entry.Key, entryLocation(entry, doc.Outputs))
		}
	}

	return result
}
