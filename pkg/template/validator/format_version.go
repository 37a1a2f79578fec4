package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// DefaultFormatVersions is the set of format-version values the target
// orchestrator accepts.
var DefaultFormatVersions = []string{"2010-09-09"}

// ValidateFormatVersion checks the template's format-version field.
// It errors if the field is absent, or present but not one of the accepted
// values. This check never produces warnings.
func (v *Validator) ValidateFormatVersion(doc *ast.Document) *Result {
	result := NewResult()

	if doc.FormatVersion == nil {
		result.add(&tplErrors.Error{
			Kind:       tplErrors.KindMissingFormatVersion,
			Severity:   tplErrors.SeverityError,
			Location:   doc.Location,
			Suggestion: suggestFormatVersion(v.acceptedVersions),
		})
		return result
	}

	value, ok := doc.FormatVersion.StringValue()
	if !ok || !v.acceptedVersions[value] {
		result.add(&tplErrors.Error{
			Kind:       tplErrors.KindInvalidFormatVersion,
			Severity:   tplErrors.SeverityError,
			Value:      doc.FormatVersion.String(),
			Location:   doc.FormatVersion.Location,
			Suggestion: suggestFormatVersion(v.acceptedVersions),
		})
	}

	return result
}

func suggestFormatVersion(accepted map[string]bool) string {
	for version := range accepted {
		if len(accepted) == 1 {
			return "Set " + ast.KeyFormatVersion + " to \"" + version + "\""
		}
	}
	return "Set " + ast.KeyFormatVersion + " to an accepted value"
}
