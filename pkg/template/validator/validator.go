package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
)

// Validator orchestrates the four section validation passes.
// Each pass is a pure read over the document; running them never mutates
// the document or the validator, so a Validator may be reused and shared.
type Validator struct {
	acceptedVersions map[string]bool
}

// NewValidator creates a validator accepting the default format versions.
func NewValidator() *Validator {
	return NewValidatorWithFormatVersions(DefaultFormatVersions...)
}

// NewValidatorWithFormatVersions creates a validator accepting the given
// format-version values.
func NewValidatorWithFormatVersions(versions ...string) *Validator {
	accepted := make(map[string]bool, len(versions))
	for _, version := range versions {
		accepted[version] = true
	}
	return &Validator{acceptedVersions: accepted}
}

// Validate runs all four section passes and merges their results.
//
// The pass order is fixed (format version, resources, outputs, parameters)
// so error and warning ordering is deterministic across calls. No pass's
// failure prevents the others from running: a single call surfaces every
// structural problem in the template in one round-trip.
func (v *Validator) Validate(doc *ast.Document) *Result {
	result := NewResult()

	result.Merge(v.ValidateFormatVersion(doc))
	result.Merge(v.ValidateResources(doc))
	result.Merge(v.ValidateOutputs(doc))
	result.Merge(v.ValidateParameters(doc))

	return result
}
