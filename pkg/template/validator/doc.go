// Package validator checks the structural validity of parsed templates.
//
// Validation is structural only: required sections present, entries of the
// right container kind, required fields non-empty. Domain semantics (what a
// resource type means, whether a property value is sane) are never checked.
//
// # Section policies
//
// Format version: absence or an unaccepted value is an error.
//
// Resources: the only mandatory section. Absent or empty is an error; every
// entry must be a mapping with a non-empty string Type field.
//
// Outputs: optional. Absent or empty only warns; entries must be mappings
// with a Value field present.
//
// Parameters: optional like outputs, but entries carry the Type invariant
// of resources.
//
// # Basic Usage
//
//	v := validator.NewValidator()
//	result := v.Validate(doc)
//	if !result.Valid() {
//	    for _, msg := range result.ErrorMessages() {
//	        fmt.Println(msg)
//	    }
//	}
//
// The four section passes are independently callable (ValidateResources,
// ValidateOutputs, ...) and Validate runs all of them without
// short-circuiting, so one call reports every problem in the template.
package validator
