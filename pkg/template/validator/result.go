package validator

import (
	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// Result is the outcome of a validation pass.
// It is constructed fresh per call, never persisted, and is the sole channel
// by which structural problems are surfaced. Problems keep their order of
// discovery; errors never short-circuit later checks.
type Result struct {
	issues *tplErrors.List
}

// NewResult creates a new empty result.
func NewResult() *Result {
	return &Result{
		issues: tplErrors.NewList(),
	}
}

// Valid returns true iff the result contains no error-severity problems.
// Warnings never affect validity.
func (r *Result) Valid() bool {
	return !r.issues.HasErrors()
}

// Errors returns the error-severity problems in discovery order.
func (r *Result) Errors() []*tplErrors.Error {
	return r.issues.Errors()
}

// Warnings returns the warning-severity problems in discovery order.
func (r *Result) Warnings() []*tplErrors.Error {
	return r.issues.Warnings()
}

// Issues returns every problem, errors and warnings interleaved in
// discovery order.
func (r *Result) Issues() []*tplErrors.Error {
	return r.issues.Items
}

// ErrorMessages renders the error messages in order.
// This is the reporting-boundary view; programmatic consumers should use
// Errors() and inspect kinds instead of parsing strings.
func (r *Result) ErrorMessages() []string {
	return renderMessages(r.issues.Errors())
}

// WarningMessages renders the warning messages in order.
func (r *Result) WarningMessages() []string {
	return renderMessages(r.issues.Warnings())
}

// Merge appends every problem from other, preserving order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.issues.Append(other.issues)
}

// HasKind returns true if the result contains a problem of the given kind.
func (r *Result) HasKind(kind tplErrors.Kind) bool {
	return r.issues.HasKind(kind)
}

func (r *Result) addError(kind tplErrors.Kind, subject string, location ast.Location) {
	r.issues.AddError(kind, subject, location)
}

func (r *Result) addWarning(kind tplErrors.Kind, subject string, location ast.Location) {
	r.issues.AddWarning(kind, subject, location)
}

func (r *Result) add(err *tplErrors.Error) {
	r.issues.Add(err)
}

func renderMessages(errs []*tplErrors.Error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Message())
	}
	return messages
}
