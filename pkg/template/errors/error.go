package errors

import (
	"fmt"
	"strings"

	"mercator-hq/atlas/pkg/template/ast"
)

// Severity classifies how a reported problem affects template validity.
// Errors make a template invalid; warnings are advisory only.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies the category of a reported problem. The kind plus the
// offending name/value is the canonical representation; the human-readable
// message is rendered from them only at the reporting boundary, so
// machine-readable consumers never need to parse strings.
type Kind string

const (
	// Loader-level kinds. These abort the whole operation.
	KindIO     Kind = "io"     // Unreadable source
	KindSyntax Kind = "syntax" // Unparseable content

	// Format-version section.
	KindMissingFormatVersion Kind = "missing_format_version"
	KindInvalidFormatVersion Kind = "invalid_format_version"

	// Resources section.
	KindMissingResources   Kind = "missing_resources"
	KindEmptyResources     Kind = "empty_resources"
	KindMalformedResources Kind = "malformed_resources"
	KindInvalidResource    Kind = "invalid_resource"

	// Outputs section.
	KindNoOutputs        Kind = "no_outputs"
	KindEmptyOutputs     Kind = "empty_outputs"
	KindMalformedOutputs Kind = "malformed_outputs"
	KindInvalidOutput    Kind = "invalid_output"

	// Parameters section.
	KindNoParameters        Kind = "no_parameters"
	KindEmptyParameters     Kind = "empty_parameters"
	KindMalformedParameters Kind = "malformed_parameters"
	KindInvalidParameter    Kind = "invalid_parameter"
)

// Error represents a single reported problem in a template.
// It carries the problem as data (kind, offending name, offending value)
// plus location and an optional suggestion.
type Error struct {
	Kind       Kind         // Category of problem
	Severity   Severity     // error or warning
	Subject    string       // Name of the offending entry, if any
	Value      string       // Offending value, if any
	Detail     string       // Free-form detail for io/syntax kinds
	Location   ast.Location // Source location, if known
	Suggestion string       // Suggested fix (optional)
}

// Message renders the canonical human-readable message for this problem.
func (e *Error) Message() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("Failed to read template: %s", e.Detail)
	case KindSyntax:
		return fmt.Sprintf("Failed to parse template: %s", e.Detail)
	case KindMissingFormatVersion:
		return "Missing format version"
	case KindInvalidFormatVersion:
		return fmt.Sprintf("Invalid format version: %s", e.Value)
	case KindMissingResources:
		return "Missing Resources section"
	case KindEmptyResources:
		return "Resources section is empty"
	case KindMalformedResources:
		return "Resources section must be a mapping"
	case KindInvalidResource:
		return fmt.Sprintf("Invalid resource structure: %s", e.Subject)
	case KindNoOutputs:
		return "No Outputs section defined"
	case KindEmptyOutputs:
		return "Outputs section is empty"
	case KindMalformedOutputs:
		return "Outputs section must be a mapping"
	case KindInvalidOutput:
		return fmt.Sprintf("Invalid output structure: %s", e.Subject)
	case KindNoParameters:
		return "No Parameters section defined"
	case KindEmptyParameters:
		return "Parameters section is empty"
	case KindMalformedParameters:
		return "Parameters section must be a mapping"
	case KindInvalidParameter:
		return fmt.Sprintf("Invalid parameter structure: %s", e.Subject)
	default:
		return e.Detail
	}
}

// Error implements the error interface.
// It returns a formatted message with severity, location, and suggestion.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Severity, e.Message()))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// List represents an ordered collection of reported problems.
// It allows accumulating every problem in a template instead of failing
// on the first one.
type List struct {
	Items []*Error
}

// NewList creates a new empty list.
func NewList() *List {
	return &List{
		Items: make([]*Error, 0),
	}
}

// Add appends a problem to the list.
func (l *List) Add(err *Error) {
	l.Items = append(l.Items, err)
}

// AddError creates and appends an error-severity problem.
func (l *List) AddError(kind Kind, subject string, location ast.Location) {
	l.Add(&Error{
		Kind:     kind,
		Severity: SeverityError,
		Subject:  subject,
		Location: location,
	})
}

// AddWarning creates and appends a warning-severity problem.
func (l *List) AddWarning(kind Kind, subject string, location ast.Location) {
	l.Add(&Error{
		Kind:     kind,
		Severity: SeverityWarning,
		Subject:  subject,
		Location: location,
	})
}

// Append appends every problem from other, preserving order.
func (l *List) Append(other *List) {
	if other == nil {
		return
	}
	l.Items = append(l.Items, other.Items...)
}

// Errors returns the problems with error severity, in order.
func (l *List) Errors() []*Error {
	return l.bySeverity(SeverityError)
}

// Warnings returns the problems with warning severity, in order.
func (l *List) Warnings() []*Error {
	return l.bySeverity(SeverityWarning)
}

func (l *List) bySeverity(sev Severity) []*Error {
	result := make([]*Error, 0)
	for _, err := range l.Items {
		if err.Severity == sev {
			result = append(result, err)
		}
	}
	return result
}

// HasErrors returns true if the list contains at least one error-severity problem.
func (l *List) HasErrors() bool {
	for _, err := range l.Items {
		if err.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ByKind returns all problems of the given kind.
func (l *List) ByKind(kind Kind) []*Error {
	var result []*Error
	for _, err := range l.Items {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one problem of the given kind.
func (l *List) HasKind(kind Kind) bool {
	for _, err := range l.Items {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns the number of problems in the list.
func (l *List) Count() int {
	return len(l.Items)
}

// Error implements the error interface.
// It returns all problems formatted as a single string.
func (l *List) Error() string {
	if len(l.Items) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problem(s):\n\n", l.Count()))

	for i, err := range l.Items {
		sb.WriteString(fmt.Sprintf("Problem %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ToError returns nil if the list contains no error-severity problems,
// otherwise returns the list itself.
func (l *List) ToError() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}
