// Package errors provides problem types for template loading and validation.
//
// Problems are carried as data (kind + offending name + offending value)
// and rendered to human-readable strings only at the reporting boundary,
// so machine-readable consumers (JSON output, IDE diagnostics) never need
// to parse message strings.
//
// # Severities
//
// SeverityError: structural violations that make a template invalid
//
// SeverityWarning: advisory signals (e.g. empty optional sections) that
// never affect validity
//
// # Basic Usage
//
// Accumulate problems instead of failing on the first one:
//
//	list := errors.NewList()
//	list.AddError(errors.KindMissingResources, "", doc.Location)
//	list.AddWarning(errors.KindNoOutputs, "", doc.Location)
//
//	if list.HasErrors() {
//	    return list.ToError()
//	}
//
// Render a problem at the boundary:
//
//	for _, e := range list.Errors() {
//	    fmt.Println(e.Message())
//	}
package errors
