// Package template provides loading, structural validation, and
// introspection for declarative infrastructure templates.
//
// Templates are static YAML documents consumed by an external orchestrator.
// This package treats resources, parameters, and outputs as opaque
// structural records with a small number of shape constraints; it never
// validates domain semantics, evaluates intrinsic functions, or talks to
// any cloud API.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: tagged-variant tree and Document definitions
// - parser: YAML loading into documents (the only I/O in the core)
// - validator: per-section and aggregate structural validation
// - errors: problems as data, rendered to strings at the boundary
// - inspect: read-only counts and governance-signal queries
//
// # Basic Usage
//
// Parse and validate a template:
//
//	doc, result, err := template.LoadAndValidate("templates/network.yaml")
//	if err != nil {
//	    log.Fatal(err) // unreadable or unparseable input
//	}
//	if !result.Valid() {
//	    for _, msg := range result.ErrorMessages() {
//	        fmt.Println(msg)
//	    }
//	}
package template
