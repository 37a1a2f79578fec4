// Mercator Atlas is an offline structural linter for declarative
// infrastructure templates.
//
// It validates the minimal shape an orchestrator requires of a template
// (format version, resources, parameters, outputs), reports every problem
// in one pass, and answers structural introspection queries used by
// governance tooling:
//   - Resource, parameter, and output counts
//   - Naming-token usage across resource bodies
//   - Retention-policy usage (resources that survive template deletion)
//
// Usage:
//
//	# Lint a single template
//	atlas lint --file templates/network.yaml
//
//	# Lint a directory, failing on warnings too
//	atlas lint --dir templates/ --strict
//
//	# Structural introspection report
//	atlas inspect --file templates/network.yaml --format json
//
//	# Continuous linting with metrics and history
//	atlas watch --path templates/
//
//	# Query past validation runs
//	atlas history --invalid --limit 20
package main

func main() {
	Execute()
}
