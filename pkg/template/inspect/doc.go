// Package inspect provides read-only introspection queries over parsed
// templates.
//
// The queries are independent of validation: they operate on any parsed
// document, valid or not, and never panic on malformed entries. Absent
// sections yield zero counts and false detections; null and non-mapping
// entries are skipped.
//
// Typical consumers are monitoring and reporting tooling that want counts
// or governance signals (naming-token usage, retention-policy usage)
// without running a full validation pass.
package inspect
