// Package logging configures structured logging for Mercator Atlas.
//
// Logging is built on log/slog with JSON and text handlers selected by
// configuration. The CLI installs the configured logger as the process
// default at startup; long-running components (watcher, scheduler, history
// store) derive component-scoped children from it:
//
//	logger := slog.Default().With("component", "watcher")
package logging
