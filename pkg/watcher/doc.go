// Package watcher provides continuous re-linting of template files.
//
// FileWatcher watches a file or directory tree via fsnotify, debounces
// event bursts, and hands batches of changed paths to a callback.
// Scheduler complements it with periodic cron-driven full sweeps for
// changes that never raise a file event.
//
// Both are used only by the atlas watch command; one-shot commands never
// construct them.
package watcher
