package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mercator-hq/atlas/pkg/config"
)

// FileWatcher watches template files for changes and triggers re-lints.
// It debounces bursts of events (editors often write a file several times
// in quick succession) and batches the changed paths per flush.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *config.WatchConfig
	debounce *Debouncer

	// State
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// pending accumulates changed paths between debounce flushes.
	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// NewFileWatcher creates a new file watcher for the configured path.
func NewFileWatcher(cfg *config.WatchConfig, logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		logger:   logger.With("component", "watcher"),
		config:   cfg,
		debounce: NewDebouncer(cfg.DebounceInterval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		pending:  make(map[string]struct{}),
	}

	return fw, nil
}

// Watch starts watching for file changes and invokes onChange with the
// batch of changed template paths after each debounce interval.
// This is a blocking operation that runs until the context is cancelled
// or Stop is called.
func (fw *FileWatcher) Watch(ctx context.Context, onChange func(paths []string)) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	fw.running = true
	fw.mu.Unlock()

	// Cleanup lives here, not in Stop: Watch must release the fsnotify
	// watcher and the debounce timer on every exit path, including
	// context cancellation where Stop is never called.
	defer func() {
		fw.debounce.Stop()
		if err := fw.watcher.Close(); err != nil {
			fw.logger.Error("failed to close watcher", "error", err)
		}
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		close(fw.doneCh)
	}()

	if err := fw.addPath(fw.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	fw.logger.Info("file watcher started",
		"path", fw.config.Path,
		"debounce_ms", fw.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			fw.logger.Info("file watcher stopped (context cancelled)")
			return nil

		case <-fw.stopCh:
			fw.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !fw.shouldProcessEvent(event) {
				continue
			}

			fw.logger.Debug("file event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			fw.pendingMu.Lock()
			fw.pending[event.Name] = struct{}{}
			fw.pendingMu.Unlock()

			fw.debounce.Trigger(func() {
				paths := fw.takePending()
				if len(paths) == 0 {
					return
				}
				fw.logger.Info("triggering re-lint", "templates", len(paths))
				onChange(paths)
			})

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			fw.logger.Error("file watcher error", "error", err)
			// Keep watching despite errors
		}
	}
}

// Stop signals Watch to return and waits for its cleanup to finish.
// Safe to call after Watch has already exited.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.mu.Unlock()

	close(fw.stopCh)
	<-fw.doneCh

	return nil
}

// takePending drains the pending path set in sorted order.
func (fw *FileWatcher) takePending() []string {
	fw.pendingMu.Lock()
	defer fw.pendingMu.Unlock()

	paths := make([]string, 0, len(fw.pending))
	for path := range fw.pending {
		paths = append(paths, path)
	}
	fw.pending = make(map[string]struct{})

	sort.Strings(paths)
	return paths
}

// addPath adds a file or directory to the watcher.
func (fw *FileWatcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fw.addDirectory(path)
	}

	return fw.watcher.Add(path)
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (fw *FileWatcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories
		if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if err := fw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			fw.logger.Debug("watching directory", "path", path)
		}

		return nil
	})
}

// shouldProcessEvent determines if an event should trigger a re-lint.
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if !fw.hasValidExtension(ext) {
		return false
	}

	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	return true
}

// hasValidExtension checks if a file extension should be watched.
func (fw *FileWatcher) hasValidExtension(ext string) bool {
	for _, validExt := range fw.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

// Debouncer coalesces bursts of events into a single callback invocation.
// Each Trigger resets the timer; the most recent callback wins.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopCh   chan struct{}
	stopped  bool
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger triggers the debouncer with a new event.
// The callback is called after the debounce interval if no new events occur.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
		}

		d.mu.Lock()
		cb := d.callback
		d.mu.Unlock()

		if cb != nil {
			cb()
		}
	})
}

// Stop stops the debouncer and discards any pending callback.
// Idempotent: later calls are no-ops.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true

	close(d.stopCh)
	if d.timer != nil {
		d.timer.Stop()
	}
	d.callback = nil
}
