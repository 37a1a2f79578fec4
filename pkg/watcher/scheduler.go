package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a periodic full re-lint sweep on a cron schedule,
// independent of file events. Sweeps catch changes that never raise an
// fsnotify event (bind mounts, network filesystems) and keep watch-mode
// metrics fresh even when nothing is being edited.
type Scheduler struct {
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a scheduler for the given cron expression.
//
// Common expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "0 */6 * * *"  - Every 6 hours
//   - "@every 5m"    - Every five minutes
//
// An empty schedule produces a scheduler whose Start is a no-op.
func NewScheduler(schedule string) *Scheduler {
	return &Scheduler{
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "watcher.scheduler"),
	}
}

// Start begins the scheduled sweeps, invoking sweep on each tick.
// It returns immediately; the cron runner fires in the background until
// the context is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context, sweep func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("sweep schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.logger.Info("starting scheduled re-lint sweep")
		sweep()
	}); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("sweep scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the scheduler. Running sweeps are allowed to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info("sweep scheduler stopped")
}
