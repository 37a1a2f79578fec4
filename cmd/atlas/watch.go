package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/atlas/pkg/cli"
	"mercator-hq/atlas/pkg/config"
	"mercator-hq/atlas/pkg/history"
	"mercator-hq/atlas/pkg/telemetry/logging"
	"mercator-hq/atlas/pkg/telemetry/metrics"
	"mercator-hq/atlas/pkg/template/inspect"
	"mercator-hq/atlas/pkg/template/parser"
	"mercator-hq/atlas/pkg/template/validator"
	"mercator-hq/atlas/pkg/watcher"
)

var watchFlags struct {
	path     string
	schedule string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously re-lint templates on change",
	Long: `Watch a file or directory tree for template changes and re-lint each
changed file as it is written. Event bursts are debounced so editors
that write a file several times trigger a single re-lint.

An optional cron schedule (watch.schedule in the configuration) adds
periodic full sweeps for changes that never raise a file event. Every
run is recorded in the validation history store, and a Prometheus
metrics endpoint can be enabled for dashboarding lint health over time.

Runs until interrupted (SIGINT/SIGTERM).`,
	Example: `  # Watch the configured path
  atlas watch

  # Watch a specific directory
  atlas watch --path templates/`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFlags.path, "path", "p", "", "file or directory to watch (default from config)")
	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron expression for periodic full sweeps (default from config)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewCommandError("watch", err)
	}
	cfg := config.GetConfig()

	if watchFlags.path != "" {
		cfg.Watch.Path = watchFlags.path
	}
	if watchFlags.schedule != "" {
		cfg.Watch.Schedule = watchFlags.schedule
	}

	logger := logging.Setup(cfg.Telemetry.Logging)
	ctx := cli.SetupSignalHandler()

	store, err := openHistoryStore(cfg)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer store.Close()

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	var metricsServer *http.Server
	if cfg.Telemetry.Metrics.Enabled {
		metricsServer = startMetricsServer(cfg, collector, logger)
		defer shutdownMetricsServer(metricsServer, logger)
	}

	loop := &lintLoop{
		config:    cfg,
		parser:    parser.NewParser().WithMaxFileSize(cfg.Lint.MaxFileSize),
		validator: validator.NewValidatorWithFormatVersions(cfg.Lint.FormatVersions...),
		store:     store,
		metrics:   collector.Lint(),
		logger:    logger,
	}

	// Initial full sweep so history and metrics start populated
	loop.sweep(ctx)

	scheduler := watcher.NewScheduler(cfg.Watch.Schedule)
	if err := scheduler.Start(ctx, func() { loop.sweep(ctx) }); err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer scheduler.Stop()

	fw, err := watcher.NewFileWatcher(&cfg.Watch, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	defer fw.Stop()

	if err := fw.Watch(ctx, func(paths []string) {
		loop.metrics.RecordReload()
		loop.lint(ctx, paths)
	}); err != nil {
		return cli.NewCommandError("watch", err)
	}

	return nil
}

// lintLoop re-lints template files and records the outcome in metrics and
// the history store. It is driven by file events, sweeps, and the initial
// startup pass.
type lintLoop struct {
	config    *config.Config
	parser    *parser.Parser
	validator *validator.Validator
	store     history.Store
	metrics   *metrics.LintMetrics
	logger    *slog.Logger
}

// lint validates the given template files and records each run.
func (l *lintLoop) lint(ctx context.Context, paths []string) {
	for _, path := range paths {
		start := time.Now()

		doc, err := l.parser.Parse(path)
		if err != nil {
			l.metrics.RecordRun(metrics.ResultFatal, time.Since(start))
			l.record(ctx, history.NewFatalRecord(path, err))
			l.logger.Error("template unreadable", "path", path, "error", err)
			continue
		}

		result := l.validator.Validate(doc)
		duration := time.Since(start)

		outcome := metrics.ResultValid
		if !result.Valid() {
			outcome = metrics.ResultInvalid
		}
		l.metrics.RecordRun(outcome, duration)
		for _, issue := range result.Issues() {
			l.metrics.RecordIssue(string(issue.Severity), string(issue.Kind))
		}

		l.record(ctx, history.NewRecord(path, result, inspect.CountResources(doc)))

		l.logger.Info("template linted",
			"path", path,
			"valid", result.Valid(),
			"errors", len(result.Errors()),
			"warnings", len(result.Warnings()),
		)
	}
}

// sweep re-lints every template under the watched path.
func (l *lintLoop) sweep(ctx context.Context) {
	paths, err := collectWatchedTemplates(&l.config.Watch)
	if err != nil {
		l.logger.Warn("sweep failed to scan templates", "path", l.config.Watch.Path, "error", err)
		return
	}
	if len(paths) == 0 {
		// A path with no templates yet is normal in watch mode
		l.logger.Info("sweep found no templates", "path", l.config.Watch.Path)
		return
	}
	l.lint(ctx, paths)
}

// collectWatchedTemplates gathers every template under the watched path,
// recursing the same way the file watcher does: watched extensions only,
// hidden files and directories skipped. Sweeps and file events must cover
// the same set of templates or history and metrics drift apart.
func collectWatchedTemplates(cfg *config.WatchConfig) ([]string, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{cfg.Path}, nil
	}

	var paths []string
	err = filepath.WalkDir(cfg.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != cfg.Path {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, validExt := range cfg.Extensions {
			if ext == strings.ToLower(validExt) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// record saves a run to the history store and prunes old records when a
// retention cap is configured. Storage failures are logged, never fatal:
// the watch loop outlives its history.
func (l *lintLoop) record(ctx context.Context, rec *history.Record) {
	if err := l.store.Save(ctx, rec); err != nil {
		l.logger.Error("failed to save validation run", "path", rec.Path, "error", err)
		return
	}

	if max := l.config.History.MaxRecords; max > 0 {
		if _, err := l.store.Prune(ctx, max); err != nil {
			l.logger.Error("failed to prune validation history", "error", err)
		}
	}
}

// openHistoryStore creates the history store selected by the configuration.
func openHistoryStore(cfg *config.Config) (history.Store, error) {
	switch cfg.History.Backend {
	case "memory":
		return history.NewMemoryStore(), nil
	case "sqlite", "":
		return history.NewSQLiteStore(&cfg.History.SQLite)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}
}

func startMetricsServer(cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())

	server := &http.Server{
		Addr:              cfg.Telemetry.Metrics.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server started",
			"address", cfg.Telemetry.Metrics.ListenAddress,
			"path", cfg.Telemetry.Metrics.Path,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return server
}

func shutdownMetricsServer(server *http.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("metrics server shutdown failed", "error", err)
	}
}
