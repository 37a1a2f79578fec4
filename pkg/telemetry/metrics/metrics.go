package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/atlas/pkg/config"
)

// LintMetrics tracks metrics for template validation runs.
//
// Metrics:
//   - mercator_atlas_lint_runs_total: Total lint runs by result
//   - mercator_atlas_lint_issues_total: Total reported issues by severity and kind
//   - mercator_atlas_lint_duration_seconds: Lint run duration
//   - mercator_atlas_watch_reloads_total: Re-lints triggered by file events
type LintMetrics struct {
	runsTotal    *prometheus.CounterVec
	issuesTotal  *prometheus.CounterVec
	lintDuration prometheus.Histogram
	reloadsTotal prometheus.Counter
}

// Run results recorded by RecordRun.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultFatal   = "fatal" // unreadable or unparseable input
)

// NewLintMetrics creates and registers lint metrics with the provided registry.
func NewLintMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *LintMetrics {
	m := &LintMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "lint_runs_total",
				Help:      "Total number of template lint runs",
			},
			[]string{"result"},
		),

		issuesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "lint_issues_total",
				Help:      "Total number of reported validation issues",
			},
			[]string{"severity", "kind"},
		),

		lintDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "lint_duration_seconds",
				Help:      "Duration of a single template lint run in seconds",
				// Lint runs are bounded in-memory traversals (< 100ms)
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~400ms
			},
		),

		reloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "watch_reloads_total",
				Help:      "Total number of re-lints triggered by file events",
			},
		),
	}

	registry.MustRegister(m.runsTotal, m.issuesTotal, m.lintDuration, m.reloadsTotal)
	return m
}

// RecordRun records the outcome and duration of one lint run.
func (m *LintMetrics) RecordRun(result string, duration time.Duration) {
	m.runsTotal.WithLabelValues(result).Inc()
	m.lintDuration.Observe(duration.Seconds())
}

// RecordIssue records one reported validation issue.
func (m *LintMetrics) RecordIssue(severity, kind string) {
	m.issuesTotal.WithLabelValues(severity, kind).Inc()
}

// RecordReload records a re-lint triggered by a file event.
func (m *LintMetrics) RecordReload() {
	m.reloadsTotal.Inc()
}
