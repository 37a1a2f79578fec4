package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/atlas/pkg/config"
)

// Collector owns the Prometheus registry and metric families for Atlas.
// It is created once per process (by the watch command) and shared by the
// lint loop.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	lintMetrics *LintMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	return &Collector{
		config:      cfg,
		registry:    registry,
		lintMetrics: NewLintMetrics(cfg, registry),
	}
}

// Lint returns the lint metric family.
func (c *Collector) Lint() *LintMetrics {
	return c.lintMetrics
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
