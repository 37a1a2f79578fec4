// Package metrics provides Prometheus metrics for Mercator Atlas.
//
// Metrics cover lint runs (count by result, duration), reported issues
// (by severity and kind), and watch-mode reload activity. They are served
// over HTTP by the watch command only; one-shot commands never start a
// metrics endpoint.
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics
