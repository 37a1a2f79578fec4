package config

import "time"

// Config is the root configuration structure for Mercator Atlas.
// It contains all configuration sections for linting, watch mode,
// validation history, and telemetry.
type Config struct {
	// Lint contains template validation settings: the accepted format
	// versions, strict mode, and the governance probes run by inspect.
	Lint LintConfig `yaml:"lint"`

	// Watch contains settings for continuous lint mode: the watched path,
	// debounce interval, and the periodic sweep schedule.
	Watch WatchConfig `yaml:"watch"`

	// History contains configuration for the validation history store.
	History HistoryConfig `yaml:"history"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LintConfig contains template validation settings.
type LintConfig struct {
	// FormatVersions is the set of format-version values accepted by the
	// target orchestrator.
	// Default: ["2010-09-09"]
	FormatVersions []string `yaml:"format_versions"`

	// Strict treats warnings as errors when choosing the exit code.
	// Default: false
	Strict bool `yaml:"strict"`

	// NamingToken is the substitution placeholder probed for by the
	// inspect command and watch-mode metrics. Resources are expected to
	// embed it for deployment-uniqueness of physical names.
	// Default: "${AWS::StackName}"
	NamingToken string `yaml:"naming_token"`

	// RetentionPolicy is the deletion-policy value probed for by the
	// inspect command (resources that survive template deletion).
	// Default: "Retain"
	RetentionPolicy string `yaml:"retention_policy"`

	// MaxFileSize is the maximum template file size in bytes.
	// Default: 10485760 (10MB)
	MaxFileSize int64 `yaml:"max_file_size"`
}

// WatchConfig contains settings for continuous lint mode.
type WatchConfig struct {
	// Path is the file or directory to watch for template changes.
	// Default: "."
	Path string `yaml:"path"`

	// DebounceInterval is the time to wait after a file event before
	// re-linting, to avoid lint storms while editors write.
	// Default: 250ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions is the list of file extensions to watch.
	// Default: [".yaml", ".yml"]
	Extensions []string `yaml:"extensions"`

	// Schedule is an optional cron expression for a periodic full re-lint
	// sweep, independent of file events (e.g. "0 */6 * * *").
	// Empty disables the scheduler.
	Schedule string `yaml:"schedule"`
}

// HistoryConfig contains configuration for the validation history store.
type HistoryConfig struct {
	// Backend selects the storage backend: "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLite contains settings for the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// MaxRecords caps the number of retained runs; 0 means unlimited.
	// Default: 0
	MaxRecords int64 `yaml:"max_records"`
}

// SQLiteConfig contains settings for the SQLite history backend.
// Connection counts are not configurable: SQLite supports a single writer,
// so the store pins the pool to one connection.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "data/history.db"
	Path string `yaml:"path"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics settings for watch mode.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled controls whether watch mode serves a metrics endpoint.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address for the metrics HTTP server.
	// Default: "127.0.0.1:9464"
	ListenAddress string `yaml:"listen_address"`

	// Path is the metrics endpoint path.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "mercator"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric name subsystem.
	// Default: "atlas"
	Subsystem string `yaml:"subsystem"`
}
