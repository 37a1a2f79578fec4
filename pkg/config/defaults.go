package config

import "time"

// Default values for configuration fields.
const (
	// Lint defaults
	DefaultLintStrict          = false
	DefaultLintNamingToken     = "${AWS::StackName}"
	DefaultLintRetentionPolicy = "Retain"
	DefaultLintMaxFileSize     = int64(10 * 1024 * 1024) // 10MB

	// Watch defaults
	DefaultWatchPath     = "."
	DefaultWatchDebounce = 250 * time.Millisecond

	// History defaults
	DefaultHistoryBackend           = "sqlite"
	DefaultHistorySQLitePath        = "data/history.db"
	DefaultHistorySQLiteBusyTimeout = 5 * time.Second

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "text"
	DefaultMetricsEnabled       = false
	DefaultMetricsListenAddress = "127.0.0.1:9464"
	DefaultMetricsPath          = "/metrics"
	DefaultMetricsNamespace     = "mercator"
	DefaultMetricsSubsystem     = "atlas"
)

// DefaultLintFormatVersions is the default accepted format-version set.
var DefaultLintFormatVersions = []string{"2010-09-09"}

// DefaultWatchExtensions is the default set of watched file extensions.
var DefaultWatchExtensions = []string{".yaml", ".yml"}

// ApplyDefaults fills in default values for any unset configuration fields.
// It modifies the configuration in place.
func ApplyDefaults(cfg *Config) {
	// Lint defaults
	if len(cfg.Lint.FormatVersions) == 0 {
		cfg.Lint.FormatVersions = append([]string(nil), DefaultLintFormatVersions...)
	}
	if cfg.Lint.NamingToken == "" {
		cfg.Lint.NamingToken = DefaultLintNamingToken
	}
	if cfg.Lint.RetentionPolicy == "" {
		cfg.Lint.RetentionPolicy = DefaultLintRetentionPolicy
	}
	if cfg.Lint.MaxFileSize <= 0 {
		cfg.Lint.MaxFileSize = DefaultLintMaxFileSize
	}

	// Watch defaults
	if cfg.Watch.Path == "" {
		cfg.Watch.Path = DefaultWatchPath
	}
	if cfg.Watch.DebounceInterval <= 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}

	// History defaults
	if cfg.History.Backend == "" {
		cfg.History.Backend = DefaultHistoryBackend
	}
	if cfg.History.SQLite.Path == "" {
		cfg.History.SQLite.Path = DefaultHistorySQLitePath
	}
	if cfg.History.SQLite.BusyTimeout <= 0 {
		cfg.History.SQLite.BusyTimeout = DefaultHistorySQLiteBusyTimeout
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}
