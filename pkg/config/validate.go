package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "watch.schedule").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLint(&cfg.Lint)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateLint(cfg *LintConfig) []FieldError {
	var errs []FieldError

	if len(cfg.FormatVersions) == 0 {
		errs = append(errs, FieldError{
			Field:   "lint.format_versions",
			Message: "at least one accepted format version is required",
		})
	}
	for _, version := range cfg.FormatVersions {
		if strings.TrimSpace(version) == "" {
			errs = append(errs, FieldError{
				Field:   "lint.format_versions",
				Message: "format versions must be non-empty",
			})
			break
		}
	}
	if cfg.MaxFileSize <= 0 {
		errs = append(errs, FieldError{
			Field:   "lint.max_file_size",
			Message: "must be positive",
		})
	}

	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Path == "" {
		errs = append(errs, FieldError{
			Field:   "watch.path",
			Message: "watch path is required",
		})
	}
	if cfg.DebounceInterval <= 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce_interval",
			Message: "must be positive",
		})
	}
	if cfg.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "watch.schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "sqlite", "memory":
	default:
		errs = append(errs, FieldError{
			Field:   "history.backend",
			Message: fmt.Sprintf("unsupported backend %q (expected sqlite or memory)", cfg.Backend),
		})
	}
	if cfg.Backend == "sqlite" && cfg.SQLite.Path == "" {
		errs = append(errs, FieldError{
			Field:   "history.sqlite.path",
			Message: "database path is required for the sqlite backend",
		})
	}
	if cfg.MaxRecords < 0 {
		errs = append(errs, FieldError{
			Field:   "history.max_records",
			Message: "must not be negative",
		})
	}

	return errs
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unsupported level %q", cfg.Logging.Level),
		})
	}
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unsupported format %q (expected json or text)", cfg.Logging.Format),
		})
	}
	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.listen_address",
			Message: "listen address is required when metrics are enabled",
		})
	}
	if cfg.Metrics.Path != "" && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "must start with '/'",
		})
	}

	return errs
}
