package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. A missing file is not an error: atlas works with pure defaults,
// so the zero configuration is loaded instead.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention ATLAS_SECTION_FIELD (e.g., ATLAS_LINT_STRICT) and always take
// precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format ATLAS_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Lint overrides
	if val := os.Getenv("ATLAS_LINT_FORMAT_VERSIONS"); val != "" {
		cfg.Lint.FormatVersions = splitList(val)
	}
	if val := os.Getenv("ATLAS_LINT_STRICT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Lint.Strict = b
		}
	}
	if val := os.Getenv("ATLAS_LINT_NAMING_TOKEN"); val != "" {
		cfg.Lint.NamingToken = val
	}
	if val := os.Getenv("ATLAS_LINT_RETENTION_POLICY"); val != "" {
		cfg.Lint.RetentionPolicy = val
	}

	// Watch overrides
	if val := os.Getenv("ATLAS_WATCH_PATH"); val != "" {
		cfg.Watch.Path = val
	}
	if val := os.Getenv("ATLAS_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
	if val := os.Getenv("ATLAS_WATCH_SCHEDULE"); val != "" {
		cfg.Watch.Schedule = val
	}

	// History overrides
	if val := os.Getenv("ATLAS_HISTORY_BACKEND"); val != "" {
		cfg.History.Backend = val
	}
	if val := os.Getenv("ATLAS_HISTORY_SQLITE_PATH"); val != "" {
		cfg.History.SQLite.Path = val
	}

	// Telemetry overrides
	if val := os.Getenv("ATLAS_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("ATLAS_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("ATLAS_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("ATLAS_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
