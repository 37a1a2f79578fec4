// Package config provides configuration loading for Mercator Atlas.
//
// Configuration is loaded from a YAML file, filled in with defaults, and
// optionally overridden by ATLAS_* environment variables. A missing config
// file is not an error: every setting has a working default, so atlas runs
// with no configuration at all.
//
// # Loading sequence
//
// 1. Load YAML from file (if present)
// 2. Apply default values
// 3. Apply environment variable overrides (ATLAS_SECTION_FIELD)
// 4. Validate the final configuration
//
// # Basic Usage
//
//	cfg, err := config.LoadConfigWithEnvOverrides("atlas.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or through the process-wide singleton used by the CLI:
//
//	if err := config.Initialize(cfgFile); err != nil {
//	    return err
//	}
//	cfg := config.GetConfig()
package config
