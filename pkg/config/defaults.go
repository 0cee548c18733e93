package config

import "os"

// Default values for configuration.
const (
	DefaultFormat   = "xlsx"
	DefaultSheet    = "Selection List"
	DefaultLogLevel = "info"
)

// Environment variable names.
const (
	EnvOutputFormat = "NEETX_OUTPUT_FORMAT"
	EnvOutputPath   = "NEETX_OUTPUT_PATH"
	EnvLogLevel     = "NEETX_LOG_LEVEL"
	EnvLogFile      = "NEETX_LOG_FILE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultFormat,
			Sheet:  DefaultSheet,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
}
