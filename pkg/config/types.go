// Package config provides configuration loading and validation for neetx.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls where and how extracted records are persisted.
type OutputConfig struct {
	// Format selects the writer: xlsx, csv, or json.
	Format string `yaml:"format"`

	// Path is the output file. Empty means a timestamped name in the
	// working directory.
	Path string `yaml:"path,omitempty"`

	// Sheet names the worksheet for xlsx output.
	Sheet string `yaml:"sheet,omitempty"`
}

// LogConfig controls the diagnostic trace destination.
type LogConfig struct {
	// Level is the minimum trace level: debug, info, warn, or error.
	Level string `yaml:"level"`

	// File receives a copy of the trace in addition to stderr.
	File string `yaml:"file,omitempty"`
}
