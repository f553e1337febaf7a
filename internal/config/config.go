// Package config provides centralized configuration for the extractor.
// It loads settings from environment variables with sensible defaults and
// validates them on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Logging LoggingConfig
}

// InputConfig holds limits applied while reading the reference file.
type InputConfig struct {
	// MaxLineBytes is the longest record accepted; longer records are reported and skipped (default: 64KiB)
	MaxLineBytes int `env:"CUSIPREF_MAX_LINE_BYTES" envAlt:"MAX_LINE_BYTES" default:"65536"`

	// MaxDecompressedBytes caps the decompressed payload held in memory (default: 1GiB)
	MaxDecompressedBytes int64 `env:"CUSIPREF_MAX_DECOMPRESSED_BYTES" default:"1073741824"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
