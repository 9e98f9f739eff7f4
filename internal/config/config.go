package config

import (
	"fmt"
	"strings"

	"github.com/xll-gen/bintools/internal/compress"
)

// Config holds the command-line options shared by the tools.
// It is filled from flags; there is no configuration file.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig
	// Header contains settings used only by the header generator.
	Header HeaderConfig
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string
	// Path is the log file path. Empty means stderr.
	Path string
}

// HeaderConfig controls how the header generator embeds its input.
type HeaderConfig struct {
	// Compression is the algorithm name: none, zstd or lz4.
	Compression string
	// SizeMacro emits #define lines with the payload sizes.
	SizeMacro bool
}

// DefaultLogLevel keeps successful runs silent.
const DefaultLogLevel = "warn"

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for unsupported values.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		lvl := strings.ToLower(config.Logging.Level)
		ok := false
		for _, v := range validLogLevels {
			if lvl == v {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("invalid logging level: %s (allowed: %s)", config.Logging.Level, strings.Join(validLogLevels, ", "))
		}
	}

	if _, err := compress.Parse(config.Header.Compression); err != nil {
		return err
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = DefaultLogLevel
	}
	if config.Header.Compression == "" {
		config.Header.Compression = string(compress.None)
	}
}

// Compression returns the parsed header compression algorithm.
// Call Validate first; an invalid name yields compress.None.
func (c *Config) Compression() compress.Algorithm {
	alg, err := compress.Parse(c.Header.Compression)
	if err != nil {
		return compress.None
	}
	return alg
}
