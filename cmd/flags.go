package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xll-gen/bintools/internal/config"
	"github.com/xll-gen/bintools/pkg/log"
)

// addLoggingFlags registers the logging flags shared by every tool.
func addLoggingFlags(fs *pflag.FlagSet, cfg *config.LoggingConfig) {
	fs.StringVar(&cfg.Level, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Path, "log-file", "", "Append logs to this file instead of stderr")
}

// addHeaderFlags registers the header generator flags.
func addHeaderFlags(fs *pflag.FlagSet, cfg *config.HeaderConfig) {
	fs.StringVar(&cfg.Compression, "compress", "none", "Compress the payload before embedding (none, zstd, lz4)")
	fs.BoolVar(&cfg.SizeMacro, "size-macro", false, "Emit #define <NAME>_SIZE after the array")
}

// prepare validates cfg and installs the logger. Invalid flag values are usage errors.
func prepare(c *cobra.Command, args string, cfg *config.Config) error {
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return &usageError{synopsis: synopsis(c, args), err: err}
	}
	return log.Init(cfg.Logging.Path, cfg.Logging.Level)
}
