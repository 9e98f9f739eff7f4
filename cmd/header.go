package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bintools/internal/config"
	"github.com/xll-gen/bintools/internal/generator"
)

const headerArgs = "<name> <input.bin> <output.h>"

// newHeaderCommand builds the header generator command under the given name.
func newHeaderCommand(use string) *cobra.Command {
	var cfg config.Config

	headerCmd := &cobra.Command{
		Use:   use + " " + headerArgs,
		Short: "Convert a binary file into a C header with a static byte array",
		Long: `Writes <output.h> declaring "static unsigned char <name>[]" initialized with
the bytes of <input.bin> as uppercase hex literals, eight per line.
<name> is used verbatim and is not checked to be a valid C identifier.
Flags must come before the positional arguments; an argument starting with a
single dash is read as a positional argument.`,
		Args:          exactArgs(3, headerArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(c *cobra.Command, args []string) error {
			return prepare(c, headerArgs, &cfg)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runHeader(args[0], args[1], args[2], &cfg)
		},
	}
	headerCmd.SetFlagErrorFunc(flagUsageError(headerArgs))
	addLoggingFlags(headerCmd.Flags(), &cfg.Logging)
	addHeaderFlags(headerCmd.Flags(), &cfg.Header)
	return headerCmd
}

// runHeader generates the header for symbol from inputPath into outputPath.
func runHeader(symbol, inputPath, outputPath string, cfg *config.Config) error {
	opts := generator.Options{
		Compression: cfg.Compression(),
		SizeMacro:   cfg.Header.SizeMacro,
	}
	slog.Debug("header requested", "symbol", symbol, "input", inputPath, "output", outputPath, "compression", string(opts.Compression))
	return generator.GenerateHeader(symbol, inputPath, outputPath, opts)
}
