package cmd

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xll-gen/bintools/internal/config"
	"github.com/xll-gen/bintools/internal/padder"
)

const padArgs = "<name> <input.bin> <length>"

// newPadCommand builds the padder command under the given name.
func newPadCommand(use string) *cobra.Command {
	var cfg config.Config

	padCmd := &cobra.Command{
		Use:   use + " " + padArgs,
		Short: "Pad a binary file in place with zero bytes to an exact length",
		Long: `Appends zero bytes to <input.bin> until it is exactly <length> bytes long.
A file that is already <length> bytes is left alone; a longer file is an error
and is not modified. <name> is accepted for symmetry with headergen and ignored.
Flags must come before the positional arguments; an argument starting with a
single dash, such as -1, is read as a positional argument.`,
		Args:          exactArgs(3, padArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(c *cobra.Command, args []string) error {
			return prepare(c, padArgs, &cfg)
		},
		RunE: func(c *cobra.Command, args []string) error {
			length, err := padder.ParseLength(args[2])
			if err != nil {
				return newUsageError(c, padArgs, "%w", err)
			}
			return runPad(args[0], args[1], length)
		},
	}
	padCmd.SetFlagErrorFunc(flagUsageError(padArgs))
	addLoggingFlags(padCmd.Flags(), &cfg.Logging)
	return padCmd
}

// runPad pads path to length bytes.
//
// Parameters:
//   - name: Accepted for command-line compatibility; only logged.
//   - path: The file to pad in place.
//   - length: The target size in bytes.
//
// Returns:
//   - error: A *padder.SizeExceededError or an I/O error.
func runPad(name, path string, length int64) error {
	slog.Debug("pad requested", "name", name, "path", path, "length", length)

	res, err := padder.Pad(path, length)
	if err != nil {
		return err
	}

	if !res.Changed() {
		slog.Info("already at target length", "path", path, "size", humanize.IBytes(uint64(length)))
		return nil
	}
	slog.Info("padded file",
		"path", path,
		"from", humanize.IBytes(uint64(res.Original)),
		"to", humanize.IBytes(uint64(length)),
		"appended", res.Appended)
	return nil
}
