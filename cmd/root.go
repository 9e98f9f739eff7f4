package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bintools/internal/ui"
	"github.com/xll-gen/bintools/pkg/log"
)

// newRootCommand builds the combined bintools command with one subcommand per tool.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bintools",
		Short: "Build-time helpers for embedding binary blobs",
		Long: `bintools bundles the build helpers used to prepare binary images:
padding a file to a fixed size and converting a file into a C header.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newPadCommand("pad"), newHeaderCommand("header"))
	return rootCmd
}

// Execute runs the bintools command and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(run(newRootCommand(), os.Args[1:], os.Stdout, os.Stderr))
}

// ExecutePadder runs the standalone padder command.
func ExecutePadder() {
	os.Exit(run(newPadCommand("padder"), os.Args[1:], os.Stdout, os.Stderr))
}

// ExecuteHeadergen runs the standalone headergen command.
func ExecuteHeadergen() {
	os.Exit(run(newHeaderCommand("headergen"), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes c with args and maps the outcome to an exit status.
// Usage errors print the synopsis to stdout; every other failure is a single
// diagnostic line on stderr.
func run(c *cobra.Command, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	c.SetArgs(protectDashArgs(args))
	c.SetOut(stdout)
	c.SetErr(stderr)
	defer log.Close()

	err := c.Execute()
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if uerr.err != nil {
			ui.PrintError(stderr, uerr.err)
		}
		ui.PrintUsage(stdout, uerr.synopsis)
		return 1
	}

	ui.PrintError(stderr, err)
	return 1
}
