package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageError marks a failure caused by how the tool was invoked rather than
// by the files it was given.
type usageError struct {
	synopsis string
	err      error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "usage: " + e.synopsis
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// synopsis renders "<command path> <args>", e.g. "padder <name> <input.bin> <length>".
func synopsis(c *cobra.Command, args string) string {
	return c.CommandPath() + " " + args
}

// exactArgs is cobra.ExactArgs reporting a usageError.
func exactArgs(n int, args string) cobra.PositionalArgs {
	return func(c *cobra.Command, got []string) error {
		if len(got) != n {
			return &usageError{synopsis: synopsis(c, args)}
		}
		return nil
	}
}

// flagUsageError turns pflag parse failures into usage errors.
func flagUsageError(args string) func(*cobra.Command, error) error {
	return func(c *cobra.Command, err error) error {
		return &usageError{synopsis: synopsis(c, args), err: err}
	}
}

func newUsageError(c *cobra.Command, args string, format string, a ...interface{}) error {
	return &usageError{synopsis: synopsis(c, args), err: fmt.Errorf(format, a...)}
}
