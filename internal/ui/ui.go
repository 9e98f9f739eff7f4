package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ANSI Colors
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBold  = "\033[1m"
)

// isTerminal reports whether w is a terminal. Anything that is not an
// *os.File, such as a test buffer, is treated as a pipe.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintError writes a single "Error: <err>" diagnostic line to w.
// The prefix is colored only when w is a terminal so build logs stay plain.
func PrintError(w io.Writer, err error) {
	if isTerminal(w) {
		fmt.Fprintf(w, "%s%sError:%s %v\n", ColorBold, ColorRed, ColorReset, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// PrintUsage writes the one-line usage synopsis for a tool.
func PrintUsage(w io.Writer, synopsis string) {
	fmt.Fprintf(w, "Usage: %s\n", synopsis)
}
