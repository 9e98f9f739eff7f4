package main

import "github.com/xll-gen/bintools/cmd"

// main is the entry point of the bintools CLI.
// It executes the root command which dispatches to the pad and header subcommands.
func main() {
	cmd.Execute()
}
