// Command headergen converts a binary file into a C header.
//
//	headergen <name> <input.bin> <output.h>
package main

import "github.com/xll-gen/bintools/cmd"

func main() {
	cmd.ExecuteHeadergen()
}
