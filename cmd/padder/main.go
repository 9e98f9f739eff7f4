// Command padder pads a binary file in place to a fixed length.
//
//	padder <name> <input.bin> <length>
package main

import "github.com/xll-gen/bintools/cmd"

func main() {
	cmd.ExecutePadder()
}
