// Package main provides the cobs command line tool, which encodes and decodes
// files using Consistent Overhead Byte Stuffing.
package main

import (
	"fmt"
	"os"
)

func main() {
	a := &app{}
	if err := newRootCommand(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
