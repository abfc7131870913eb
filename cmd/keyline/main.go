// Package main is the entry point for the keyline command shell.
package main

import "os"

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}
