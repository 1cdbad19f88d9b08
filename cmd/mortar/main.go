package main

import (
	"os"

	"mortar/internal/cli"
)

// main stays a thin shim; wiring and lifecycle live in the command tree.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
