// This is the entry point for the combi demo CLI.
// It exposes the combinat and seqgen operations over command-line tokens.
// Build with: go build -o bin/combi ./cmd/combi
// Usage: combi <command> [options] <token>...
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
