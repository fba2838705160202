// Package main provides the entry point for the pathmark CLI.
package main

import (
	"os"

	"github.com/pathmark-dev/pathmark/cmd/pathmark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
