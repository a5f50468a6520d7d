// Package main is the entry point for the cloud-cost CLI.
package main

import (
	"os"

	"cloud-cost/cmd/cli/cmd"
	"cloud-cost/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
