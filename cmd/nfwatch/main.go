// Package main is the entry point for the nfwatch pipeline dashboard.
package main

import (
	"os"

	"github.com/watchfire-io/nfwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
