// Package main provides the entry point for uacore-cli.
//
// uacore-cli manages the uacore server configuration file: generating
// presets, validating against the endpoint and limit invariants,
// printing a credential-masked view, and watching the file for changes.
package main

import (
	"fmt"
	"os"

	"github.com/uacore/uacore-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
