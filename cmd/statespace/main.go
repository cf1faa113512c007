// Package main provides the entry point for the statespace CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/randalmurphal/statespace/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
