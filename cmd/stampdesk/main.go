// Package main is the entry point for stampdesk.
package main

import (
	"os"

	"github.com/stampdesk/stampdesk/cmd/stampdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
