// Package main is the entry point for the offerdesk server.
package main

import (
	"os"

	"github.com/offerdesk/offerdesk/cmd/offerdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
