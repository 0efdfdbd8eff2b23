// Package main is the entry point for the odctl CLI client.
package main

import (
	"github.com/offerdesk/offerdesk/cmd/odctl/cmd"
)

func main() {
	cmd.Execute()
}
