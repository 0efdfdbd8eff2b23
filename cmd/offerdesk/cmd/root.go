// Package cmd implements the CLI commands for the offerdesk server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "offerdesk",
	Short: "Manage purchase offers on property listings",
	Long: "An API-first service that records buyer offers on property listings, " +
		"auto-resolves them against price thresholds, tracks admin decisions with " +
		"a full modification history, and sends deal notifications.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
