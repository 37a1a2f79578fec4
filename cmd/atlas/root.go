package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Mercator Atlas - infrastructure template structural linter",
	Long: `Mercator Atlas is an offline structural linter and introspection toolkit
for declarative infrastructure templates.

It checks the minimal shape the consuming orchestrator requires (format
version, resources, parameters, outputs), reports every structural problem
in a single pass, and answers introspection queries used by governance and
cost tooling:
  - Resource, parameter, and output counts
  - Naming-token usage across resource bodies
  - Retention-policy usage for cleanup auditing

Atlas never deploys, never calls a cloud API, and never evaluates template
intrinsics: it is a pure, read-only function of a parsed document.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "atlas.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
