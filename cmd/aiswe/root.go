package main

import (
	"aiswe/internal/version"

	"github.com/spf13/cobra"
)

var (
	// formatFlag is the CLI --format flag value
	formatFlag string
	// saveFlag writes the formatted output to a file as well as stdout
	saveFlag string
	// catalogFlag overrides the configured catalog file
	catalogFlag string
)

var rootCmd = &cobra.Command{
	Use:   "aiswe",
	Short: "aiswe - AI software engineering readiness analyzer",
	Long: `aiswe catalogs AI-for-software-engineering tasks, the challenges that
block them, and candidate solutions, then derives impact scores, coverage
gaps, readiness grades, and prioritized roadmaps from the catalog.

All analysis is deterministic scoring over the registered catalog; no code
or natural language is inspected.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("aiswe version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format (json, human)")
	rootCmd.PersistentFlags().StringVar(&saveFlag, "save", "",
		"Write formatted output to this file as well as stdout")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "",
		"Catalog file (yaml, toml, or json) replacing the built-in catalog")
}
