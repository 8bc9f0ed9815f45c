package main

import (
	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Compute the aggregate readiness grade",
	Long: `Compute the coverage-weighted readiness score across all
challenges and its letter grade. An empty catalog grades F.

Examples:
  aiswe readiness`,
	Run: runReadiness,
}

func init() {
	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.ReadinessGrade()
	if err != nil {
		exitWithError("computing readiness", err)
	}

	emitResponse(response)
}
