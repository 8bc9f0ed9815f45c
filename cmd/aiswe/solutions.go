package main

import (
	"github.com/spf13/cobra"
)

var solutionsCategory string

var solutionsCmd = &cobra.Command{
	Use:   "solutions",
	Short: "List solutions ranked by feasibility-weighted effectiveness",
	Long: `List registered solutions, ranked by feasibility-weighted
effectiveness, optionally filtered by category.

Examples:
  aiswe solutions
  aiswe solutions --category=training`,
	Run: runSolutions,
}

func init() {
	solutionsCmd.Flags().StringVar(&solutionsCategory, "category", "",
		"Category filter (data_collection, training, inference, framework_integration)")
	rootCmd.AddCommand(solutionsCmd)
}

func runSolutions(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.ListSolutions(solutionsCategory)
	if err != nil {
		exitWithError("listing solutions", err)
	}

	emitResponse(response)
}
