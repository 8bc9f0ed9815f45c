package main

import (
	"github.com/spf13/cobra"
)

var analyzeCategory string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze challenges: impact scores, coverage, and gaps",
	Long: `Score every registered challenge: impact (severity and breadth),
coverage (aggregate effectiveness of addressing solutions), and coverage
gaps (severe challenges below full coverage).

Examples:
  aiswe analyze
  aiswe analyze --category=code_generation
  aiswe analyze --format=json`,
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "", "Restrict to challenges affecting this task category")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.AnalyzeChallenges(analyzeCategory)
	if err != nil {
		exitWithError("analyzing challenges", err)
	}

	emitResponse(response)

	logger.Debug("Challenge analysis completed", map[string]interface{}{
		"challenges": response.TotalChallenges,
		"gaps":       len(response.CoverageGaps),
	})
}
