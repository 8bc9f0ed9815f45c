package main

import (
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate the phased implementation roadmap",
	Long: `Order challenges by impact, greedily assign the most efficient
solutions until coverage is reached, and bucket the assignments into
timeline phases. Challenges no solution addresses are reported as
unaddressed gaps.

Examples:
  aiswe roadmap
  aiswe roadmap --format=json`,
	Run: runRoadmap,
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.GenerateRoadmap()
	if err != nil {
		exitWithError("generating roadmap", err)
	}

	emitResponse(response)

	logger.Debug("Roadmap generated", map[string]interface{}{
		"phases": len(response.Roadmap.Phases),
		"gaps":   len(response.Roadmap.UnaddressedGaps),
	})
}
