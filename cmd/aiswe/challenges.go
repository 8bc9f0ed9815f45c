package main

import (
	"github.com/spf13/cobra"
)

var (
	challengesSeverity string
	relatedDepth       int
)

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List challenges, optionally filtered by severity",
	Long: `List registered challenges in registration order.

Examples:
  aiswe challenges
  aiswe challenges --severity=critical
  aiswe challenges related semantic-understanding --depth=2`,
	Run: runChallenges,
}

var relatedCmd = &cobra.Command{
	Use:   "related <id>",
	Short: "Expand a challenge's relation graph",
	Long: `Walk the undirected challenge relation graph from one challenge,
returning every challenge reachable within the given depth. The graph may
contain cycles; each challenge is reported once.

Examples:
  aiswe challenges related semantic-understanding
  aiswe challenges related eval-benchmarks --depth=3`,
	Args: cobra.ExactArgs(1),
	Run:  runRelated,
}

func init() {
	challengesCmd.Flags().StringVar(&challengesSeverity, "severity", "", "Severity filter (low, medium, high, critical)")
	relatedCmd.Flags().IntVar(&relatedDepth, "depth", 1, "Maximum relation hops")
	challengesCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(challengesCmd)
}

func runChallenges(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.ListChallenges(challengesSeverity)
	if err != nil {
		exitWithError("listing challenges", err)
	}

	emitResponse(response)
}

func runRelated(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.RelatedChallenges(args[0], relatedDepth)
	if err != nil {
		exitWithError("expanding related challenges", err)
	}

	emitResponse(response)
}
