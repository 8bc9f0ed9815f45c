package main

import (
	"github.com/spf13/cobra"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark the current state of the catalog",
	Long: `Summarize the catalog: task distribution across the four
classification dimensions, severe challenge counts, the aggregate
readiness grade, and investment recommendations for the largest gaps.

Examples:
  aiswe benchmark
  aiswe benchmark --format=json`,
	Run: runBenchmark,
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.Benchmark()
	if err != nil {
		exitWithError("benchmarking", err)
	}

	emitResponse(response)
}
