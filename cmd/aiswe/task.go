package main

import (
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task <id>",
	Short: "Evaluate one task's readiness",
	Long: `Evaluate a single task: the challenges blocking its category, the
solutions addressing those challenges, and a readiness recommendation.

Examples:
  aiswe task function-completion
  aiswe task unit-test-generation --format=json`,
	Args: cobra.ExactArgs(1),
	Run:  runTask,
}

func init() {
	rootCmd.AddCommand(taskCmd)
}

func runTask(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.EvaluateTask(args[0])
	if err != nil {
		exitWithError("evaluating task", err)
	}

	emitResponse(response)

	logger.Debug("Task evaluation completed", map[string]interface{}{
		"taskId":    args[0],
		"readiness": response.ReadinessScore,
	})
}
