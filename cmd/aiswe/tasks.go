package main

import (
	"github.com/spf13/cobra"

	"aiswe/internal/query"
)

var (
	tasksCategory     string
	tasksScope        string
	tasksComplexity   string
	tasksIntervention string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks, filtered by any classification dimension",
	Long: `List registered tasks. Filters combine as an AND-conjunction; an
unset filter leaves that dimension unconstrained.

Examples:
  aiswe tasks
  aiswe tasks --category=code_generation
  aiswe tasks --scope=project --complexity=high`,
	Run: runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksCategory, "category", "", "Task category filter")
	tasksCmd.Flags().StringVar(&tasksScope, "scope", "", "Scope filter (function, unit, project)")
	tasksCmd.Flags().StringVar(&tasksComplexity, "complexity", "", "Complexity filter (low, medium, high)")
	tasksCmd.Flags().StringVar(&tasksIntervention, "intervention", "", "Intervention filter (low, medium, high)")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	response, err := engine.ListTasks(query.ListTasksOptions{
		Category:     tasksCategory,
		Scope:        tasksScope,
		Complexity:   tasksComplexity,
		Intervention: tasksIntervention,
	})
	if err != nil {
		exitWithError("listing tasks", err)
	}

	emitResponse(response)
}
