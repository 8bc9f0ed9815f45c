package main

import (
	"aiswe/internal/claudecmd"

	"github.com/spf13/cobra"
)

var claudeCmd = &cobra.Command{
	Use:   "claude <command> [args]",
	Short: "Dispatch a named command from the command catalog",
	Long: `Dispatch a named command from the fixed command catalog. Each
command maps to a typed query against the engine; use "list" to see the
catalog and "help <command>" for one entry.

Examples:
  aiswe claude list
  aiswe claude help analyze-task
  aiswe claude analyze-task function-completion
  aiswe claude quick-wins 6`,
	Args: cobra.MinimumNArgs(1),
	Run:  runClaude,
}

func init() {
	rootCmd.AddCommand(claudeCmd)
}

func runClaude(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)

	switch args[0] {
	case "list":
		emitResponse(claudecmd.List())
		return
	case "help":
		if len(args) != 2 {
			emitResponse(claudecmd.List())
			return
		}
		entry, err := claudecmd.Help(args[1])
		if err != nil {
			exitWithError("looking up command", err)
		}
		emitResponse(entry)
		return
	}

	engine := mustGetEngine(logger)

	response, err := claudecmd.Execute(engine, args[0], args[1:])
	if err != nil {
		exitWithError("dispatching command", err)
	}

	emitResponse(response)
}
