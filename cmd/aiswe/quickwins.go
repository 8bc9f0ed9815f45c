package main

import (
	"github.com/spf13/cobra"
)

var quickwinsMonths int

var quickwinsCmd = &cobra.Command{
	Use:   "quickwins",
	Short: "List solutions deployable within a month window",
	Long: `List solutions whose timeline fits within the window, ordered by
descending effectiveness. The default window comes from configuration.

Examples:
  aiswe quickwins
  aiswe quickwins --months=6`,
	Run: runQuickwins,
}

func init() {
	quickwinsCmd.Flags().IntVar(&quickwinsMonths, "months", 0, "Deployment window in months (0 uses the configured default)")
	rootCmd.AddCommand(quickwinsCmd)
}

func runQuickwins(cmd *cobra.Command, args []string) {
	logger := newLogger(formatFlag)
	engine := mustGetEngine(logger)

	months := quickwinsMonths
	if months <= 0 {
		months = engine.QuickWinWindow()
	}

	response, err := engine.QuickWins(months)
	if err != nil {
		exitWithError("listing quick wins", err)
	}

	emitResponse(response)
}
