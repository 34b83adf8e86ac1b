package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "trk",
	Short:         "Tracker — local-first personal productivity tracker",
	Long:          "Tracker logs study, workout, sleep and distraction activity, manages tasks and habits, and derives streaks, heatmaps and history from the raw logs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLogCmd(),
		newStatusCmd(),
		newTaskCmd(),
		newHabitCmd(),
		newTargetCmd(),
		newLearnCmd(),
		newHistoryCmd(),
		newHeatmapCmd(),
		newBackupCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
