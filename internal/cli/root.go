package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prayer-counter",
	Short: "A daily prayer counter with streak tracking",
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(clearTodayCmd)
	rootCmd.AddCommand(resetAllCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
