package cli

import (
	"fmt"
	"os"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/spf13/cobra"
)

var settingsResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Reset all settings to their defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := ResolveConfirmFunc(yes)

		return runSettingsReset(cmd, homeDir, confirm)
	},
}.Build()

func runSettingsReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm("Reset all settings to their defaults?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}

	if err := store.SaveSettings(homeDir, store.DefaultSettings()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("settings reset to defaults"))
	return nil
}
