package cli

import (
	"fmt"
	"os"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/spf13/cobra"
)

var resetAllCmd = LeafCommand{
	Use:   "reset-all",
	Short: "Factory reset: wipe the counter, all history, and settings",
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

		return runResetAll(cmd, homeDir, confirm)
	},
}.Build()

func runResetAll(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm("Wipe the counter, all history, and settings? This cannot be undone.")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}

	if err := store.WipeAll(homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("all data wiped, settings back to defaults"))
	return nil
}
