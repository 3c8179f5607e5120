package cli

import (
	"fmt"
	"os"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/spf13/cobra"
)

var settingsGetCmd = LeafCommand{
	Use:   "get",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runSettingsGet(cmd, homeDir)
	},
}.Build()

func runSettingsGet(cmd *cobra.Command, homeDir string) error {
	s := store.LoadSettings(homeDir)

	w := cmd.OutOrStdout()
	for _, key := range settingKeys {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(fmt.Sprintf("%-22s", key)), Primary(settingValue(s, key)))
	}
	return nil
}
