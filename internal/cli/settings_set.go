package cli

import (
	"fmt"
	"os"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/spf13/cobra"
)

var settingsSetCmd = LeafCommand{
	Use:   "set [key] [value]",
	Short: "Change a setting (interactive when no arguments are given)",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runSettingsSet(cmd, homeDir, args, NewPromptKit())
	},
}.Build()

func runSettingsSet(cmd *cobra.Command, homeDir string, args []string, kit PromptKit) error {
	s := store.LoadSettings(homeDir)

	key, value, err := resolveSettingArgs(s, args, kit)
	if err != nil {
		return err
	}

	s, err = applySetting(s, key, value)
	if err != nil {
		return err
	}

	if err := store.SaveSettings(homeDir, s); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", key, Primary(settingValue(s, key)))))
	return nil
}

// resolveSettingArgs fills in the key and value from positional args,
// prompting interactively for whichever is missing.
func resolveSettingArgs(s store.Settings, args []string, kit PromptKit) (string, string, error) {
	var key, value string

	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 1:
		key = args[0]
	default:
		labels := make([]string, len(settingKeys))
		for i, k := range settingKeys {
			labels[i] = fmt.Sprintf("%s (currently %s)", k, settingValue(s, k))
		}
		idx, err := kit.Select("Which setting?", labels)
		if err != nil {
			return "", "", err
		}
		key = settingKeys[idx]
	}

	if key == "vibrate-ms" {
		v, err := kit.Prompt(fmt.Sprintf("Pulse length in ms (%d-%d)", store.VibrateMsMin, store.VibrateMsMax))
		if err != nil {
			return "", "", err
		}
		value = v
	} else {
		on, err := kit.Confirm(fmt.Sprintf("Enable %s?", key))
		if err != nil {
			return "", "", err
		}
		value = "off"
		if on {
			value = "on"
		}
	}

	return key, value, nil
}
