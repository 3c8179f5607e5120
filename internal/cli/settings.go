package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/spf13/cobra"
)

var settingsCmd = GroupCommand{
	Use:   "settings",
	Short: "Manage behavior settings",
	Subcommands: []*cobra.Command{
		settingsGetCmd,
		settingsSetCmd,
		settingsResetCmd,
	},
}.Build()

// settingKeys lists the editable settings in display order.
var settingKeys = []string{"vibrate", "vibrate-ms", "auto-reset-after-log", "haptics-on-decrement"}

// settingValue returns the display value for a settings key.
func settingValue(s store.Settings, key string) string {
	switch key {
	case "vibrate":
		return strconv.FormatBool(s.Vibrate)
	case "vibrate-ms":
		return strconv.Itoa(s.VibrateMs)
	case "auto-reset-after-log":
		return strconv.FormatBool(s.AutoResetAfterLog)
	case "haptics-on-decrement":
		return strconv.FormatBool(s.HapticsOnDecrement)
	}
	return ""
}

// applySetting parses and applies value to the settings key.
func applySetting(s store.Settings, key, value string) (store.Settings, error) {
	switch key {
	case "vibrate", "auto-reset-after-log", "haptics-on-decrement":
		b, err := parseBoolValue(value)
		if err != nil {
			return s, err
		}
		switch key {
		case "vibrate":
			s.Vibrate = b
		case "auto-reset-after-log":
			s.AutoResetAfterLog = b
		case "haptics-on-decrement":
			s.HapticsOnDecrement = b
		}
		return s, nil
	case "vibrate-ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return s, fmt.Errorf("invalid value '%s' for vibrate-ms, expected an integer", value)
		}
		if n < store.VibrateMsMin || n > store.VibrateMsMax {
			return s, fmt.Errorf("vibrate-ms must be between %d and %d", store.VibrateMsMin, store.VibrateMsMax)
		}
		s.VibrateMs = n
		return s, nil
	}
	return s, fmt.Errorf("unknown setting '%s' (known: %s)", key, strings.Join(settingKeys, ", "))
}

func parseBoolValue(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value '%s', expected on or off", value)
}
