package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/spf13/cobra"
)

var clearTodayCmd = LeafCommand{
	Use:   "clear-today",
	Short: "Remove today's history entry (the live counter is untouched)",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runClearToday(cmd, homeDir, time.Now)
	},
}.Build()

func runClearToday(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	core := openCore(homeDir)

	now := nowFn()
	core.ClearToday(now)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("history entry for %s cleared", ledger.DayKey(now))))
	return nil
}
