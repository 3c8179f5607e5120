package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = LeafCommand{
	Use:   "reset",
	Short: "Reset the counter to 0 (today's history entry keeps the drop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runReset(cmd, homeDir, time.Now)
	},
}.Build()

func runReset(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	core := openCore(homeDir)

	now := nowFn()
	core.EnsureToday(now)
	core.Reset(now)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("counter reset to 0"))
	return nil
}
