package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var subCmd = LeafCommand{
	Use:   "sub [count]",
	Short: "Decrement the counter (default: by 1, never below 0)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runSub(cmd, homeDir, args, time.Now)
	},
}.Build()

func runSub(cmd *cobra.Command, homeDir string, args []string, nowFn func() time.Time) error {
	step, err := parseStep(args)
	if err != nil {
		return err
	}

	core := openCore(homeDir)
	core.SetHaptics(bellHaptics{out: cmd.OutOrStdout()})

	now := nowFn()
	core.EnsureToday(now)
	core.Decrement(now, step)

	printTallyLine(cmd, core, now)
	return nil
}
