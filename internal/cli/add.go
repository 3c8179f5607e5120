package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Garko01/prayer-counter/internal/counter"
	"github.com/spf13/cobra"
)

var addCmd = LeafCommand{
	Use:   "add [count]",
	Short: "Increment the counter (default: by 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runAdd(cmd, homeDir, args, time.Now)
	},
}.Build()

func runAdd(cmd *cobra.Command, homeDir string, args []string, nowFn func() time.Time) error {
	step, err := parseStep(args)
	if err != nil {
		return err
	}

	core := openCore(homeDir)
	core.SetHaptics(bellHaptics{out: cmd.OutOrStdout()})

	now := nowFn()
	core.EnsureToday(now)
	core.Increment(now, step)

	printTallyLine(cmd, core, now)
	return nil
}

// parseStep parses the optional positional step count, defaulting to 1.
func parseStep(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	step, err := strconv.Atoi(args[0])
	if err != nil || step < 1 {
		return 0, fmt.Errorf("invalid count '%s', expected a positive integer", args[0])
	}
	return step, nil
}

func printTallyLine(cmd *cobra.Command, core *counter.Core, now time.Time) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
		Silent("count:"),
		Primary(strconv.Itoa(core.Tally())),
		Silent(fmt.Sprintf("(streak: %s)", formatStreak(core.Streak(now)))),
	)
}

// formatStreak renders a streak length for display.
func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
