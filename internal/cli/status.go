package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Garko01/prayer-counter/internal/beads"
	"github.com/Garko01/prayer-counter/internal/counter"
	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show the current count, today's total, and the streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runStatus(cmd, homeDir, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	core := openCore(homeDir)

	now := nowFn()
	core.EnsureToday(now)

	printStatus(cmd.OutOrStdout(), core, now)
	return nil
}

func printStatus(w io.Writer, core *counter.Core, now time.Time) {
	today, _ := core.Ledger().Get(ledger.DayKey(now))

	_, _ = fmt.Fprintf(w, "%s   %s\n", Silent("Count:"), Primary(strconv.Itoa(core.Tally())))
	_, _ = fmt.Fprintf(w, "%s   %s  %s\n", Silent("Today:"), Text(strconv.Itoa(today.Total)), Silent("("+today.Date+")"))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Streak:"), Primary(formatStreak(core.Streak(now))))
	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Bead:"), Text(formatBead(core.Tally())))
}

// formatBead renders the position on the 108-bead ring.
func formatBead(count int) string {
	idx, ok := beads.GlowIndex(count)
	if !ok {
		return "not started"
	}
	return fmt.Sprintf("%d of %d (round %d)", idx+1, beads.RingSize, beads.Rounds(count-1)+1)
}
