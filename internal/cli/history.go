package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/spf13/cobra"
)

const defaultHistoryDays = 14

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show the recent daily history",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "number of days to show", Default: defaultHistoryDays},
	},
	StrFlags: []StringFlag{
		{Name: "pdf", Usage: "export the history to a PDF file at the given path"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		days, _ := cmd.Flags().GetInt("days")
		pdfPath, _ := cmd.Flags().GetString("pdf")
		return runHistory(cmd, homeDir, days, pdfPath, time.Now)
	},
}.Build()

func runHistory(cmd *cobra.Command, homeDir string, days int, pdfPath string, nowFn func() time.Time) error {
	if days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	core := openCore(homeDir)

	now := nowFn()
	core.EnsureToday(now)

	snap := core.Ledger().Snapshot(now, days)
	streak := core.Streak(now)

	if pdfPath != "" {
		if err := renderHistoryPDF(snap, streak, pdfPath); err != nil {
			return fmt.Errorf("exporting PDF: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("history exported to %s", Primary(pdfPath))))
		return nil
	}

	printHistoryTable(cmd, snap, streak)
	return nil
}

func printHistoryTable(cmd *cobra.Command, snap []ledger.Record, streak int) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Last %d days:", len(snap))))

	maxTotal := 0
	for _, r := range snap {
		if r.Total > maxTotal {
			maxTotal = r.Total
		}
	}

	for _, r := range snap {
		line := fmt.Sprintf("%s  %s  %5d  %s", r.Date, weekdayAbbrev(r.Date), r.Total, historyBar(r.Total, maxTotal))
		if r.Total == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", Silent(line))
		} else {
			_, _ = fmt.Fprintf(w, "  %s\n", Text(line))
		}
	}

	_, _ = fmt.Fprintf(w, "\n%s %s\n", Silent("Streak:"), Primary(formatStreak(streak)))
}

// weekdayAbbrev returns the 3-letter weekday for a YYYY-MM-DD key.
func weekdayAbbrev(dateKey string) string {
	d, err := time.Parse(ledger.DayKeyFormat, dateKey)
	if err != nil {
		return "???"
	}
	return d.Weekday().String()[:3]
}

const historyBarWidth = 30

// historyBar scales a total against the window maximum into a block bar.
func historyBar(total, maxTotal int) string {
	if total <= 0 || maxTotal <= 0 {
		return ""
	}
	cells := total * historyBarWidth / maxTotal
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}
