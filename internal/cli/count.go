package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var countCmd = LeafCommand{
	Use:   "count",
	Short: "Open the interactive counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCount(cmd, homeDir, time.Now)
	},
}.Build()

func runCount(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	core := openCore(homeDir)
	core.EnsureToday(nowFn())

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the static status instead of a TUI.
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		printStatus(out, core, nowFn())
		return nil
	}

	core.SetHaptics(bellHaptics{out: f})

	m := newCountModel(core, nowFn)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithOutput(f))
	_, err := p.Run()
	return err
}
