package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/charmbracelet/lipgloss"
)

var (
	countTitleStyle  = lipgloss.NewStyle().Bold(true)
	countValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2EB67D"))
	countButtonStyle = lipgloss.NewStyle().Reverse(true)
	countFaintStyle  = lipgloss.NewStyle().Faint(true)
)

func (m countModel) View() string {
	if m.overlay != nil {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, m.overlay.View(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	now := m.now()
	today, _ := m.core.Ledger().Get(ledger.DayKey(now))

	// The row layout here must match the hit-test constants in count_model.go.
	lines := []string{
		countTitleStyle.Render(" prayer-counter"),
		"",
		"   " + countValueStyle.Render(strconv.Itoa(m.core.Tally())),
		countFaintStyle.Render("   " + formatBead(m.core.Tally())),
		"",
		"  " + m.renderButton("[ - ]", holdDec) + "    " + m.renderButton("[ + ]", holdInc),
		"",
		fmt.Sprintf("   %s %s   %s %s",
			Silent("today:"), Text(strconv.Itoa(today.Total)),
			Silent("streak:"), Primary(formatStreak(m.core.Streak(now)))),
		"",
		countFaintStyle.Render("   space/+ add · - subtract · r reset · c clear today · R wipe · q quit"),
	}
	if m.footerMsg != "" {
		lines = append(lines, countFaintStyle.Render("   "+m.footerMsg))
	}

	return strings.Join(lines, "\n")
}

// renderButton highlights a button while its hold session is active.
func (m countModel) renderButton(label string, target holdTarget) string {
	if m.held == target {
		return countButtonStyle.Render(label)
	}
	return label
}
