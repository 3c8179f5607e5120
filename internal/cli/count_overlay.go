package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlayResult is sent when a confirm overlay completes. An empty action
// means cancelled.
type overlayResult struct {
	action string
}

const actionFactoryReset = "factory-reset"

func overlayResultMsg(action string) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(50)
	overlayTitleStyle  = lipgloss.NewStyle().Bold(true)
	overlayActiveStyle = lipgloss.NewStyle().Reverse(true)
	overlayMutedStyle  = lipgloss.NewStyle().Faint(true)
)

// confirmOverlay is a yes/no prompt rendered over the counter. It starts on
// "no" so a stray enter doesn't trigger the destructive action.
type confirmOverlay struct {
	title  string
	action string
	yes    bool
}

func newConfirmOverlay(title, action string) *confirmOverlay {
	return &confirmOverlay{title: title, action: action}
}

func (o *confirmOverlay) Init() tea.Cmd { return nil }

func (o *confirmOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "n":
			return o, overlayResultMsg("")
		case "y":
			return o, overlayResultMsg(o.action)
		case "left", "right", "tab", "h", "l":
			o.yes = !o.yes
		case "enter":
			if o.yes {
				return o, overlayResultMsg(o.action)
			}
			return o, overlayResultMsg("")
		}
	}
	return o, nil
}

func (o *confirmOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")

	yes, no := "  yes  ", "  no  "
	if o.yes {
		b.WriteString(overlayActiveStyle.Render(yes) + "   " + no)
	} else {
		b.WriteString(yes + "   " + overlayActiveStyle.Render(no))
	}

	b.WriteString("\n\n")
	b.WriteString(overlayMutedStyle.Render("←/→ select  |  enter confirm  |  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}
