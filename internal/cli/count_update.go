package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If a confirm overlay is active, all input goes to it; counter keys
	// must not fire underneath an interactive control.
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case holdTickMsg:
		tick, next, ok := m.repeater(msg.target).Fire(msg.timer)
		if !ok {
			// Stale firing from a released session.
			return m, nil
		}
		if tick {
			m.applyTick(msg.target)
		}
		return m, holdTickCmd(msg.target, next)

	case rolloverTickMsg:
		if m.core.EnsureToday(m.now()) {
			m.footerMsg = "new day, counter reset"
		}
		return m, rolloverTickCmd()
	}
	return m, nil
}

func (m countModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "+", "=", "up", "k":
		m.applyTick(holdInc)
		m.footerMsg = ""
	case "-", "_", "down", "j":
		m.applyTick(holdDec)
		m.footerMsg = ""
	case "r":
		m.core.Reset(m.now())
		m.footerMsg = "counter reset"
	case "c":
		m.core.ClearToday(m.now())
		m.footerMsg = "today's entry cleared"
	case "R":
		m = m.releaseHolds()
		m.overlay = newConfirmOverlay("Wipe the counter, all history, and settings?", actionFactoryReset)
	}
	return m, nil
}

func (m countModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		target := buttonAt(msg.X, msg.Y)
		if target == holdNone {
			return m, nil
		}
		tick, timer, ok := m.repeater(target).Press()
		if tick {
			m.applyTick(target)
			m.footerMsg = ""
		}
		if !ok {
			return m, nil
		}
		m.held = target
		return m, holdTickCmd(target, timer)

	case tea.MouseActionRelease:
		m = m.releaseHolds()

	case tea.MouseActionMotion:
		// Dragging off the pressed button cancels the hold.
		if m.held != holdNone && buttonAt(msg.X, msg.Y) != m.held {
			m = m.releaseHolds()
		}
	}
	return m, nil
}

// applyTick performs one logical tick on the counter core.
func (m *countModel) applyTick(target holdTarget) {
	if target == holdInc {
		m.core.Increment(m.now(), 1)
	} else {
		m.core.Decrement(m.now(), 1)
	}
}

// updateOverlay delegates input to the active overlay and handles its result.
func (m countModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}

	// Timer messages keep flowing while an overlay is open; hold sessions
	// were released when it opened, so their firings are stale anyway.
	switch msg.(type) {
	case holdTickMsg:
		return m, nil
	case rolloverTickMsg:
		m.core.EnsureToday(m.now())
		return m, rolloverTickCmd()
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

func (m countModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	m.overlay = nil

	switch result.action {
	case actionFactoryReset:
		m.core.FactoryReset()
		m.footerMsg = "all data wiped, settings back to defaults"
	default:
		m.footerMsg = ""
	}
	return m, nil
}
