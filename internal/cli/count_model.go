package cli

import (
	"time"

	"github.com/Garko01/prayer-counter/internal/counter"
	"github.com/Garko01/prayer-counter/internal/hold"
	tea "github.com/charmbracelet/bubbletea"
)

// rolloverInterval is how often the TUI re-checks the calendar date. The
// check itself is a no-op while the day hasn't changed.
const rolloverInterval = time.Minute

// holdTarget identifies which on-screen button a hold gesture belongs to.
type holdTarget int

const (
	holdNone holdTarget = iota
	holdInc
	holdDec
)

// Fixed layout rows and the button hit zones on the buttons row. The view
// renders exactly this geometry; mouse handling hit-tests against it.
const (
	titleRow   = 0
	countRow   = 2
	beadRow    = 3
	buttonRow  = 5
	statsRow   = 7
	helpRow    = 9
	footerRow  = 10
	decColFrom = 2
	decColTo   = 6
	incColFrom = 11
	incColTo   = 15
)

type countModel struct {
	core       *counter.Core
	now        func() time.Time
	termWidth  int
	termHeight int
	incHold    hold.Repeater
	decHold    hold.Repeater
	held       holdTarget // button under an active mouse hold
	overlay    tea.Model  // active confirm overlay (nil otherwise)
	footerMsg  string     // temporary message shown under the help line
}

func newCountModel(core *counter.Core, nowFn func() time.Time) countModel {
	return countModel{
		core:       core,
		now:        nowFn,
		termWidth:  80,
		termHeight: 24,
	}
}

func (m countModel) Init() tea.Cmd {
	return rolloverTickCmd()
}

// holdTickMsg is a hold-repeat timer firing. The embedded timer token lets
// the repeater recognize firings that went stale after a release.
type holdTickMsg struct {
	target holdTarget
	timer  hold.Timer
}

type rolloverTickMsg struct{}

func holdTickCmd(target holdTarget, t hold.Timer) tea.Cmd {
	return tea.Tick(t.Wait, func(time.Time) tea.Msg {
		return holdTickMsg{target: target, timer: t}
	})
}

func rolloverTickCmd() tea.Cmd {
	return tea.Tick(rolloverInterval, func(time.Time) tea.Msg {
		return rolloverTickMsg{}
	})
}

// repeater returns the hold state machine for a button.
func (m *countModel) repeater(target holdTarget) *hold.Repeater {
	if target == holdInc {
		return &m.incHold
	}
	return &m.decHold
}

// releaseHolds ends any active hold session on either button.
func (m countModel) releaseHolds() countModel {
	m.incHold.Release()
	m.decHold.Release()
	m.held = holdNone
	return m
}

// buttonAt maps terminal cell coordinates to the button rendered there.
func buttonAt(x, y int) holdTarget {
	if y != buttonRow {
		return holdNone
	}
	switch {
	case x >= decColFrom && x <= decColTo:
		return holdDec
	case x >= incColFrom && x <= incColTo:
		return holdInc
	}
	return holdNone
}
