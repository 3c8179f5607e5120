// Package counter owns the live tally and funnels every mutation of the
// app's state: increments and decrements with their floor clamp, resets, the
// day-rollover check, and the ledger upserts that mirror the tally into
// today's history record. Presentation layers never touch the tally or the
// ledger directly.
package counter

import (
	"time"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/Garko01/prayer-counter/internal/store"
)

// Haptics delivers a physical feedback pulse. Implementations without the
// capability can simply do nothing; a nil Haptics is ignored.
type Haptics interface {
	Buzz(d time.Duration)
}

// Core orchestrates the tally, the history ledger, and the settings. All
// mutating operations are synchronous and leave the tally and ledger
// consistent with each other before returning.
type Core struct {
	tally    int
	ledger   *ledger.Ledger
	settings store.Settings
	haptics  Haptics
	observer func()
}

// New creates a core around previously loaded state. A negative loaded tally
// is clamped to the floor.
func New(tally int, l *ledger.Ledger, s store.Settings) *Core {
	if tally < 0 {
		tally = 0
	}
	if l == nil {
		l = ledger.New()
	}
	return &Core{tally: tally, ledger: l, settings: s}
}

// SetHaptics wires the feedback device used on increment and decrement.
func (c *Core) SetHaptics(h Haptics) {
	c.haptics = h
}

// SetObserver registers a callback invoked after every state change. The
// persistence layer hangs off this hook, so writes follow mutations instead
// of being interleaved with them.
func (c *Core) SetObserver(fn func()) {
	c.observer = fn
}

// Tally returns the live count.
func (c *Core) Tally() int {
	return c.tally
}

// Ledger exposes the history ledger for read-side consumers (streak,
// snapshots, persistence).
func (c *Core) Ledger() *ledger.Ledger {
	return c.ledger
}

// Settings returns the current settings.
func (c *Core) Settings() store.Settings {
	return c.settings
}

// SetSettings replaces the settings and notifies the observer.
func (c *Core) SetSettings(s store.Settings) {
	c.settings = s.Clamp()
	c.notify()
}

// Increment raises the tally by step, clamped at 0, and mirrors the change
// into today's ledger record.
func (c *Core) Increment(now time.Time, step int) {
	if c.settings.Vibrate {
		c.buzz()
	}
	c.apply(now, c.tally+step)
}

// Decrement lowers the tally by step, clamped at 0. Haptic feedback fires
// only when the hapticsOnDecrement setting is enabled.
func (c *Core) Decrement(now time.Time, step int) {
	if c.settings.Vibrate && c.settings.HapticsOnDecrement {
		c.buzz()
	}
	c.apply(now, c.tally-step)
}

// Reset drops the tally to 0. The drop itself is upserted, so today's record
// reflects it; use ClearToday to discard the record instead.
func (c *Core) Reset(now time.Time) {
	c.apply(now, 0)
}

// ClearToday removes today's ledger record without touching the tally.
func (c *Core) ClearToday(now time.Time) {
	c.ledger.Remove(ledger.DayKey(now))
	c.notify()
}

// FactoryReset wipes the tally, the ledger, and the settings back to
// defaults. Confirmation is the caller's concern.
func (c *Core) FactoryReset() {
	c.tally = 0
	c.ledger.ClearAll()
	c.settings = store.DefaultSettings()
	c.notify()
}

// EnsureToday is the day-rollover check: when the ledger has no record for
// now's date (a new day, or the first ever run) the tally resets to 0 and a
// zero record is seeded for today. Reports whether a rollover happened.
func (c *Core) EnsureToday(now time.Time) bool {
	key := ledger.DayKey(now)
	if _, ok := c.ledger.Get(key); ok {
		return false
	}
	c.tally = 0
	c.ledger.Upsert(key, 0)
	c.notify()
	return true
}

// Streak returns the consecutive-day streak ending at now's date.
func (c *Core) Streak(now time.Time) int {
	return ledger.Streak(c.ledger, now)
}

// apply moves the tally to the clamped target value and, on change, upserts
// today's record and notifies the observer.
func (c *Core) apply(now time.Time, target int) {
	if target < 0 {
		target = 0
	}
	if target == c.tally {
		return
	}
	c.tally = target
	c.ledger.Upsert(ledger.DayKey(now), c.tally)
	c.notify()
}

func (c *Core) buzz() {
	if c.haptics == nil {
		return
	}
	c.haptics.Buzz(time.Duration(c.settings.VibrateMs) * time.Millisecond)
}

func (c *Core) notify() {
	if c.observer != nil {
		c.observer()
	}
}
