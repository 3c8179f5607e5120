// Package hold turns raw press/release gestures into repeated tick firings
// with tap vs. hold semantics. The Repeater owns no timers itself: Press and
// Fire hand back a Timer token with a wait duration, and the caller schedules
// the callback however its event loop does (tea.Tick in the TUI). Tokens
// carry a generation number, so a firing that arrives after Release is
// recognized as stale and dropped.
package hold

import "time"

const (
	// DelayInterval is how long a press must be held before repeating starts.
	DelayInterval = 300 * time.Millisecond
	// RepeatInterval is the firing period once repeating has started.
	RepeatInterval = 150 * time.Millisecond
)

type state int

const (
	idle state = iota
	armedShort
	armedRepeat
)

// Timer is a scheduling token for a pending firing.
type Timer struct {
	Wait time.Duration
	gen  uint64
}

// Repeater is the per-button hold state machine. The zero value is ready to
// use. It is not safe for concurrent use; drive it from a single event loop.
type Repeater struct {
	state state
	gen   uint64
}

// Press starts a hold session. It reports whether a tick should fire
// immediately and returns the delay timer to schedule. A press while a
// session is already armed is a no-op (tick false, ok false), guarding
// against double-registration.
func (r *Repeater) Press() (tick bool, t Timer, ok bool) {
	if r.state != idle {
		return false, Timer{}, false
	}
	r.state = armedShort
	r.gen++
	return true, Timer{Wait: DelayInterval, gen: r.gen}, true
}

// Fire handles a scheduled timer going off. Stale timers, from a generation
// that has since been released, report ok false and change nothing. Otherwise
// a tick fires and the next repeat timer is returned: the first firing moves
// the session from the short-tap delay into repeating.
func (r *Repeater) Fire(t Timer) (tick bool, next Timer, ok bool) {
	if r.state == idle || t.gen != r.gen {
		return false, Timer{}, false
	}
	r.state = armedRepeat
	return true, Timer{Wait: RepeatInterval, gen: r.gen}, true
}

// Release ends the session and invalidates any pending timers. Releasing an
// idle repeater, or releasing twice, is a guaranteed no-op.
func (r *Repeater) Release() {
	if r.state == idle {
		return
	}
	r.state = idle
	r.gen++
}

// Pending returns a token equivalent to the session's outstanding timer, or
// false when no session is active.
func (r *Repeater) Pending() (Timer, bool) {
	switch r.state {
	case armedShort:
		return Timer{Wait: DelayInterval, gen: r.gen}, true
	case armedRepeat:
		return Timer{Wait: RepeatInterval, gen: r.gen}, true
	}
	return Timer{}, false
}

// Active reports whether a hold session is in progress.
func (r *Repeater) Active() bool {
	return r.state != idle
}
