package counter

import (
	"testing"
	"time"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/Garko01/prayer-counter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newCore(tally int) *Core {
	return New(tally, ledger.New(), store.DefaultSettings())
}

type spyHaptics struct {
	buzzes []time.Duration
}

func (s *spyHaptics) Buzz(d time.Duration) {
	s.buzzes = append(s.buzzes, d)
}

func TestIncrementUpdatesTallyAndLedger(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 1)
	c.Increment(now, 1)

	assert.Equal(t, 2, c.Tally())
	r, ok := c.Ledger().Get("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, 2, r.Total)
}

func TestDecrementClampsAtZero(t *testing.T) {
	c := newCore(2)
	for i := 0; i < 5; i++ {
		c.Decrement(now, 1)
	}
	assert.Equal(t, 0, c.Tally())
}

func TestDecrementSequenceProperty(t *testing.T) {
	// For all N decrements from tally T, result = max(0, T-N).
	for _, tc := range []struct{ start, n, want int }{
		{10, 3, 7},
		{3, 3, 0},
		{2, 9, 0},
		{0, 1, 0},
	} {
		c := newCore(tc.start)
		for i := 0; i < tc.n; i++ {
			c.Decrement(now, 1)
		}
		assert.Equal(t, tc.want, c.Tally(), "start=%d n=%d", tc.start, tc.n)
	}
}

func TestDecrementAtFloorDoesNotUpsert(t *testing.T) {
	c := newCore(0)
	c.Decrement(now, 1)
	_, ok := c.Ledger().Get("2025-06-15")
	assert.False(t, ok)
}

func TestStepLargerThanOne(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 33)
	assert.Equal(t, 33, c.Tally())
	c.Decrement(now, 40)
	assert.Equal(t, 0, c.Tally())
}

func TestResetDropsToZeroAndUpserts(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 5)
	c.Reset(now)

	assert.Equal(t, 0, c.Tally())
	r, ok := c.Ledger().Get("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, 0, r.Total)
}

func TestResetWhenAlreadyZeroIsNoop(t *testing.T) {
	c := newCore(0)
	changes := 0
	c.SetObserver(func() { changes++ })
	c.Reset(now)
	assert.Equal(t, 0, changes)
}

func TestClearTodayRemovesRecordKeepsTally(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 4)
	c.ClearToday(now)

	assert.Equal(t, 4, c.Tally())
	_, ok := c.Ledger().Get("2025-06-15")
	assert.False(t, ok)
}

func TestFactoryResetWipesEverything(t *testing.T) {
	c := New(7, ledger.New(), store.Settings{Vibrate: false, VibrateMs: 40})
	c.Increment(now, 1)
	c.FactoryReset()

	assert.Equal(t, 0, c.Tally())
	assert.Equal(t, 0, c.Ledger().Len())
	assert.Equal(t, store.DefaultSettings(), c.Settings())
}

func TestObserverFiresOncePerChange(t *testing.T) {
	c := newCore(0)
	changes := 0
	c.SetObserver(func() { changes++ })

	c.Increment(now, 1)
	c.Increment(now, 1)
	c.Decrement(now, 1)
	c.Decrement(now, 1) // reaches floor: change
	c.Decrement(now, 1) // at floor: no change

	assert.Equal(t, 4, changes)
}

func TestEnsureTodayRollsOver(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 5)

	tomorrow := now.AddDate(0, 0, 1)
	rolled := c.EnsureToday(tomorrow)
	require.True(t, rolled)

	assert.Equal(t, 0, c.Tally())
	r, ok := c.Ledger().Get("2025-06-16")
	require.True(t, ok)
	assert.Equal(t, 0, r.Total)
	// Yesterday's record is untouched.
	r, _ = c.Ledger().Get("2025-06-15")
	assert.Equal(t, 5, r.Total)
}

func TestEnsureTodayExistingRecordIsNoop(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 5)
	assert.False(t, c.EnsureToday(now))
	assert.Equal(t, 5, c.Tally())
}

func TestEnsureTodayFirstRunSeedsZeroRecord(t *testing.T) {
	c := newCore(0)
	require.True(t, c.EnsureToday(now))

	r, ok := c.Ledger().Get("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, 0, r.Total)
	// Running again is a no-op.
	assert.False(t, c.EnsureToday(now))
}

func TestHapticsOnIncrement(t *testing.T) {
	spy := &spyHaptics{}
	c := newCore(0)
	c.SetHaptics(spy)

	c.Increment(now, 1)
	require.Len(t, spy.buzzes, 1)
	assert.Equal(t, 15*time.Millisecond, spy.buzzes[0])
}

func TestHapticsOnDecrementRespectsSetting(t *testing.T) {
	spy := &spyHaptics{}
	c := newCore(5)
	c.SetHaptics(spy)

	c.Decrement(now, 1)
	assert.Empty(t, spy.buzzes)

	s := c.Settings()
	s.HapticsOnDecrement = true
	c.SetSettings(s)

	c.Decrement(now, 1)
	assert.Len(t, spy.buzzes, 1)
}

func TestHapticsDisabled(t *testing.T) {
	spy := &spyHaptics{}
	c := newCore(0)
	c.SetHaptics(spy)

	s := c.Settings()
	s.Vibrate = false
	c.SetSettings(s)

	c.Increment(now, 1)
	assert.Empty(t, spy.buzzes)
}

func TestNilHapticsIsIgnored(t *testing.T) {
	c := newCore(0)
	assert.NotPanics(t, func() { c.Increment(now, 1) })
}

func TestStreakDelegates(t *testing.T) {
	c := newCore(0)
	c.Increment(now, 3)
	assert.Equal(t, 1, c.Streak(now))
}
