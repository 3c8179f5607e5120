package cli

import (
	"io"
	"time"

	"github.com/Garko01/prayer-counter/internal/counter"
	"github.com/Garko01/prayer-counter/internal/store"
)

// openCore loads all persisted state into a counter core and wires the
// persistence observer: every state change triggers a best-effort write of
// all three records. Write failures are swallowed; the in-memory state stays
// authoritative for the session and the next change re-attempts the write.
func openCore(homeDir string) *counter.Core {
	core := counter.New(
		store.LoadTally(homeDir),
		store.LoadLedger(homeDir),
		store.LoadSettings(homeDir),
	)
	core.SetObserver(func() { persist(homeDir, core) })
	return core
}

func persist(homeDir string, core *counter.Core) {
	_ = store.SaveTally(homeDir, core.Tally())
	_ = store.SaveLedger(homeDir, core.Ledger())
	_ = store.SaveSettings(homeDir, core.Settings())
}

// bellHaptics is the terminal stand-in for a vibration motor: a BEL byte per
// pulse. Terminals without an audible or visual bell just ignore it, which
// matches the "capability absent is not an error" rule.
type bellHaptics struct {
	out io.Writer
}

func (b bellHaptics) Buzz(time.Duration) {
	if b.out == nil {
		return
	}
	_, _ = b.out.Write([]byte{'\a'})
}
