package room

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the interface we use for time operations. In production, use
// clockwork.NewRealClock(). In tests, a FakeClock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) clockwork.Timer
}

// roundTimer arms at most one pending end-of-round fire per room. Re-arming
// cancels any pending timer first, and cancelling after the timer has fired
// is a safe no-op.
type roundTimer struct {
	clock Clock

	mu      sync.Mutex
	pending clockwork.Timer
}

func newRoundTimer(clock Clock) *roundTimer {
	return &roundTimer{clock: clock}
}

// Schedule arms a one-shot timer that invokes fn approximately d from now,
// at most once. Any previously pending fire is cancelled.
func (t *roundTimer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending != nil {
		t.pending.Stop()
	}
	t.pending = t.clock.AfterFunc(d, fn)
}

// Cancel disarms a pending timer if there is one.
func (t *roundTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
