package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source used by tickers and timestamps. Production code
// uses the real clock; tests drive a clockwork.FakeClock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// New returns a Clock backed by the system clock
func New() Clock {
	return clockwork.NewRealClock()
}

// NewFake returns a fake Clock pinned at the given instant
func NewFake(at time.Time) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(at)
}
