package clock

import (
	"time"

	"github.com/jonboulle/clockwork"

	commonClock "github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/models"
)

// TickInterval is the recompute cadence of the displayed clock
const TickInterval = time.Second

// Ticker drives local recomputation of the displayed clock. It only ticks
// while the configuration is running and must be re-armed on every
// configuration change so no tick computes against a stale start time.
// A Ticker is owned by one goroutine.
type Ticker struct {
	clock  commonClock.Clock
	cfg    models.ClockConfig
	ticker clockwork.Ticker
}

// NewTicker creates a stopped Ticker
func NewTicker(clock commonClock.Clock) *Ticker {
	return &Ticker{clock: clock}
}

// Arm replaces the configuration and restarts the cadence. It reports whether
// the configuration changed.
func (t *Ticker) Arm(cfg models.ClockConfig) bool {
	if cfg.Equal(t.cfg) {
		return false
	}

	t.Stop()
	t.cfg = cfg
	if cfg.IsRunning && cfg.Mode != models.ClockModeStatic {
		t.ticker = t.clock.NewTicker(TickInterval)
	}
	return true
}

// C returns the tick channel, or nil while the clock does not move. A nil
// channel blocks forever in a select.
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.Chan()
}

// Display renders the current configuration at the clock's now
func (t *Ticker) Display() string {
	return DisplayTime(t.cfg, t.clock.Now())
}

// Config returns the armed configuration
func (t *Ticker) Config() models.ClockConfig {
	return t.cfg
}

// Stop cancels the cadence
func (t *Ticker) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}
