// Package clock derives the shared game clock locally from its configuration,
// so the room record is written only on start, pause and edits.
package clock

import (
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Seconds returns the clock value in seconds at now, before flooring
func Seconds(cfg models.ClockConfig, now time.Time) float64 {
	if cfg.Mode == models.ClockModeStatic || !cfg.IsRunning || cfg.StartTime == nil {
		return cfg.BaseTime
	}

	baseMs := toMillis(cfg.BaseTime)
	elapsedMs := now.Sub(*cfg.StartTime).Milliseconds()

	switch cfg.Mode {
	case models.ClockModeCountdown:
		return math.Max(0, float64(baseMs-elapsedMs)/1000)
	case models.ClockModeStopwatch:
		return float64(baseMs+elapsedMs) / 1000
	}
	return cfg.BaseTime
}

// DisplayTime renders the clock as MM:SS at now
func DisplayTime(cfg models.ClockConfig, now time.Time) string {
	return Format(Seconds(cfg, now))
}

// MaxSeconds is the largest clock value kept; larger values are clamped
const MaxSeconds = math.MaxInt32

// Format renders whole seconds as MM:SS. Negative and NaN values render as
// 00:00; minutes grow past 99 up to MaxSeconds.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		return "00:00"
	}
	if seconds > MaxSeconds {
		seconds = MaxSeconds
	}

	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// toMillis keeps clock arithmetic exact at millisecond precision
func toMillis(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}
