package clock

import (
	"math"
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Transitions are pure: each returns the whole next configuration, which the
// caller writes back as one value.

// Start runs a stopped or paused clock from now
func Start(cfg models.ClockConfig, now time.Time) (models.ClockConfig, error) {
	if cfg.IsRunning {
		return cfg, ErrClockRunning
	}

	start := now
	cfg.IsRunning = true
	cfg.StartTime = &start
	cfg.PausedAt = nil
	return cfg, nil
}

// Pause stops a running clock and folds the time run so far into the base,
// so a later Resume continues exactly where the clock stopped and the pause
// window is never counted
func Pause(cfg models.ClockConfig, now time.Time) (models.ClockConfig, error) {
	if !cfg.IsRunning || cfg.StartTime == nil {
		return cfg, ErrClockNotRunning
	}

	if cfg.Mode != models.ClockModeStatic {
		cfg.BaseTime = float64(toMillis(Seconds(cfg, now))) / 1000
	}

	paused := now
	cfg.IsRunning = false
	cfg.StartTime = nil
	cfg.PausedAt = &paused
	return cfg, nil
}

// Resume restarts a paused clock
func Resume(cfg models.ClockConfig, now time.Time) (models.ClockConfig, error) {
	if cfg.IsRunning {
		return cfg, ErrClockRunning
	}
	if cfg.PausedAt == nil {
		return cfg, ErrClockNotPaused
	}
	return Start(cfg, now)
}

// Reset stops the clock at the given base time, keeping the mode
func Reset(cfg models.ClockConfig, baseTime float64) (models.ClockConfig, error) {
	if err := validateBase(baseTime); err != nil {
		return cfg, err
	}

	return models.ClockConfig{
		Mode:     cfg.Mode,
		BaseTime: baseTime,
	}, nil
}

// SetBase changes the base time of a stopped clock
func SetBase(cfg models.ClockConfig, baseTime float64) (models.ClockConfig, error) {
	if cfg.IsRunning {
		return cfg, ErrClockRunning
	}
	if err := validateBase(baseTime); err != nil {
		return cfg, err
	}

	cfg.BaseTime = baseTime
	cfg.PausedAt = nil
	return cfg, nil
}

// SetMode changes the mode of a stopped clock
func SetMode(cfg models.ClockConfig, mode models.ClockMode) (models.ClockConfig, error) {
	if cfg.IsRunning {
		return cfg, ErrClockRunning
	}
	if !mode.IsValid() {
		return cfg, ErrInvalidMode
	}

	cfg.Mode = mode
	return cfg, nil
}

func validateBase(baseTime float64) error {
	if math.IsNaN(baseTime) || baseTime < 0 || baseTime > MaxSeconds {
		return ErrInvalidBaseTime
	}
	return nil
}
