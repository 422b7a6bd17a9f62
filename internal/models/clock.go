package models

import "time"

// ClockMode selects how the derived clock moves
type ClockMode string

const (
	// ClockModeStatic always shows the base time
	ClockModeStatic ClockMode = "static"

	// ClockModeCountdown counts down from the base time to zero
	ClockModeCountdown ClockMode = "countdown"

	// ClockModeStopwatch counts up from the base time
	ClockModeStopwatch ClockMode = "stopwatch"
)

// IsValid reports whether the mode is one of the known values
func (m ClockMode) IsValid() bool {
	switch m {
	case ClockModeStatic, ClockModeCountdown, ClockModeStopwatch:
		return true
	}
	return false
}

// ClockConfig is the shared clock configuration. It is a value type and is
// always replaced wholesale in the room record.
//
// StartTime is non-nil iff IsRunning. PausedAt is set only while paused.
type ClockConfig struct {
	Mode ClockMode

	// BaseTime is the starting value in seconds
	BaseTime float64

	IsRunning bool

	// StartTime is the shared origin all clients derive elapsed time from
	StartTime *time.Time

	// PausedAt is when the clock was last paused
	PausedAt *time.Time
}

// Equal reports whether two configurations are identical
func (c ClockConfig) Equal(other ClockConfig) bool {
	return c.Mode == other.Mode &&
		c.BaseTime == other.BaseTime &&
		c.IsRunning == other.IsRunning &&
		timePtrEqual(c.StartTime, other.StartTime) &&
		timePtrEqual(c.PausedAt, other.PausedAt)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
