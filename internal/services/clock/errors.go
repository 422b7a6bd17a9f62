package clock

// ClockError is a custom error type for clock transition errors
type ClockError string

// Error implements the error interface
func (e ClockError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrClockRunning    ClockError = "clock is running"
	ErrClockNotRunning ClockError = "clock is not running"
	ErrClockNotPaused  ClockError = "clock is not paused"
	ErrInvalidMode     ClockError = "invalid clock mode"
	ErrInvalidBaseTime ClockError = "base time must be between 0 and 2147483647 seconds"
)
