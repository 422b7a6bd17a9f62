package messaging

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// ErrorCode is the stable identifier clients branch on
type ErrorCode string

const (
	ErrorCodeNotLoggedIn    ErrorCode = "not_logged_in"
	ErrorCodeNotOperator    ErrorCode = "not_operator"
	ErrorCodeForbidden      ErrorCode = "forbidden"
	ErrorCodeNotFound       ErrorCode = "not_found"
	ErrorCodeConflict       ErrorCode = "conflict"
	ErrorCodeInvalidState   ErrorCode = "invalid_state"
	ErrorCodeClockRunning   ErrorCode = "clock_running"
	ErrorCodeInvalidChannel ErrorCode = "invalid_channel"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeUnavailable    ErrorCode = "unavailable"
	ErrorCodeInternal       ErrorCode = "internal"
)

// GetErrorMessageInput contains parameters for describing an error
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the description of an error
type GetErrorMessageOutput struct {
	Code    ErrorCode
	Message string
}

// GetStatusMessageInput contains parameters for describing the room status
type GetStatusMessageInput struct {
	Status models.RoomStatus

	// GameName is the display name of the current game, if any
	GameName string

	// Phase is the current game phase
	Phase int
}

// GetStatusMessageOutput contains the status line
type GetStatusMessageOutput struct {
	Message string
}
