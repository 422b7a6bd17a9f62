package session

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// RestoreInput contains parameters for restoring a session
type RestoreInput struct {
	RoomID string
}

// RestoreOutput contains the restored identity
type RestoreOutput struct {
	// Identity is nil when the client must log in
	Identity *models.Identity
}

// LoginInput contains parameters for logging in
type LoginInput struct {
	RoomID   string
	Nickname string

	// IsGM requests the operator role; credentials are checked elsewhere
	IsGM bool
}

// LoginOutput contains the new identity
type LoginOutput struct {
	Identity *models.Identity
}

// LogoutInput contains parameters for logging out
type LogoutInput struct {
	RoomID   string
	Identity *models.Identity
}

// HeartbeatInput contains parameters for a heartbeat
type HeartbeatInput struct {
	RoomID   string
	PlayerID string
}

// PurgeStaleInput contains parameters for purging stale players
type PurgeStaleInput struct {
	RoomID string

	// KeepID is never purged, normally the caller
	KeepID string
}

// PurgeStaleOutput lists the purged players
type PurgeStaleOutput struct {
	Removed []string
}
