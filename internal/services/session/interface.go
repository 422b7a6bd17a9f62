package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsync/internal/services/session Service

import "context"

// Service establishes and restores a client's anonymous identity
type Service interface {
	// Restore re-establishes a persisted identity, or returns none when it is absent or stale
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// Login signs in, persists the identity and writes a fresh player record
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout marks the player offline, signs out and forgets the persisted identity
	Logout(ctx context.Context, input *LogoutInput) error

	// StartHeartbeat refreshes lastSeen until stopped, then marks the player offline
	StartHeartbeat(ctx context.Context, input *HeartbeatInput) (*Heartbeat, error)

	// PurgeStale removes players not seen within the retention window
	PurgeStale(ctx context.Context, input *PurgeStaleInput) (*PurgeStaleOutput, error)
}
