package vote

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsync/internal/services/vote Service

import "context"

// Service defines the interface for vote operations
type Service interface {
	// ToggleVote moves the voter's single vote to a game, or withdraws it
	ToggleVote(ctx context.Context, input *ToggleVoteInput) (*ToggleVoteOutput, error)

	// Tally sanitizes the current votes and selects the winning game
	Tally(ctx context.Context, input *TallyInput) (*TallyOutput, error)
}
