package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roomsync/internal/repositories/identity Repository

import (
	"context"
)

// Repository issues anonymous identities
type Repository interface {
	// SignInAnonymously returns a stable subject, reusing the previous one when it is still registered
	SignInAnonymously(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// SignOut forgets a subject
	SignOut(ctx context.Context, input *SignOutInput) error
}
