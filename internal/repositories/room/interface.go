package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roomsync/internal/repositories/room Repository

import (
	"context"
)

// Repository is the shared room record. Writes are last-writer-wins at the
// granularity of the written paths; there are no cross-client locks.
type Repository interface {
	// Get reads the current document
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Subscribe delivers the full document now and after every change until ctx is done
	Subscribe(ctx context.Context, input *SubscribeInput) error

	// Replace swaps the whole document
	Replace(ctx context.Context, input *ReplaceInput) error

	// Update patches several paths in one write; a nil value deletes the path
	Update(ctx context.Context, input *UpdateInput) error

	// Remove deletes a single path; removing an absent path is a no-op
	Remove(ctx context.Context, input *RemoveInput) error

	// Push appends a value under a generated, time-ordered id
	Push(ctx context.Context, input *PushInput) (*PushOutput, error)
}
