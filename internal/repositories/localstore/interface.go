package localstore

import (
	"context"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// MaxHistory bounds the locally retained notification history
const MaxHistory = 50

// Store is the client's persisted local state. It lives outside the shared
// room record and is never treated as a source of truth for it.
type Store interface {
	// LoadIdentity returns the persisted identity, or nil when there is none
	LoadIdentity(ctx context.Context) (*models.Identity, error)

	// SaveIdentity persists the identity, replacing any previous one
	SaveIdentity(ctx context.Context, identity *models.Identity) error

	// ClearIdentity forgets the persisted identity
	ClearIdentity(ctx context.Context) error

	// AppendHistory records a processed command, dropping the oldest beyond MaxHistory
	AppendHistory(ctx context.Context, entry *models.HistoryEntry) error

	// History returns the retained entries, newest first
	History(ctx context.Context) ([]*models.HistoryEntry, error)
}

// prepend adds an entry at the front and trims to MaxHistory
func prepend(history []*models.HistoryEntry, entry *models.HistoryEntry) []*models.HistoryEntry {
	next := make([]*models.HistoryEntry, 0, min(len(history)+1, MaxHistory))
	next = append(next, entry)
	for _, e := range history {
		if len(next) == MaxHistory {
			break
		}
		next = append(next, e)
	}
	return next
}
