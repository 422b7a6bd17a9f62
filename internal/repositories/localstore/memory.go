package localstore

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Memory keeps local state in process memory. The gateway uses one per
// browser connection, seeded from what the browser persisted.
type Memory struct {
	mu       sync.Mutex
	identity *models.Identity
	history  []*models.HistoryEntry
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadIdentity(ctx context.Context) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.identity == nil {
		return nil, nil
	}
	identity := *m.identity
	return &identity, nil
}

func (m *Memory) SaveIdentity(ctx context.Context, identity *models.Identity) error {
	if identity == nil || identity.ID == "" {
		return ErrIdentityRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *identity
	m.identity = &saved
	return nil
}

func (m *Memory) ClearIdentity(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = nil
	return nil
}

func (m *Memory) AppendHistory(ctx context.Context, entry *models.HistoryEntry) error {
	if entry == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = prepend(m.history, entry)
	return nil
}

func (m *Memory) History(ctx context.Context) ([]*models.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.history), nil
}
