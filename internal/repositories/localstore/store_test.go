package localstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
	ctx      context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.store = s.newStore()
	s.ctx = context.Background()
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func() Store { return NewMemory() }})
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	n := 0
	suite.Run(t, &StoreTestSuite{newStore: func() Store {
		n++
		f, err := NewFile(filepath.Join(dir, fmt.Sprintf("state-%d", n), "client.yaml"))
		if err != nil {
			t.Fatalf("new file store: %v", err)
		}
		return f
	}})
}

func (s *StoreTestSuite) TestIdentityRoundTrip() {
	identity, err := s.store.LoadIdentity(s.ctx)
	s.Require().NoError(err)
	s.Nil(identity)

	s.Require().NoError(s.store.SaveIdentity(s.ctx, &models.Identity{ID: "p1", Nickname: "Ana", IsGM: true}))

	identity, err = s.store.LoadIdentity(s.ctx)
	s.Require().NoError(err)
	s.Equal(&models.Identity{ID: "p1", Nickname: "Ana", IsGM: true}, identity)

	s.Require().NoError(s.store.ClearIdentity(s.ctx))

	identity, err = s.store.LoadIdentity(s.ctx)
	s.Require().NoError(err)
	s.Nil(identity)
}

func (s *StoreTestSuite) TestSaveIdentityRequiresID() {
	s.ErrorIs(s.store.SaveIdentity(s.ctx, &models.Identity{Nickname: "x"}), ErrIdentityRequired)
}

func (s *StoreTestSuite) TestHistoryIsBoundedNewestFirst() {
	base := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	for i := 0; i < MaxHistory+5; i++ {
		s.Require().NoError(s.store.AppendHistory(s.ctx, &models.HistoryEntry{
			NotificationID: fmt.Sprintf("n%d", i),
			Type:           models.NotificationTypeSound,
			ReceivedAt:     base.Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := s.store.History(s.ctx)
	s.Require().NoError(err)
	s.Len(history, MaxHistory)
	s.Equal(fmt.Sprintf("n%d", MaxHistory+4), history[0].NotificationID)
	s.Equal("n5", history[MaxHistory-1].NotificationID)
}
