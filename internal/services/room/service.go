// Package room holds the action functions: the only code paths that write
// the shared room record. Writes are last-writer-wins per path; composite
// values (clock configuration, votes, option lists) are always written whole.
package room

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

// DefaultTickerSpeed is the ticker scroll period of a new room, in seconds
const DefaultTickerSpeed = 20.0

// Config holds configuration for the room service
type Config struct {
	RoomRepository roomRepo.Repository
	VoteService    vote.Service
	Catalog        *catalog.Catalog
	Clock          clock.Clock

	// UUIDGenerator creates chat room ids
	UUIDGenerator uuid.Generator
}

// service implements the Service interface
type service struct {
	roomRepo    roomRepo.Repository
	voteService vote.Service
	catalog     *catalog.Catalog
	clock       clock.Clock
	uuid        uuid.Generator
}

// NewService creates a new room service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.VoteService == nil {
		return nil, ErrNilVoteService
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		roomRepo:    cfg.RoomRepository,
		voteService: cfg.VoteService,
		catalog:     cfg.Catalog,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

func validateScope(scope Scope) error {
	if scope.RoomID == "" {
		return ErrRoomIDRequired
	}
	if scope.Actor == nil || scope.Actor.ID == "" {
		return ErrActorRequired
	}
	return nil
}

// requireOperator validates the scope and that the actor is the operator
func requireOperator(scope Scope) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	if !scope.Actor.IsGM {
		return ErrNotOperator
	}
	return nil
}

// requireSelfOrOperator validates the scope and that the actor may change the player's record
func requireSelfOrOperator(scope Scope, playerID string) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	if !scope.Actor.IsGM && scope.Actor.ID != playerID {
		return ErrForbidden
	}
	return nil
}

// load reads and normalizes the room
func (s *service) load(ctx context.Context, roomID string) (*models.Room, error) {
	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: roomID})
	if err != nil {
		return nil, err
	}
	return snapshot.Normalize(out.Document), nil
}

// update writes the values. Fields of a player whose record was removed
// before the write commits are dropped so the player is not recreated.
func (s *service) update(ctx context.Context, roomID string, values map[string]any) error {
	return s.roomRepo.Update(ctx, &roomRepo.UpdateInput{
		RoomID:      roomID,
		Values:      values,
		SkipMissing: playerRecords(values),
	})
}

// updatePlayer writes fields of a single player that must still exist
func (s *service) updatePlayer(ctx context.Context, roomID, playerID string, values map[string]any) error {
	err := s.roomRepo.Update(ctx, &roomRepo.UpdateInput{
		RoomID:        roomID,
		Values:        values,
		RequireExists: []string{"players/" + playerID},
	})
	if errors.Is(err, roomRepo.ErrPathNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

// playerRecords lists the player records whose fields the values write
func playerRecords(values map[string]any) []string {
	var records []string
	for path := range values {
		parts := strings.SplitN(path, "/", 3)
		if len(parts) < 3 || parts[0] != "players" {
			continue
		}
		record := parts[0] + "/" + parts[1]
		if !slices.Contains(records, record) {
			records = append(records, record)
		}
	}
	return records
}

func playerPath(playerID, field string) string {
	return "players/" + playerID + "/" + field
}

// playerList maps a per-player option list to its field; global states are not per player
func playerList(list models.OptionList) (string, bool) {
	switch list {
	case models.OptionListRoles, models.OptionListPlayerStates, models.OptionListPublicStates:
		return string(list), true
	}
	return "", false
}

func normalizeLabel(label string) string {
	return strings.TrimSpace(label)
}

func without(labels []string, label string) []string {
	return slices.DeleteFunc(slices.Clone(labels), func(l string) bool { return l == label })
}

func replaced(labels []string, from, to string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == from {
			l = to
		}
		if !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func intersect(labels, allowed []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if slices.Contains(allowed, l) {
			out = append(out, l)
		}
	}
	return out
}
