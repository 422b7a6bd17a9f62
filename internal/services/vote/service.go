package vote

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
)

// Config holds configuration for the vote service
type Config struct {
	// RoomRepository is the shared room record
	RoomRepository roomRepo.Repository

	// Catalog declares the games and their tie-break order
	Catalog *catalog.Catalog
}

// service implements the Service interface
type service struct {
	roomRepo roomRepo.Repository
	catalog  *catalog.Catalog
}

// NewService creates a new vote service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	return &service{
		roomRepo: cfg.RoomRepository,
		catalog:  cfg.Catalog,
	}, nil
}

// ToggleVote moves the voter's single vote to a game, or withdraws it. The
// whole votes map is written as one value so no reader observes a voter in
// two games. Votes are accepted in any room status.
func (s *service) ToggleVote(ctx context.Context, input *ToggleVoteInput) (*ToggleVoteOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if input.VoterID == "" {
		return nil, ErrVoterRequired
	}

	if !s.catalog.HasGame(input.GameID) {
		return nil, ErrUnknownGame
	}

	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}
	room := snapshot.Normalize(out.Document)

	if room.Player(input.VoterID) == nil {
		return nil, ErrVoterNotFound
	}

	votes, voted := Toggle(room.Votes, input.VoterID, input.GameID)

	err = s.roomRepo.Update(ctx, &roomRepo.UpdateInput{
		RoomID: input.RoomID,
		Values: map[string]any{
			"votes": snapshot.EncodeVotes(votes),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("room_id", input.RoomID).
		Str("player_id", input.VoterID).
		Str("game_id", input.GameID).
		Bool("voted", voted).
		Msg("vote toggled")

	return &ToggleVoteOutput{
		Voted: voted,
		Votes: votes,
	}, nil
}

// Tally sanitizes the current votes against the player set and selects the winner
func (s *service) Tally(ctx context.Context, input *TallyInput) (*TallyOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}
	room := snapshot.Normalize(out.Document)

	votes := Sanitize(room.Votes, room.Players)

	return &TallyOutput{
		WinnerID: SelectWinner(votes, s.catalog.GameIDs(), s.catalog.DefaultGame),
		Votes:    votes,
	}, nil
}
