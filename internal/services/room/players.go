package room

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

// ToggleLabel flips a role, private state or public state on a player. The
// label must exist in the room's option list.
func (s *service) ToggleLabel(ctx context.Context, input *ToggleLabelInput) (*ToggleLabelOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return nil, err
	}

	if !labelList(input.List) {
		return nil, ErrInvalidOptionList
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(room.Options(input.List), input.Label) {
		return nil, ErrOptionNotFound
	}

	player := room.Player(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	labels := player.Labels(input.List)
	active := !slices.Contains(labels, input.Label)
	if active {
		labels = append(slices.Clone(labels), input.Label)
	} else {
		labels = without(labels, input.Label)
	}

	field, _ := playerList(input.List)
	err = s.updatePlayer(ctx, input.RoomID, player.ID, map[string]any{
		playerPath(player.ID, field): snapshot.EncodeSet(labels),
	})
	if err != nil {
		return nil, err
	}

	return &ToggleLabelOutput{Active: active}, nil
}

// SetReady sets a player's ready flag; players may only set their own
func (s *service) SetReady(ctx context.Context, input *SetReadyInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireSelfOrOperator(input.Scope, input.PlayerID); err != nil {
		return err
	}

	if err := s.requirePlayer(ctx, input.RoomID, input.PlayerID); err != nil {
		return err
	}

	return s.updatePlayer(ctx, input.RoomID, input.PlayerID, map[string]any{
		playerPath(input.PlayerID, "ready"): input.Ready,
	})
}

// SetNickname renames a player; players may only rename themselves
func (s *service) SetNickname(ctx context.Context, input *SetNicknameInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireSelfOrOperator(input.Scope, input.PlayerID); err != nil {
		return err
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return ErrNicknameRequired
	}

	if err := s.requirePlayer(ctx, input.RoomID, input.PlayerID); err != nil {
		return err
	}

	return s.updatePlayer(ctx, input.RoomID, input.PlayerID, map[string]any{
		playerPath(input.PlayerID, "nickname"): nickname,
	})
}

// ExpelPlayer removes a player record, which logs the player's client out
func (s *service) ExpelPlayer(ctx context.Context, input *ExpelPlayerInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if input.PlayerID == input.Actor.ID {
		return ErrCannotExpelSelf
	}

	if err := s.requirePlayer(ctx, input.RoomID, input.PlayerID); err != nil {
		return err
	}

	if err := s.update(ctx, input.RoomID, map[string]any{"players/" + input.PlayerID: nil}); err != nil {
		return err
	}

	log.Info().Str("room_id", input.RoomID).Str("player_id", input.PlayerID).Msg("player expelled")
	return nil
}

// ToggleVote moves the actor's single vote to a game, or withdraws it
func (s *service) ToggleVote(ctx context.Context, input *ToggleVoteInput) (*ToggleVoteOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := validateScope(input.Scope); err != nil {
		return nil, err
	}

	out, err := s.voteService.ToggleVote(ctx, &vote.ToggleVoteInput{
		RoomID:  input.RoomID,
		VoterID: input.Actor.ID,
		GameID:  input.GameID,
	})
	if err != nil {
		return nil, err
	}

	return &ToggleVoteOutput{Voted: out.Voted}, nil
}

func (s *service) requirePlayer(ctx context.Context, roomID, playerID string) error {
	room, err := s.load(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Player(playerID) == nil {
		return ErrPlayerNotFound
	}
	return nil
}
