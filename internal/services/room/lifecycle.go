package room

import (
	"context"
	"slices"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

var optionLists = []models.OptionList{
	models.OptionListRoles,
	models.OptionListPlayerStates,
	models.OptionListPublicStates,
	models.OptionListGlobalStates,
}

// CreateRoom seeds catalog defaults for every top-level key the room lacks.
// Existing keys, including players who already logged in, are left alone.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return nil, err
	}

	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	lists := map[models.OptionList][]string{
		models.OptionListRoles:        s.catalog.Roles,
		models.OptionListPlayerStates: s.catalog.PlayerStates,
		models.OptionListPublicStates: s.catalog.PublicStates,
		models.OptionListGlobalStates: s.catalog.GlobalStates,
	}

	seed := map[string]any{
		"status":      string(models.RoomStatusWaiting),
		"gamePhase":   0,
		"clockConfig": snapshot.EncodeClock(models.ClockConfig{Mode: models.ClockModeStatic}),
		"tickerText":  "",
		"tickerSpeed": DefaultTickerSpeed,
		"globalState": "",
	}
	for list, labels := range lists {
		seed[string(list)] = snapshot.EncodeSet(labels)
		seed[list.DefaultKey()] = snapshot.EncodeSet(labels)
	}

	values := map[string]any{}
	for key, value := range seed {
		if _, ok := out.Document.Data[key]; !ok {
			values[key] = value
		}
	}

	seeded := make([]string, 0, len(values))
	for key := range values {
		seeded = append(seeded, key)
	}
	sort.Strings(seeded)

	if len(values) == 0 {
		return &CreateRoomOutput{Seeded: seeded}, nil
	}

	if err := s.update(ctx, input.RoomID, values); err != nil {
		return nil, err
	}

	log.Info().Str("room_id", input.RoomID).Strs("keys", seeded).Msg("room seeded")

	return &CreateRoomOutput{Seeded: seeded}, nil
}

// SetStatus moves the room to a status
func (s *service) SetStatus(ctx context.Context, input *SetStatusInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if !input.Status.IsValid() {
		return ErrInvalidStatus
	}

	return s.update(ctx, input.RoomID, map[string]any{
		"status": string(input.Status),
	})
}

// StartGame drops stale votes, selects the winner and starts it: the
// current option lists become the baseline EndGame retracts to, every
// player's ready flag is reset and the votes are cleared
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return nil, err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.Status == models.RoomStatusPlaying {
		return nil, ErrInvalidRoomState
	}

	tally, err := s.voteService.Tally(ctx, &vote.TallyInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	values := map[string]any{
		"status":      string(models.RoomStatusPlaying),
		"gamePhase":   1,
		"currentGame": tally.WinnerID,
		"votes":       nil,
	}
	for _, list := range optionLists {
		values[list.DefaultKey()] = snapshot.EncodeSet(room.Options(list))
	}
	for _, p := range room.Players {
		values[playerPath(p.ID, "ready")] = false
	}

	if err := s.update(ctx, input.RoomID, values); err != nil {
		return nil, err
	}

	log.Info().Str("room_id", input.RoomID).Str("game_id", tally.WinnerID).Msg("game started")

	return &StartGameOutput{GameID: tally.WinnerID}, nil
}

// AdvancePhase moves the active game to its next step
func (s *service) AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return nil, err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.Status != models.RoomStatusPlaying {
		return nil, ErrInvalidRoomState
	}

	phase := room.GamePhase + 1
	if err := s.update(ctx, input.RoomID, map[string]any{"gamePhase": phase}); err != nil {
		return nil, err
	}

	return &AdvancePhaseOutput{GamePhase: phase}, nil
}

// EndGame returns the room to the lobby. Option lists go back to the
// baseline captured at StartGame and labels that no longer exist are
// stripped from players.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	if room.Status != models.RoomStatusPlaying {
		return ErrInvalidRoomState
	}

	values := map[string]any{
		"status":      string(models.RoomStatusWaiting),
		"gamePhase":   0,
		"currentGame": nil,
	}

	for _, list := range optionLists {
		values[string(list)] = snapshot.EncodeSet(room.Defaults(list))
	}

	if room.GlobalState != "" && !slices.Contains(room.DefaultGlobalStates, room.GlobalState) {
		values["globalState"] = ""
	}

	for _, p := range room.Players {
		values[playerPath(p.ID, "ready")] = false
		for _, list := range optionLists {
			field, ok := playerList(list)
			if !ok {
				continue
			}
			current := p.Labels(list)
			kept := intersect(current, room.Defaults(list))
			if len(kept) != len(current) {
				values[playerPath(p.ID, field)] = snapshot.EncodeSet(kept)
			}
		}
	}

	if err := s.update(ctx, input.RoomID, values); err != nil {
		return err
	}

	log.Info().Str("room_id", input.RoomID).Str("game_id", room.CurrentGame).Msg("game ended")
	return nil
}

// SoftReset clears votes, commands, chat and the clock and returns to the
// lobby. Players stay, with their ready flag reset.
func (s *service) SoftReset(ctx context.Context, input *SoftResetInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	clockConfig, err := clockService.Reset(room.ClockConfig, 0)
	if err != nil {
		return err
	}

	values := map[string]any{
		"status":        string(models.RoomStatusWaiting),
		"gamePhase":     0,
		"currentGame":   nil,
		"globalState":   "",
		"clockConfig":   snapshot.EncodeClock(clockConfig),
		"votes":         nil,
		"notifications": nil,
		"channels":      nil,
		"chat":          nil,
		"chatRooms":     nil,
		"typing":        nil,
	}
	for _, p := range room.Players {
		values[playerPath(p.ID, "ready")] = false
	}

	if err := s.update(ctx, input.RoomID, values); err != nil {
		return err
	}

	log.Info().Str("room_id", input.RoomID).Msg("room reset")
	return nil
}

// Shutdown closes the room. Every player except the operator is removed,
// which logs their clients out.
func (s *service) Shutdown(ctx context.Context, input *ShutdownInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	values := map[string]any{
		"status":        string(models.RoomStatusShutdown),
		"votes":         nil,
		"notifications": nil,
		"typing":        nil,
	}
	for _, p := range room.Players {
		if !p.IsGM {
			values["players/"+p.ID] = nil
		}
	}

	if err := s.update(ctx, input.RoomID, values); err != nil {
		return err
	}

	log.Info().Str("room_id", input.RoomID).Msg("room shut down")
	return nil
}
