package room

import (
	"context"
	"slices"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
)

// AddOption appends a label to an option list
func (s *service) AddOption(ctx context.Context, input *AddOptionInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if !input.List.IsValid() {
		return ErrInvalidOptionList
	}

	label := normalizeLabel(input.Label)
	if label == "" {
		return ErrOptionRequired
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	options := room.Options(input.List)
	if slices.Contains(options, label) {
		return ErrOptionExists
	}

	return s.update(ctx, input.RoomID, map[string]any{
		string(input.List): snapshot.EncodeSet(append(slices.Clone(options), label)),
	})
}

// RenameOption renames a label in the list, its baseline, every player
// carrying it and the selected global state
func (s *service) RenameOption(ctx context.Context, input *RenameOptionInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if !input.List.IsValid() {
		return ErrInvalidOptionList
	}

	from, to := normalizeLabel(input.From), normalizeLabel(input.To)
	if from == "" || to == "" {
		return ErrOptionRequired
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	options := room.Options(input.List)
	if !slices.Contains(options, from) {
		return ErrOptionNotFound
	}
	if from == to {
		return nil
	}
	if slices.Contains(options, to) {
		return ErrOptionExists
	}

	values := map[string]any{
		string(input.List): snapshot.EncodeSet(replaced(options, from, to)),
	}

	if defaults := room.Defaults(input.List); slices.Contains(defaults, from) {
		values[input.List.DefaultKey()] = snapshot.EncodeSet(replaced(defaults, from, to))
	}

	if field, ok := playerList(input.List); ok {
		for _, p := range room.Players {
			if labels := p.Labels(input.List); slices.Contains(labels, from) {
				values[playerPath(p.ID, field)] = snapshot.EncodeSet(replaced(labels, from, to))
			}
		}
	} else if room.GlobalState == from {
		values["globalState"] = to
	}

	return s.update(ctx, input.RoomID, values)
}

// DeleteOption removes a label from the list, its baseline, every player
// carrying it and the selected global state
func (s *service) DeleteOption(ctx context.Context, input *DeleteOptionInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if !input.List.IsValid() {
		return ErrInvalidOptionList
	}

	label := normalizeLabel(input.Label)

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	options := room.Options(input.List)
	if !slices.Contains(options, label) {
		return ErrOptionNotFound
	}

	values := map[string]any{
		string(input.List): snapshot.EncodeSet(without(options, label)),
	}

	if defaults := room.Defaults(input.List); slices.Contains(defaults, label) {
		values[input.List.DefaultKey()] = snapshot.EncodeSet(without(defaults, label))
	}

	if field, ok := playerList(input.List); ok {
		for _, p := range room.Players {
			if labels := p.Labels(input.List); slices.Contains(labels, label) {
				values[playerPath(p.ID, field)] = snapshot.EncodeSet(without(labels, label))
			}
		}
	} else if room.GlobalState == label {
		values["globalState"] = ""
	}

	return s.update(ctx, input.RoomID, values)
}

// SetGlobalState selects the narrative label, or clears it
func (s *service) SetGlobalState(ctx context.Context, input *SetGlobalStateInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	label := normalizeLabel(input.Label)
	if label != "" {
		room, err := s.load(ctx, input.RoomID)
		if err != nil {
			return err
		}
		if !slices.Contains(room.GlobalStates, label) {
			return ErrOptionNotFound
		}
	}

	return s.update(ctx, input.RoomID, map[string]any{
		"globalState": label,
	})
}

// SetTicker sets the broadcast ticker text and scroll period
func (s *service) SetTicker(ctx context.Context, input *SetTickerInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	if input.Speed <= 0 {
		return ErrInvalidTickerSpeed
	}

	return s.update(ctx, input.RoomID, map[string]any{
		"tickerText":  input.Text,
		"tickerSpeed": input.Speed,
	})
}

// labelList reports whether a list can be toggled on players
func labelList(list models.OptionList) bool {
	_, ok := playerList(list)
	return ok
}
