package command

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/repositories/localstore"
)

// DispatcherConfig holds configuration for a client's command dispatcher
type DispatcherConfig struct {
	RoomRepository roomRepo.Repository
	Effects        Effects

	// LocalStore keeps the display history of processed commands
	LocalStore localstore.Store

	Clock clock.Clock
}

// Dispatcher consumes the command queue on behalf of one client. It
// remembers what it executed so a command seen again in a later snapshot,
// before its deletion propagated, is not executed twice. A Dispatcher is
// owned by one goroutine.
type Dispatcher struct {
	roomRepo roomRepo.Repository
	effects  Effects
	store    localstore.Store
	clock    clock.Clock
	seen     map[string]bool
}

// NewDispatcher creates a new command dispatcher
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.Effects == nil {
		return nil, ErrNilEffects
	}

	if cfg.LocalStore == nil {
		return nil, ErrNilLocalStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &Dispatcher{
		roomRepo: cfg.RoomRepository,
		effects:  cfg.Effects,
		store:    cfg.LocalStore,
		clock:    cfg.Clock,
		seen:     map[string]bool{},
	}, nil
}

// Dispatch executes every command addressed to this client, oldest first,
// records it in the local history and deletes it from the room record.
// Effect, history and delete failures are logged and never stop the loop.
func (d *Dispatcher) Dispatch(ctx context.Context, input *DispatchInput) (*DispatchOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if input.SelfID == "" {
		return nil, ErrIdentityRequired
	}

	pending := slices.Clone(input.Notifications)
	slices.SortStableFunc(pending, func(a, b *models.Notification) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	// Ids absent from the snapshot were deleted for good
	present := make(map[string]bool, len(pending))
	for _, n := range pending {
		present[n.ID] = true
	}
	for id := range d.seen {
		if !present[id] {
			delete(d.seen, id)
		}
	}

	output := &DispatchOutput{}

	for _, n := range pending {
		if n.ID == "" || !n.IsFor(input.SelfID) || d.seen[n.ID] {
			continue
		}
		d.seen[n.ID] = true

		logger := log.With().
			Str("room_id", input.RoomID).
			Str("player_id", input.SelfID).
			Str("notification_id", n.ID).
			Str("type", string(n.Type)).
			Logger()

		if err := d.execute(ctx, n); err != nil {
			logger.Warn().Err(err).Msg("command effect failed")
		}

		err := d.store.AppendHistory(ctx, &models.HistoryEntry{
			NotificationID: n.ID,
			Type:           n.Type,
			Text:           describe(n),
			ReceivedAt:     d.clock.Now(),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to record command history")
		}

		err = d.roomRepo.Remove(ctx, &roomRepo.RemoveInput{
			RoomID: input.RoomID,
			Path:   notificationsPath + "/" + n.ID,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to delete command")
		}

		output.Executed = append(output.Executed, n.ID)
	}

	return output, nil
}

func (d *Dispatcher) execute(ctx context.Context, n *models.Notification) error {
	switch n.Type {
	case models.NotificationTypeSound:
		return d.effects.PlaySound(ctx, n.Payload.SoundID)
	case models.NotificationTypeVibration:
		return d.effects.Vibrate(ctx, time.Duration(n.Payload.DurationMs)*time.Millisecond)
	case models.NotificationTypeDivineVoice:
		return d.effects.Speak(ctx, n.Payload.Text)
	case models.NotificationTypeGlobalMessage:
		return d.effects.ShowBanner(ctx, n.Payload.Text)
	}
	return fmt.Errorf("%w: %q", ErrInvalidType, n.Type)
}

// describe is the history line shown for a command
func describe(n *models.Notification) string {
	switch n.Type {
	case models.NotificationTypeSound:
		return n.Payload.SoundID
	case models.NotificationTypeVibration:
		return fmt.Sprintf("%dms", n.Payload.DurationMs)
	}
	return n.Payload.Text
}
