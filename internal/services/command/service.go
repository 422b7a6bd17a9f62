// Package command implements the one-shot command bus: the operator appends
// commands to the room record and every eligible client executes and deletes
// them. Delivery is at most once per client; removal is idempotent.
package command

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
)

// notificationsPath is where the command queue lives in the room record
const notificationsPath = "notifications"

// Config holds configuration for the command service
type Config struct {
	RoomRepository roomRepo.Repository

	// Catalog declares the playable sounds
	Catalog *catalog.Catalog

	Clock clock.Clock
}

// service implements the Service interface
type service struct {
	roomRepo roomRepo.Repository
	catalog  *catalog.Catalog
	clock    clock.Clock
}

// NewService creates a new command service
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

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		roomRepo: cfg.RoomRepository,
		catalog:  cfg.Catalog,
		clock:    cfg.Clock,
	}, nil
}

// Enqueue validates and appends a command with a fresh id and timestamp
func (s *service) Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if input.Actor == nil || !input.Actor.IsGM {
		return nil, ErrNotOperator
	}

	if err := s.validate(input.Type, input.Payload); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:           input.Type,
		Payload:        input.Payload,
		TargetPlayerID: input.TargetPlayerID,
		Timestamp:      s.clock.Now(),
	}

	out, err := s.roomRepo.Push(ctx, &roomRepo.PushInput{
		RoomID: input.RoomID,
		Path:   notificationsPath,
		Value:  snapshot.EncodeNotification(notification),
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("room_id", input.RoomID).
		Str("notification_id", out.ID).
		Str("type", string(input.Type)).
		Str("target_player_id", input.TargetPlayerID).
		Msg("command enqueued")

	return &EnqueueOutput{NotificationID: out.ID}, nil
}

func (s *service) validate(t models.NotificationType, payload models.NotificationPayload) error {
	switch t {
	case models.NotificationTypeSound:
		if !s.catalog.HasSound(payload.SoundID) {
			return ErrUnknownSound
		}
	case models.NotificationTypeVibration:
		if payload.DurationMs <= 0 {
			return ErrInvalidDuration
		}
	case models.NotificationTypeDivineVoice, models.NotificationTypeGlobalMessage:
		if payload.Text == "" {
			return ErrTextRequired
		}
	default:
		return ErrInvalidType
	}
	return nil
}
