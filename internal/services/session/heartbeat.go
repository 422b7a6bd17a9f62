package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Heartbeat keeps one player's lastSeen fresh while its client is connected
type Heartbeat struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartHeartbeat refreshes lastSeen on every interval until Stop is called or
// ctx is done, then marks the player offline
func (s *service) StartHeartbeat(ctx context.Context, input *HeartbeatInput) (*Heartbeat, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if input.PlayerID == "" {
		return nil, ErrIdentityRequired
	}

	hb := &Heartbeat{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	ticker := s.clock.NewTicker(s.heartbeatInterval)

	go func() {
		defer close(hb.done)
		defer ticker.Stop()

		logger := log.With().Str("room_id", input.RoomID).Str("player_id", input.PlayerID).Logger()

		for {
			select {
			case <-ctx.Done():
				s.finish(input)
				return
			case <-hb.stop:
				s.finish(input)
				return
			case <-ticker.Chan():
				_, err := s.touch(ctx, input.RoomID, input.PlayerID, models.PlayerStatusOnline)
				if err != nil && ctx.Err() == nil {
					logger.Warn().Err(err).Msg("heartbeat failed")
				}
			}
		}
	}()

	return hb, nil
}

// finish writes the offline status on a fresh context since the client's
// context is usually already cancelled
func (s *service) finish(input *HeartbeatInput) {
	ctx, cancel := context.WithTimeout(context.Background(), offlineWriteTimeout)
	defer cancel()

	if err := s.markOffline(ctx, input.RoomID, input.PlayerID); err != nil {
		log.Warn().Err(err).Str("room_id", input.RoomID).Str("player_id", input.PlayerID).Msg("failed to mark player offline")
	}
}

// Stop ends the heartbeat and waits for the offline write
func (h *Heartbeat) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// Done is closed once the heartbeat has finished
func (h *Heartbeat) Done() <-chan struct{} {
	return h.done
}
