package room

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/models"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
)

// transition computes the next clock configuration from the current one
type transition func(cfg models.ClockConfig) (models.ClockConfig, error)

// changeClock reads the clock, applies a transition and writes the whole
// configuration back
func (s *service) changeClock(ctx context.Context, scope Scope, next transition) error {
	if err := requireOperator(scope); err != nil {
		return err
	}

	room, err := s.load(ctx, scope.RoomID)
	if err != nil {
		return err
	}

	cfg, err := next(room.ClockConfig)
	if err != nil {
		return err
	}

	if err := s.update(ctx, scope.RoomID, map[string]any{"clockConfig": snapshot.EncodeClock(cfg)}); err != nil {
		return err
	}

	log.Debug().
		Str("room_id", scope.RoomID).
		Str("mode", string(cfg.Mode)).
		Float64("base_time", cfg.BaseTime).
		Bool("running", cfg.IsRunning).
		Msg("clock changed")
	return nil
}

// StartClock starts a stopped clock or resumes a paused one
func (s *service) StartClock(ctx context.Context, input *StartClockInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}
	now := s.clock.Now()
	return s.changeClock(ctx, input.Scope, func(cfg models.ClockConfig) (models.ClockConfig, error) {
		return clockService.Start(cfg, now)
	})
}

// PauseClock pauses a running clock
func (s *service) PauseClock(ctx context.Context, input *PauseClockInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}
	now := s.clock.Now()
	return s.changeClock(ctx, input.Scope, func(cfg models.ClockConfig) (models.ClockConfig, error) {
		return clockService.Pause(cfg, now)
	})
}

// ResetClock stops the clock at a base time
func (s *service) ResetClock(ctx context.Context, input *ResetClockInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}
	return s.changeClock(ctx, input.Scope, func(cfg models.ClockConfig) (models.ClockConfig, error) {
		return clockService.Reset(cfg, input.BaseTime)
	})
}

// SetClockBase changes the base time; rejected while the clock runs
func (s *service) SetClockBase(ctx context.Context, input *SetClockBaseInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}
	return s.changeClock(ctx, input.Scope, func(cfg models.ClockConfig) (models.ClockConfig, error) {
		return clockService.SetBase(cfg, input.BaseTime)
	})
}

// SetClockMode changes the mode; rejected while the clock runs
func (s *service) SetClockMode(ctx context.Context, input *SetClockModeInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}
	return s.changeClock(ctx, input.Scope, func(cfg models.ClockConfig) (models.ClockConfig, error) {
		return clockService.SetMode(cfg, input.Mode)
	})
}
