package command

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// LogEffects executes commands by logging them, for headless clients
type LogEffects struct{}

func (LogEffects) PlaySound(ctx context.Context, soundID string) error {
	log.Info().Str("sound_id", soundID).Msg("play sound")
	return nil
}

func (LogEffects) Vibrate(ctx context.Context, duration time.Duration) error {
	log.Info().Dur("duration", duration).Msg("vibrate")
	return nil
}

func (LogEffects) Speak(ctx context.Context, text string) error {
	log.Info().Str("text", text).Msg("divine voice")
	return nil
}

func (LogEffects) ShowBanner(ctx context.Context, text string) error {
	log.Info().Str("text", text).Msg("broadcast banner")
	return nil
}
