package command

//go:generate mockgen -package=mocks -destination=mocks/mock_command.go github.com/KirkDiggler/roomsync/internal/services/command Service,Effects

import (
	"context"
	"time"
)

// Service is the operator side of the command bus
type Service interface {
	// Enqueue appends a command targeted at one player or broadcast to all
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)
}

// Effects executes commands on the local device
type Effects interface {
	// PlaySound plays a catalog sound
	PlaySound(ctx context.Context, soundID string) error

	// Vibrate vibrates the device
	Vibrate(ctx context.Context, duration time.Duration) error

	// Speak displays and speaks a message
	Speak(ctx context.Context, text string) error

	// ShowBanner displays a broadcast banner
	ShowBanner(ctx context.Context, text string) error
}
