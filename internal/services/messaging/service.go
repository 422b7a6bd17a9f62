// Package messaging holds the player-facing wording of the room.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/roomsync/internal/engine"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/room"
	"github.com/KirkDiggler/roomsync/internal/services/session"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

// Config holds configuration for the messaging service
type Config struct {
	// Rand picks between message variants; defaults to a time-seeded source
	Rand *rand.Rand
}

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{rand: r}, nil
}

// classification maps sentinel errors to a code and message variants
type classification struct {
	errs     []error
	code     ErrorCode
	messages []string
}

var classifications = []classification{
	{
		errs: []error{engine.ErrNotLoggedIn, room.ErrActorRequired, session.ErrIdentityRequired, command.ErrIdentityRequired},
		code: ErrorCodeNotLoggedIn,
		messages: []string{
			"Primero tienes que entrar en la sala.",
			"¿Quién eres? Entra con tu apodo para seguir.",
		},
	},
	{
		errs: []error{room.ErrNotOperator, command.ErrNotOperator},
		code: ErrorCodeNotOperator,
		messages: []string{
			"Solo el máster puede hacer eso.",
			"Eso es cosa del máster.",
		},
	},
	{
		errs: []error{room.ErrForbidden, room.ErrCannotExpelSelf},
		code: ErrorCodeForbidden,
		messages: []string{
			"No puedes cambiar eso.",
			"Eso no te corresponde.",
		},
	},
	{
		errs: []error{room.ErrPlayerNotFound, room.ErrOptionNotFound, room.ErrChatRoomNotFound, vote.ErrVoterNotFound, vote.ErrUnknownGame, command.ErrUnknownSound},
		code: ErrorCodeNotFound,
		messages: []string{
			"Eso ya no existe en la sala.",
			"No encontramos lo que buscas.",
		},
	},
	{
		errs: []error{room.ErrOptionExists, engine.ErrAlreadyLoggedIn, roomRepo.ErrWriteConflict},
		code: ErrorCodeConflict,
		messages: []string{
			"Alguien se te adelantó. Inténtalo otra vez.",
			"Eso ya está en la lista.",
		},
	},
	{
		errs: []error{room.ErrInvalidRoomState},
		code: ErrorCodeInvalidState,
		messages: []string{
			"No se puede hacer eso en este momento de la partida.",
			"Ahora no toca. Espera al siguiente momento.",
		},
	},
	{
		errs: []error{clockService.ErrClockRunning, clockService.ErrClockNotRunning, clockService.ErrClockNotPaused},
		code: ErrorCodeClockRunning,
		messages: []string{
			"Para el reloj antes de cambiarlo.",
			"El reloj no está en el estado adecuado.",
		},
	},
	{
		errs: []error{room.ErrInvalidChannel},
		code: ErrorCodeInvalidChannel,
		messages: []string{
			"No puedes escribir en ese canal.",
			"Ese canal no es para ti.",
		},
	},
	{
		errs: []error{
			ErrInvalidRequest,
			room.ErrNicknameRequired, room.ErrInvalidStatus, room.ErrInvalidOptionList, room.ErrOptionRequired,
			room.ErrInvalidTickerSpeed, room.ErrMessageRequired, room.ErrChatRoomNameRequired,
			clockService.ErrInvalidMode, clockService.ErrInvalidBaseTime,
			command.ErrInvalidType, command.ErrInvalidDuration, command.ErrTextRequired,
			session.ErrNicknameRequired, vote.ErrVoterRequired,
		},
		code: ErrorCodeInvalidRequest,
		messages: []string{
			"Falta algo o hay un dato que no encaja.",
			"Revisa lo que has escrito e inténtalo de nuevo.",
		},
	},
	{
		errs: []error{engine.ErrStopped, context.DeadlineExceeded, context.Canceled},
		code: ErrorCodeUnavailable,
		messages: []string{
			"La sala no responde. Inténtalo en un momento.",
		},
	},
}

var internalMessages = []string{
	"Algo ha fallado. Inténtalo otra vez.",
	"La sala se ha atascado. Vuelve a probar.",
}

// GetErrorMessage classifies an error by the sentinels it wraps
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, ErrNilError
	}

	for _, c := range classifications {
		for _, target := range c.errs {
			if errors.Is(input.Err, target) {
				return &GetErrorMessageOutput{
					Code:    c.code,
					Message: s.pick(c.messages),
				}, nil
			}
		}
	}

	return &GetErrorMessageOutput{
		Code:    ErrorCodeInternal,
		Message: s.pick(internalMessages),
	}, nil
}

// GetStatusMessage describes the room status for the lobby and game screens
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	switch input.Status {
	case models.RoomStatusWaiting:
		messages = []string{
			"Esperando a que empiece la partida.",
			"Todos al patio. La partida empieza pronto.",
		}
	case models.RoomStatusPlaying:
		game := input.GameName
		if game == "" {
			game = "la partida"
		}
		messages = []string{
			fmt.Sprintf("Jugando a %s, fase %d.", game, input.Phase),
		}
	case models.RoomStatusShutdown:
		messages = []string{
			"La sala está cerrada. ¡Gracias por jugar!",
		}
	default:
		messages = []string{
			"Preparando la sala.",
		}
	}

	return &GetStatusMessageOutput{Message: s.pick(messages)}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
