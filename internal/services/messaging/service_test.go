package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roomsync/internal/engine"
	"github.com/KirkDiggler/roomsync/internal/models"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/room"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&Config{Rand: rand.New(rand.NewSource(1))})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) code(err error) ErrorCode {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: err})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
	return out.Code
}

func (s *MessagingServiceTestSuite) TestErrorCodes() {
	testCases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "operator only", err: room.ErrNotOperator, want: ErrorCodeNotOperator},
		{name: "command operator only", err: command.ErrNotOperator, want: ErrorCodeNotOperator},
		{name: "other player's record", err: room.ErrForbidden, want: ErrorCodeForbidden},
		{name: "not logged in", err: engine.ErrNotLoggedIn, want: ErrorCodeNotLoggedIn},
		{name: "clock running", err: clockService.ErrClockRunning, want: ErrorCodeClockRunning},
		{name: "wrapped channel error", err: fmt.Errorf("send: %w", room.ErrInvalidChannel), want: ErrorCodeInvalidChannel},
		{name: "malformed request", err: fmt.Errorf("%w: unknown action", ErrInvalidRequest), want: ErrorCodeInvalidRequest},
		{name: "unknown sound", err: command.ErrUnknownSound, want: ErrorCodeNotFound},
		{name: "stopped client", err: engine.ErrStopped, want: ErrorCodeUnavailable},
		{name: "anything else", err: fmt.Errorf("failed to write room: connection reset"), want: ErrorCodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, s.code(tc.err))
		})
	}
}

func (s *MessagingServiceTestSuite) TestUnclassifiedErrorsGetRoomMessages() {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: fmt.Errorf("failed to write room: %d", i)})
		s.Require().NoError(err)
		s.Equal(ErrorCodeInternal, out.Code)
		s.Contains(internalMessages, out.Message)
		seen[out.Message] = true
	}
	s.Len(seen, len(internalMessages), "every variant is used")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessageRequiresError() {
	_, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{})
	s.ErrorIs(err, ErrNilError)
}

func (s *MessagingServiceTestSuite) TestStatusMessage() {
	out, err := s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{
		Status:   models.RoomStatusPlaying,
		GameName: "Asesino",
		Phase:    2,
	})
	s.Require().NoError(err)
	s.Equal("Jugando a Asesino, fase 2.", out.Message)

	out, err = s.service.GetStatusMessage(s.ctx, &GetStatusMessageInput{Status: models.RoomStatusShutdown})
	s.Require().NoError(err)
	s.Contains(out.Message, "cerrada")
}
