package snapshot

import (
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/stretchr/testify/suite"
)

type NormalizerTestSuite struct {
	suite.Suite
	testTime time.Time
}

func (s *NormalizerTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func (s *NormalizerTestSuite) normalize(data map[string]any) *models.Room {
	return Normalize(&room.Document{RoomID: "sala", Version: 7, Data: data})
}

func (s *NormalizerTestSuite) TestEmptyDocumentYieldsEmptyCollections() {
	r := s.normalize(nil)

	s.Equal("sala", r.ID)
	s.Equal(int64(7), r.Version)
	s.Equal(models.RoomStatusWaiting, r.Status)
	s.NotNil(r.Players)
	s.NotNil(r.Channels)
	s.NotNil(r.Votes)
	s.NotNil(r.Notifications)
	s.NotNil(r.ChatRooms)
	s.NotNil(r.Typing)
	s.Empty(r.Channels)
	s.Equal(models.ClockModeStatic, r.ClockConfig.Mode)
}

func (s *NormalizerTestSuite) TestNilDocument() {
	r := Normalize(nil)
	s.NotNil(r.Channels)
}

func (s *NormalizerTestSuite) TestMalformedNumbersBecomeZero() {
	r := s.normalize(map[string]any{
		"gamePhase":   math.NaN(),
		"tickerSpeed": "rápido",
		"clockConfig": map[string]any{"baseTime": math.Inf(1), "mode": "countdown"},
	})

	s.Equal(0, r.GamePhase)
	s.Equal(float64(0), r.TickerSpeed)
	s.Equal(float64(0), r.ClockConfig.BaseTime)
	s.Equal(models.ClockModeCountdown, r.ClockConfig.Mode)
}

func (s *NormalizerTestSuite) TestLegacyChatFoldsIntoGlobal() {
	r := s.normalize(map[string]any{
		"chat": map[string]any{
			"m1": map[string]any{"user": "Ana", "text": "hola", "timestamp": float64(1000)},
		},
	})

	s.Require().Len(r.Channels[models.GlobalChannel], 1)
	msg := r.Channels[models.GlobalChannel][0]
	s.Equal("m1", msg.ID)
	s.Equal("hola", msg.Text)
	s.Equal(models.GlobalChannel, msg.Channel)
	s.Equal(models.ChatRolePlayer, msg.Role)
}

func (s *NormalizerTestSuite) TestLegacyChatDoesNotOverwriteGlobal() {
	r := s.normalize(map[string]any{
		"chat": map[string]any{
			"old": map[string]any{"text": "viejo"},
		},
		"channels": map[string]any{
			"global": map[string]any{
				"new": map[string]any{"text": "nuevo"},
			},
		},
	})

	s.Require().Len(r.Channels[models.GlobalChannel], 1)
	s.Equal("nuevo", r.Channels[models.GlobalChannel][0].Text)
}

func (s *NormalizerTestSuite) TestMessagesKeepArrivalOrder() {
	r := s.normalize(map[string]any{
		"channels": map[string]any{
			"private_p1": map[string]any{
				"0002": map[string]any{"text": "segundo", "timestamp": float64(1000)},
				"0001": map[string]any{"text": "primero", "timestamp": float64(2000), "role": "gm"},
			},
		},
	})

	messages := r.Channels["private_p1"]
	s.Require().Len(messages, 2)
	s.Equal("primero", messages[0].Text)
	s.Equal(models.ChatRoleGM, messages[0].Role)
	s.Equal("segundo", messages[1].Text)

	sorted := models.SortMessages(messages)
	s.Equal("segundo", sorted[0].Text)
}

func (s *NormalizerTestSuite) TestPlayersAndSets() {
	r := s.normalize(map[string]any{
		"players": map[string]any{
			"p2": map[string]any{
				"nickname":     "Beto",
				"status":       "online",
				"lastSeen":     float64(s.testTime.UnixMilli()),
				"roles":        []any{"Lobo", "Lobo", "Vidente"},
				"publicStates": map[string]any{"Muerto": true, "Herido": false},
			},
			"p1": map[string]any{
				"nickname":     "Ana",
				"isGM":         true,
				"status":       "bogus",
				"playerStates": map[string]any{"0": "Envenenado"},
			},
			"junk": "not a player",
		},
	})

	s.Require().Len(r.Players, 2)
	s.Equal("p1", r.Players[0].ID)
	s.True(r.Players[0].IsGM)
	s.Equal(models.PlayerStatusOffline, r.Players[0].Status)
	s.Equal([]string{"Envenenado"}, r.Players[0].PlayerStates)

	p2 := r.Player("p2")
	s.Require().NotNil(p2)
	s.Equal([]string{"Lobo", "Vidente"}, p2.Roles)
	s.Equal([]string{"Muerto"}, p2.PublicStates)
	s.True(p2.LastSeen.Equal(s.testTime))
	s.True(p2.IsOnline())
}

func (s *NormalizerTestSuite) TestVotesAcceptArraysAndMaps() {
	r := s.normalize(map[string]any{
		"votes": map[string]any{
			"escondite": map[string]any{"p1": true, "p2": true},
			"asesino":   []any{"p3"},
			"tesoro":    map[string]any{},
		},
	})

	s.Len(r.Votes, 2)
	s.True(r.Votes["escondite"]["p2"])
	s.True(r.Votes["asesino"]["p3"])
}

func (s *NormalizerTestSuite) TestNotificationsInArrivalOrder() {
	r := s.normalize(map[string]any{
		"notifications": map[string]any{
			"b": map[string]any{"type": "vibration", "payload": map[string]any{"duration": float64(500)}, "targetPlayerId": "p1"},
			"a": map[string]any{"type": "divineVoice", "payload": map[string]any{"message": "Atención"}, "targetPlayerId": nil},
		},
	})

	s.Require().Len(r.Notifications, 2)
	s.Equal("a", r.Notifications[0].ID)
	s.Equal("Atención", r.Notifications[0].Payload.Text)
	s.Equal("", r.Notifications[0].TargetPlayerID)
	s.Equal(500, r.Notifications[1].Payload.DurationMs)
	s.Equal("p1", r.Notifications[1].TargetPlayerID)
}

func (s *NormalizerTestSuite) TestClockRunningRequiresStartTime() {
	r := s.normalize(map[string]any{
		"clockConfig": map[string]any{"mode": "stopwatch", "isRunning": true},
	})
	s.False(r.ClockConfig.IsRunning)

	r = s.normalize(map[string]any{
		"clockConfig": map[string]any{"mode": "stopwatch", "isRunning": false, "startTime": float64(5000)},
	})
	s.Nil(r.ClockConfig.StartTime)
}

func (s *NormalizerTestSuite) TestEncodedValuesNormalizeBack() {
	start := s.testTime
	player := &models.Player{
		ID:       "p1",
		Nickname: "Ana",
		Status:   models.PlayerStatusOnline,
		LastSeen: s.testTime,
		Roles:    []string{"Lobo"},

		PlayerStates: []string{},
		PublicStates: []string{},
	}
	clock := models.ClockConfig{Mode: models.ClockModeCountdown, BaseTime: 90, IsRunning: true, StartTime: &start}

	r := s.normalize(map[string]any{
		"players":     map[string]any{"p1": EncodePlayer(player)},
		"clockConfig": EncodeClock(clock),
		"chatRooms": map[string]any{
			"c1": EncodeChatRoom(&models.ChatRoom{Name: "Lobos", Members: []string{"p1"}, CreatedAt: s.testTime}),
		},
		"votes": EncodeVotes(map[string]map[string]bool{"asesino": {"p1": true}, "tesoro": {}}),
	})

	s.Equal(player, r.Player("p1"))
	s.True(clock.Equal(r.ClockConfig))
	s.Require().Len(r.ChatRooms, 1)
	s.Equal("room_c1", r.ChatRooms[0].Channel())
	s.Equal(map[string]map[string]bool{"asesino": {"p1": true}}, r.Votes)
}

func (s *NormalizerTestSuite) TestTypingDropsMalformedTimes() {
	r := s.normalize(map[string]any{
		"typing": map[string]any{
			"global": map[string]any{"p1": float64(s.testTime.UnixMilli()), "p2": "ayer"},
			"room_x": "nada",
		},
	})

	s.Len(r.Typing, 1)
	s.Len(r.Typing["global"], 1)
}
