package gateway

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	commonClock "github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/KirkDiggler/roomsync/internal/models"
	identityRepo "github.com/KirkDiggler/roomsync/internal/repositories/identity"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/messaging"
	"github.com/KirkDiggler/roomsync/internal/services/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

const waitTimeout = 3 * time.Second

type GatewayTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	redisClient *redis.Client
	roomRepo    roomRepo.Repository
	cfg         *Config
	server      *Server
	httpServer  *httptest.Server
	ctx         context.Context
	sockets     []*websocket.Conn
}

func (s *GatewayTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.redisClient = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ctx = context.Background()
	s.sockets = nil

	fakeClock := commonClock.NewFake(time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC))
	cat := catalog.Default()

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.redisClient})
	s.Require().NoError(err)
	s.roomRepo = rooms

	identities, err := identityRepo.NewRedis(&identityRepo.Config{RedisClient: s.redisClient, Clock: fakeClock})
	s.Require().NoError(err)

	votes, err := vote.NewService(&vote.Config{RoomRepository: rooms, Catalog: cat})
	s.Require().NoError(err)

	roomService, err := room.NewService(&room.Config{
		RoomRepository: rooms,
		VoteService:    votes,
		Catalog:        cat,
		Clock:          fakeClock,
		UUIDGenerator:  uuid.New(),
	})
	s.Require().NoError(err)

	commands, err := command.NewService(&command.Config{
		RoomRepository: rooms,
		Catalog:        cat,
		Clock:          fakeClock,
	})
	s.Require().NoError(err)

	texts, err := messaging.NewService(&messaging.Config{})
	s.Require().NoError(err)

	s.cfg = &Config{
		RoomID:             "sala",
		RoomRepository:     rooms,
		IdentityRepository: identities,
		RoomService:        roomService,
		CommandService:     commands,
		MessagingService:   texts,
		Catalog:            cat,
		Clock:              fakeClock,
	}

	s.server, err = NewServer(s.cfg)
	s.Require().NoError(err)
	s.httpServer = httptest.NewServer(s.server)
}

func (s *GatewayTestSuite) TearDownTest() {
	for _, ws := range s.sockets {
		ws.Close()
	}
	s.server.Close()
	s.httpServer.Close()
	s.redisClient.Close()
	s.mr.Close()
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.httpServer.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.sockets = append(s.sockets, ws)
	return ws
}

func (s *GatewayTestSuite) send(ws *websocket.Conn, msg ClientMessage) {
	s.Require().NoError(ws.WriteJSON(msg))
}

// expect reads until a message matches, skipping everything else
func (s *GatewayTestSuite) expect(ws *websocket.Conn, match func(msg *ServerMessage) bool) *ServerMessage {
	s.Require().NoError(ws.SetReadDeadline(time.Now().Add(waitTimeout)))
	for {
		var msg ServerMessage
		s.Require().NoError(ws.ReadJSON(&msg))
		if match(&msg) {
			return &msg
		}
	}
}

func (s *GatewayTestSuite) reply(ws *websocket.Conn, requestID string) *ServerMessage {
	return s.expect(ws, func(msg *ServerMessage) bool {
		return msg.RequestID == requestID && (msg.Type == MessageTypeResult || msg.Type == MessageTypeError)
	})
}

func (s *GatewayTestSuite) login(ws *websocket.Conn, nickname string, isGM bool) string {
	s.send(ws, ClientMessage{Type: MessageTypeLogin, RequestID: "login", Nickname: nickname, IsGM: isGM})
	msg := s.reply(ws, "login")
	s.Require().Equal(MessageTypeResult, msg.Type, "login failed: %+v", msg.Error)

	result := msg.Result.(map[string]any)
	s.Equal(nickname, result["nickname"])
	s.Equal(isGM, result["isGM"])
	return result["identity"].(string)
}

func (s *GatewayTestSuite) TestNewServerValidatesConfig() {
	_, err := NewServer(nil)
	s.ErrorIs(err, ErrNilConfig)

	cfg := *s.cfg
	cfg.RoomID = ""
	_, err = NewServer(&cfg)
	s.ErrorIs(err, ErrRoomIDRequired)

	cfg = *s.cfg
	cfg.CommandService = nil
	_, err = NewServer(&cfg)
	s.ErrorIs(err, ErrNilCommandService)

	cfg = *s.cfg
	cfg.Catalog = nil
	_, err = NewServer(&cfg)
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *GatewayTestSuite) TestOperatorCreatesRoom() {
	gm := s.dial()
	s.login(gm, "Máster", true)

	s.send(gm, ClientMessage{Type: MessageTypeAction, RequestID: "2", Action: "createRoom"})

	var result, seeded *ServerMessage
	s.expect(gm, func(msg *ServerMessage) bool {
		switch {
		case msg.Type == MessageTypeResult && msg.RequestID == "2":
			result = msg
		case msg.Type == MessageTypeView && msg.View["room"] != nil:
			if roles, _ := msg.View["room"].(map[string]any)["roles"].([]any); len(roles) > 0 {
				seeded = msg
			}
		}
		return result != nil && seeded != nil
	})

	s.NotEmpty(result.Result.(map[string]any)["seeded"])
	s.NotEmpty(seeded.View["statusMessage"])
	s.Equal(string(models.RoomStatusWaiting), seeded.View["room"].(map[string]any)["status"])
}

func (s *GatewayTestSuite) TestLoginNavigatesToLobby() {
	ws := s.dial()
	s.send(ws, ClientMessage{Type: MessageTypeLogin, RequestID: "login", Nickname: "Ana"})

	var result, navigate *ServerMessage
	s.expect(ws, func(msg *ServerMessage) bool {
		switch {
		case msg.Type == MessageTypeResult && msg.RequestID == "login":
			result = msg
		case msg.Type == MessageTypeNavigate:
			navigate = msg
		}
		return result != nil && navigate != nil
	})

	s.Equal("patio", navigate.Screen)
}

func (s *GatewayTestSuite) TestActionRequiresLogin() {
	ws := s.dial()
	s.send(ws, ClientMessage{Type: MessageTypeAction, RequestID: "1", Action: "setTyping"})

	msg := s.reply(ws, "1")
	s.Equal(MessageTypeError, msg.Type)
	s.Equal(string(messaging.ErrorCodeNotLoggedIn), msg.Error.Code)
	s.NotEmpty(msg.Error.Message)
}

func (s *GatewayTestSuite) TestPlayerCannotRunOperatorAction() {
	ws := s.dial()
	s.login(ws, "Beto", false)

	s.send(ws, ClientMessage{Type: MessageTypeAction, RequestID: "1", Action: "startGame"})
	msg := s.reply(ws, "1")
	s.Equal(MessageTypeError, msg.Type)
	s.Equal(string(messaging.ErrorCodeNotOperator), msg.Error.Code)
}

func (s *GatewayTestSuite) TestUnknownActionIsInvalidRequest() {
	ws := s.dial()
	s.send(ws, ClientMessage{Type: MessageTypeAction, RequestID: "1", Action: "fly"})

	msg := s.reply(ws, "1")
	s.Equal(string(messaging.ErrorCodeInvalidRequest), msg.Error.Code)
}

func (s *GatewayTestSuite) TestMalformedMessageIsInvalidRequest() {
	ws := s.dial()
	s.Require().NoError(ws.WriteMessage(websocket.TextMessage, []byte("{")))

	msg := s.expect(ws, func(msg *ServerMessage) bool { return msg.Type == MessageTypeError })
	s.Equal(string(messaging.ErrorCodeInvalidRequest), msg.Error.Code)
}

func (s *GatewayTestSuite) TestCommandReachesPlayerAsEffect() {
	player := s.dial()
	playerID := s.login(player, "Ana", false)

	gm := s.dial()
	s.login(gm, "Máster", true)

	s.send(gm, ClientMessage{
		Type:      MessageTypeAction,
		RequestID: "cmd",
		Action:    "sendCommand",
		Args:      []byte(`{"type":"vibration","durationMs":300,"targetPlayerId":"` + playerID + `"}`),
	})
	reply := s.reply(gm, "cmd")
	s.Require().Equal(MessageTypeResult, reply.Type, "sendCommand failed: %+v", reply.Error)

	msg := s.expect(player, func(msg *ServerMessage) bool { return msg.Type == MessageTypeEffect })
	s.Equal(models.NotificationTypeVibration, msg.Effect.Kind)
	s.Equal(int64(300), msg.Effect.DurationMs)

	// The player consumed it, so the queue drains
	s.Eventually(func() bool {
		out, err := s.roomRepo.Get(s.ctx, &roomRepo.GetInput{RoomID: "sala"})
		return err == nil && len(snapshot.Normalize(out.Document).Notifications) == 0
	}, waitTimeout, 10*time.Millisecond)
}

func (s *GatewayTestSuite) TestHelloResumesIdentity() {
	first := s.dial()
	playerID := s.login(first, "Ana", false)
	first.Close()

	second := s.dial()
	s.send(second, ClientMessage{
		Type:      MessageTypeHello,
		RequestID: "hi",
		Identity:  &IdentityPayload{ID: playerID, Nickname: "Ana"},
	})

	msg := s.reply(second, "hi")
	s.Require().Equal(MessageTypeResult, msg.Type)
	identity := msg.Result.(map[string]any)["identity"].(map[string]any)
	s.Equal(playerID, identity["identity"])
}

func (s *GatewayTestSuite) TestHelloWithoutIdentityStaysLoggedOut() {
	ws := s.dial()
	s.send(ws, ClientMessage{Type: MessageTypeHello, RequestID: "hi"})

	msg := s.reply(ws, "hi")
	s.Require().Equal(MessageTypeResult, msg.Type)
	s.Nil(msg.Result.(map[string]any)["identity"])
}

func (s *GatewayTestSuite) TestCloseMarksPlayersOffline() {
	ws := s.dial()
	playerID := s.login(ws, "Ana", false)
	s.Equal(1, s.server.Connections())

	s.server.Close()
	s.Equal(0, s.server.Connections())

	out, err := s.roomRepo.Get(s.ctx, &roomRepo.GetInput{RoomID: "sala"})
	s.Require().NoError(err)
	player := snapshot.Normalize(out.Document).Player(playerID)
	s.Require().NotNil(player)
	s.Equal(models.PlayerStatusOffline, player.Status)
}
