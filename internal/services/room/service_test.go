package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	commonClock "github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
	voteMocks "github.com/KirkDiggler/roomsync/internal/services/vote/mocks"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mr              *miniredis.Miniredis
	client          *redis.Client
	roomRepo        roomRepo.Repository
	mockCtrl        *gomock.Controller
	mockVoteService *voteMocks.MockService
	clock           *clockwork.FakeClock
	catalog         *catalog.Catalog
	roomService     Service
	ctx             context.Context

	// Test data
	roomID   string
	operator Scope
	ana      Scope
	beto     Scope
}

func (s *RoomServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	repo, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.roomRepo = repo

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVoteService = voteMocks.NewMockService(s.mockCtrl)
	s.clock = commonClock.NewFake(time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC))
	s.catalog = catalog.Default()
	s.ctx = context.Background()

	svc, err := NewService(&Config{
		RoomRepository: s.roomRepo,
		VoteService:    s.mockVoteService,
		Catalog:        s.catalog,
		Clock:          s.clock,
		UUIDGenerator:  uuid.New(),
	})
	s.Require().NoError(err)
	s.roomService = svc

	s.roomID = "sala"
	s.operator = Scope{RoomID: s.roomID, Actor: &models.Identity{ID: "gm", Nickname: "Máster", IsGM: true}}
	s.ana = Scope{RoomID: s.roomID, Actor: &models.Identity{ID: "ana", Nickname: "Ana"}}
	s.beto = Scope{RoomID: s.roomID, Actor: &models.Identity{ID: "beto", Nickname: "Beto"}}

	s.addPlayer(s.operator.Actor)
	s.addPlayer(s.ana.Actor)
	s.addPlayer(s.beto.Actor)

	_, err = s.roomService.CreateRoom(s.ctx, &CreateRoomInput{Scope: s.operator})
	s.Require().NoError(err)
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}

func (s *RoomServiceTestSuite) addPlayer(identity *models.Identity) {
	player := &models.Player{
		ID:       identity.ID,
		Nickname: identity.Nickname,
		IsGM:     identity.IsGM,
		Status:   models.PlayerStatusOnline,
		LastSeen: s.clock.Now(),
		Ready:    true,
	}
	s.Require().NoError(s.roomRepo.Update(s.ctx, &roomRepo.UpdateInput{
		RoomID: s.roomID,
		Values: map[string]any{"players/" + identity.ID: snapshot.EncodePlayer(player)},
	}))
}

func (s *RoomServiceTestSuite) room() *models.Room {
	out, err := s.roomRepo.Get(s.ctx, &roomRepo.GetInput{RoomID: s.roomID})
	s.Require().NoError(err)
	return snapshot.Normalize(out.Document)
}

func (s *RoomServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{RoomRepository: s.roomRepo})
	s.ErrorIs(err, ErrNilVoteService)

	_, err = NewService(&Config{RoomRepository: s.roomRepo, VoteService: s.mockVoteService, Catalog: s.catalog, Clock: s.clock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *RoomServiceTestSuite) TestCreateRoomSeedsCatalogDefaults() {
	room := s.room()

	s.Equal(models.RoomStatusWaiting, room.Status)
	s.Equal(s.catalog.Roles, room.Roles)
	s.Equal(s.catalog.Roles, room.DefaultRoles)
	s.Equal(s.catalog.GlobalStates, room.GlobalStates)
	s.Equal(DefaultTickerSpeed, room.TickerSpeed)
	s.Len(room.Players, 3, "players who logged in first are kept")
}

func (s *RoomServiceTestSuite) TestCreateRoomKeepsExistingKeys() {
	s.Require().NoError(s.roomService.SetStatus(s.ctx, &SetStatusInput{Scope: s.operator, Status: models.RoomStatusPlaying}))

	out, err := s.roomService.CreateRoom(s.ctx, &CreateRoomInput{Scope: s.operator})
	s.Require().NoError(err)
	s.Empty(out.Seeded)
	s.Equal(models.RoomStatusPlaying, s.room().Status)
}

func (s *RoomServiceTestSuite) TestOperatorOnlyActions() {
	_, err := s.roomService.CreateRoom(s.ctx, &CreateRoomInput{Scope: s.ana})
	s.ErrorIs(err, ErrNotOperator)

	s.ErrorIs(s.roomService.Shutdown(s.ctx, &ShutdownInput{Scope: s.ana}), ErrNotOperator)
	s.ErrorIs(s.roomService.StartClock(s.ctx, &StartClockInput{Scope: s.ana}), ErrNotOperator)
	s.ErrorIs(s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.ana, List: models.OptionListRoles, Label: "Bruja"}), ErrNotOperator)

	_, err = s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.ana, PlayerID: "ana", List: models.OptionListRoles, Label: "Lobo"})
	s.ErrorIs(err, ErrNotOperator)

	s.ErrorIs(s.roomService.SetStatus(s.ctx, &SetStatusInput{Scope: Scope{RoomID: s.roomID}}), ErrActorRequired)
}

func (s *RoomServiceTestSuite) TestStartGame() {
	s.Require().NoError(s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.operator, List: models.OptionListRoles, Label: "Bruja"}))

	s.mockVoteService.EXPECT().
		Tally(s.ctx, &vote.TallyInput{RoomID: s.roomID}).
		Return(&vote.TallyOutput{WinnerID: "asesino"}, nil)

	out, err := s.roomService.StartGame(s.ctx, &StartGameInput{Scope: s.operator})
	s.Require().NoError(err)
	s.Equal("asesino", out.GameID)

	room := s.room()
	s.Equal(models.RoomStatusPlaying, room.Status)
	s.Equal(1, room.GamePhase)
	s.Equal("asesino", room.CurrentGame)
	s.Empty(room.Votes)
	s.Contains(room.DefaultRoles, "Bruja")
	for _, p := range room.Players {
		s.False(p.Ready, p.ID)
	}

	_, err = s.roomService.StartGame(s.ctx, &StartGameInput{Scope: s.operator})
	s.ErrorIs(err, ErrInvalidRoomState)
}

func (s *RoomServiceTestSuite) startGame() {
	s.mockVoteService.EXPECT().Tally(gomock.Any(), gomock.Any()).Return(&vote.TallyOutput{WinnerID: "escondite"}, nil)
	_, err := s.roomService.StartGame(s.ctx, &StartGameInput{Scope: s.operator})
	s.Require().NoError(err)
}

func (s *RoomServiceTestSuite) TestAdvancePhaseRequiresPlaying() {
	_, err := s.roomService.AdvancePhase(s.ctx, &AdvancePhaseInput{Scope: s.operator})
	s.ErrorIs(err, ErrInvalidRoomState)

	s.startGame()

	out, err := s.roomService.AdvancePhase(s.ctx, &AdvancePhaseInput{Scope: s.operator})
	s.Require().NoError(err)
	s.Equal(2, out.GamePhase)
	s.Equal(2, s.room().GamePhase)
}

func (s *RoomServiceTestSuite) TestEndGameRetractsAdditions() {
	s.startGame()

	s.Require().NoError(s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.operator, List: models.OptionListRoles, Label: "Bruja"}))
	s.Require().NoError(s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.operator, List: models.OptionListGlobalStates, Label: "Eclipse"}))
	s.Require().NoError(s.roomService.SetGlobalState(s.ctx, &SetGlobalStateInput{Scope: s.operator, Label: "Eclipse"}))

	for _, label := range []string{"Bruja", "Lobo"} {
		_, err := s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "ana", List: models.OptionListRoles, Label: label})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.roomService.EndGame(s.ctx, &EndGameInput{Scope: s.operator}))

	room := s.room()
	s.Equal(models.RoomStatusWaiting, room.Status)
	s.Equal(0, room.GamePhase)
	s.Empty(room.CurrentGame)
	s.NotContains(room.Roles, "Bruja")
	s.Empty(room.GlobalState)
	s.Equal([]string{"Lobo"}, room.Player("ana").Roles)
}

func (s *RoomServiceTestSuite) TestSoftResetKeepsPlayers() {
	_, err := s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.ana, Channel: models.GlobalChannel, Text: "hola"})
	s.Require().NoError(err)
	s.Require().NoError(s.roomService.StartClock(s.ctx, &StartClockInput{Scope: s.operator}))
	s.startGame()

	s.Require().NoError(s.roomService.SoftReset(s.ctx, &SoftResetInput{Scope: s.operator}))

	room := s.room()
	s.Equal(models.RoomStatusWaiting, room.Status)
	s.Empty(room.Channels)
	s.False(room.ClockConfig.IsRunning)
	s.Len(room.Players, 3)
}

func (s *RoomServiceTestSuite) TestShutdownRemovesPlayersButOperator() {
	s.Require().NoError(s.roomService.Shutdown(s.ctx, &ShutdownInput{Scope: s.operator}))

	room := s.room()
	s.Equal(models.RoomStatusShutdown, room.Status)
	s.Require().Len(room.Players, 1)
	s.Equal("gm", room.Players[0].ID)
}

func (s *RoomServiceTestSuite) TestOptionLists() {
	add := func(label string) error {
		return s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.operator, List: models.OptionListPublicStates, Label: label})
	}

	s.ErrorIs(add("  "), ErrOptionRequired)
	s.ErrorIs(add("Muerto"), ErrOptionExists)
	s.NoError(add(" Dormido "))
	s.Contains(s.room().PublicStates, "Dormido")

	err := s.roomService.AddOption(s.ctx, &AddOptionInput{Scope: s.operator, List: "weapons", Label: "Hacha"})
	s.ErrorIs(err, ErrInvalidOptionList)
}

func (s *RoomServiceTestSuite) TestRenameOptionUpdatesPlayers() {
	_, err := s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "beto", List: models.OptionListRoles, Label: "Lobo"})
	s.Require().NoError(err)

	s.Require().NoError(s.roomService.RenameOption(s.ctx, &RenameOptionInput{Scope: s.operator, List: models.OptionListRoles, From: "Lobo", To: "Licántropo"}))

	room := s.room()
	s.Contains(room.Roles, "Licántropo")
	s.NotContains(room.Roles, "Lobo")
	s.Contains(room.DefaultRoles, "Licántropo")
	s.Equal([]string{"Licántropo"}, room.Player("beto").Roles)

	err = s.roomService.RenameOption(s.ctx, &RenameOptionInput{Scope: s.operator, List: models.OptionListRoles, From: "Lobo", To: "Zorro"})
	s.ErrorIs(err, ErrOptionNotFound)

	err = s.roomService.RenameOption(s.ctx, &RenameOptionInput{Scope: s.operator, List: models.OptionListRoles, From: "Aldeano", To: "Vidente"})
	s.ErrorIs(err, ErrOptionExists)
}

func (s *RoomServiceTestSuite) TestDeleteOptionClearsGlobalState() {
	label := s.catalog.GlobalStates[0]
	s.Require().NoError(s.roomService.SetGlobalState(s.ctx, &SetGlobalStateInput{Scope: s.operator, Label: label}))
	s.Equal(label, s.room().GlobalState)

	s.Require().NoError(s.roomService.DeleteOption(s.ctx, &DeleteOptionInput{Scope: s.operator, List: models.OptionListGlobalStates, Label: label}))

	room := s.room()
	s.Empty(room.GlobalState)
	s.NotContains(room.GlobalStates, label)
	s.NotContains(room.DefaultGlobalStates, label)

	err := s.roomService.SetGlobalState(s.ctx, &SetGlobalStateInput{Scope: s.operator, Label: label})
	s.ErrorIs(err, ErrOptionNotFound)
}

func (s *RoomServiceTestSuite) TestToggleLabel() {
	toggle := func(label string) (*ToggleLabelOutput, error) {
		return s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "ana", List: models.OptionListPlayerStates, Label: label})
	}

	out, err := toggle("Envenenado")
	s.Require().NoError(err)
	s.True(out.Active)
	s.Equal([]string{"Envenenado"}, s.room().Player("ana").PlayerStates)

	out, err = toggle("Envenenado")
	s.Require().NoError(err)
	s.False(out.Active)
	s.Empty(s.room().Player("ana").PlayerStates)

	_, err = toggle("Inmortal")
	s.ErrorIs(err, ErrOptionNotFound)

	_, err = s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "nadie", List: models.OptionListRoles, Label: "Lobo"})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "ana", List: models.OptionListGlobalStates, Label: "Noche"})
	s.ErrorIs(err, ErrInvalidOptionList)
}

func (s *RoomServiceTestSuite) TestPlayersChangeOnlyTheirOwnRecord() {
	s.NoError(s.roomService.SetReady(s.ctx, &SetReadyInput{Scope: s.ana, PlayerID: "ana", Ready: false}))
	s.False(s.room().Player("ana").Ready)

	s.ErrorIs(s.roomService.SetReady(s.ctx, &SetReadyInput{Scope: s.ana, PlayerID: "beto"}), ErrForbidden)
	s.ErrorIs(s.roomService.SetNickname(s.ctx, &SetNicknameInput{Scope: s.ana, PlayerID: "beto", Nickname: "Tonto"}), ErrForbidden)

	s.NoError(s.roomService.SetNickname(s.ctx, &SetNicknameInput{Scope: s.ana, PlayerID: "ana", Nickname: " Anita "}))
	s.Equal("Anita", s.room().Player("ana").Nickname)

	s.NoError(s.roomService.SetReady(s.ctx, &SetReadyInput{Scope: s.operator, PlayerID: "beto", Ready: false}))
	s.ErrorIs(s.roomService.SetReady(s.ctx, &SetReadyInput{Scope: s.operator, PlayerID: "nadie"}), ErrPlayerNotFound)
}

// expellingRepository removes a player just before the next update reaches
// the store, as if an expel committed after the action read the room
type expellingRepository struct {
	roomRepo.Repository
	path string
	once sync.Once
}

func (r *expellingRepository) Update(ctx context.Context, input *roomRepo.UpdateInput) error {
	var err error
	r.once.Do(func() {
		err = r.Repository.Remove(ctx, &roomRepo.RemoveInput{RoomID: input.RoomID, Path: r.path})
	})
	if err != nil {
		return err
	}
	return r.Repository.Update(ctx, input)
}

func (s *RoomServiceTestSuite) serviceExpelling(playerID string) Service {
	svc, err := NewService(&Config{
		RoomRepository: &expellingRepository{Repository: s.roomRepo, path: "players/" + playerID},
		VoteService:    s.mockVoteService,
		Catalog:        s.catalog,
		Clock:          s.clock,
		UUIDGenerator:  uuid.New(),
	})
	s.Require().NoError(err)
	return svc
}

func (s *RoomServiceTestSuite) TestPlayerActionsAfterConcurrentExpel() {
	err := s.serviceExpelling("beto").SetReady(s.ctx, &SetReadyInput{Scope: s.beto, PlayerID: "beto", Ready: false})
	s.ErrorIs(err, ErrPlayerNotFound)
	s.Nil(s.room().Player("beto"))

	err = s.serviceExpelling("ana").SetNickname(s.ctx, &SetNicknameInput{Scope: s.ana, PlayerID: "ana", Nickname: "Anita"})
	s.ErrorIs(err, ErrPlayerNotFound)
	s.Nil(s.room().Player("ana"))

	_, err = s.serviceExpelling("gm").ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "gm", List: models.OptionListRoles, Label: "Lobo"})
	s.ErrorIs(err, ErrPlayerNotFound)
	s.Nil(s.room().Player("gm"))
	s.Empty(s.room().Players)
}

func (s *RoomServiceTestSuite) TestStartGameDoesNotRecreateExpelledPlayer() {
	s.mockVoteService.EXPECT().Tally(gomock.Any(), gomock.Any()).Return(&vote.TallyOutput{WinnerID: "escondite"}, nil)

	_, err := s.serviceExpelling("beto").StartGame(s.ctx, &StartGameInput{Scope: s.operator})
	s.Require().NoError(err)

	room := s.room()
	s.Equal(models.RoomStatusPlaying, room.Status)
	s.Nil(room.Player("beto"))
	s.Require().Len(room.Players, 2)
	for _, p := range room.Players {
		s.False(p.Ready, p.ID)
	}
}

func (s *RoomServiceTestSuite) TestEndGameAndSoftResetDoNotRecreateExpelledPlayer() {
	s.startGame()
	_, err := s.roomService.ToggleLabel(s.ctx, &ToggleLabelInput{Scope: s.operator, PlayerID: "ana", List: models.OptionListRoles, Label: "Lobo"})
	s.Require().NoError(err)

	s.Require().NoError(s.serviceExpelling("ana").EndGame(s.ctx, &EndGameInput{Scope: s.operator}))
	s.Equal(models.RoomStatusWaiting, s.room().Status)
	s.Nil(s.room().Player("ana"))

	s.Require().NoError(s.serviceExpelling("beto").SoftReset(s.ctx, &SoftResetInput{Scope: s.operator}))
	room := s.room()
	s.Nil(room.Player("beto"))
	s.Require().Len(room.Players, 1)
	s.Equal("gm", room.Players[0].ID)
	s.False(room.Players[0].Ready)
}

func (s *RoomServiceTestSuite) TestExpelPlayer() {
	s.ErrorIs(s.roomService.ExpelPlayer(s.ctx, &ExpelPlayerInput{Scope: s.operator, PlayerID: "gm"}), ErrCannotExpelSelf)

	s.Require().NoError(s.roomService.ExpelPlayer(s.ctx, &ExpelPlayerInput{Scope: s.operator, PlayerID: "beto"}))
	s.Nil(s.room().Player("beto"))

	s.ErrorIs(s.roomService.ExpelPlayer(s.ctx, &ExpelPlayerInput{Scope: s.operator, PlayerID: "beto"}), ErrPlayerNotFound)
}

func (s *RoomServiceTestSuite) TestSetTicker() {
	s.ErrorIs(s.roomService.SetTicker(s.ctx, &SetTickerInput{Scope: s.operator, Text: "x", Speed: 0}), ErrInvalidTickerSpeed)

	s.Require().NoError(s.roomService.SetTicker(s.ctx, &SetTickerInput{Scope: s.operator, Text: "Bienvenidos", Speed: 12.5}))
	room := s.room()
	s.Equal("Bienvenidos", room.TickerText)
	s.Equal(12.5, room.TickerSpeed)
}

func (s *RoomServiceTestSuite) TestClockActions() {
	s.Require().NoError(s.roomService.SetClockMode(s.ctx, &SetClockModeInput{Scope: s.operator, Mode: models.ClockModeCountdown}))
	s.Require().NoError(s.roomService.SetClockBase(s.ctx, &SetClockBaseInput{Scope: s.operator, BaseTime: 300}))
	s.Require().NoError(s.roomService.StartClock(s.ctx, &StartClockInput{Scope: s.operator}))

	cfg := s.room().ClockConfig
	s.True(cfg.IsRunning)
	s.Require().NotNil(cfg.StartTime)
	s.True(cfg.StartTime.Equal(s.clock.Now()))

	s.ErrorIs(s.roomService.SetClockBase(s.ctx, &SetClockBaseInput{Scope: s.operator, BaseTime: 60}), clockService.ErrClockRunning)
	s.ErrorIs(s.roomService.SetClockMode(s.ctx, &SetClockModeInput{Scope: s.operator, Mode: models.ClockModeStopwatch}), clockService.ErrClockRunning)

	s.clock.Advance(90 * time.Second)
	s.Require().NoError(s.roomService.PauseClock(s.ctx, &PauseClockInput{Scope: s.operator}))
	cfg = s.room().ClockConfig
	s.False(cfg.IsRunning)
	s.Nil(cfg.StartTime)
	s.Equal("03:30", clockService.DisplayTime(cfg, s.clock.Now()))

	s.Require().NoError(s.roomService.ResetClock(s.ctx, &ResetClockInput{Scope: s.operator, BaseTime: 300}))
	s.Equal("05:00", clockService.DisplayTime(s.room().ClockConfig, s.clock.Now()))
}

func (s *RoomServiceTestSuite) TestSendMessage() {
	out, err := s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.ana, Channel: models.GlobalChannel, Text: " hola "})
	s.Require().NoError(err)
	s.NotEmpty(out.MessageID)

	_, err = s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.operator, Channel: models.PrivateChannel("ana"), Text: "psst"})
	s.Require().NoError(err)

	room := s.room()
	s.Require().Len(room.Channels[models.GlobalChannel], 1)
	msg := room.Channels[models.GlobalChannel][0]
	s.Equal("hola", msg.Text)
	s.Equal("Ana", msg.User)
	s.Equal(models.ChatRolePlayer, msg.Role)
	s.Equal(out.MessageID, msg.ID)
	s.Equal(models.ChatRoleGM, room.Channels[models.PrivateChannel("ana")][0].Role)
}

func (s *RoomServiceTestSuite) TestSendMessageChannelRules() {
	send := func(scope Scope, channel string) error {
		_, err := s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: scope, Channel: channel, Text: "hola"})
		return err
	}

	s.NoError(send(s.ana, models.PrivateChannel("ana")))
	s.ErrorIs(send(s.ana, models.PrivateChannel("beto")), ErrInvalidChannel)
	s.ErrorIs(send(s.operator, models.PrivateChannel("nadie")), ErrInvalidChannel)
	s.ErrorIs(send(s.ana, "room_nada"), ErrInvalidChannel)
	s.ErrorIs(send(s.ana, "random"), ErrInvalidChannel)

	_, err := s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.ana, Channel: models.GlobalChannel, Text: "  "})
	s.ErrorIs(err, ErrMessageRequired)
}

func (s *RoomServiceTestSuite) TestTypingClearedBySending() {
	s.Require().NoError(s.roomService.SetTyping(s.ctx, &SetTypingInput{Scope: s.ana, Channel: models.GlobalChannel}))
	s.Contains(s.room().Typing[models.GlobalChannel], "ana")

	_, err := s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.ana, Channel: models.GlobalChannel, Text: "listo"})
	s.Require().NoError(err)
	s.Empty(s.room().Typing)
}

func (s *RoomServiceTestSuite) TestChatRooms() {
	_, err := s.roomService.OpenChatRoom(s.ctx, &OpenChatRoomInput{Scope: s.operator, Name: "Lobos", Members: []string{"ana", "nadie"}})
	s.ErrorIs(err, ErrPlayerNotFound)

	opened, err := s.roomService.OpenChatRoom(s.ctx, &OpenChatRoomInput{Scope: s.operator, Name: "Lobos", Members: []string{"ana"}})
	s.Require().NoError(err)
	s.Equal(models.RoomChannelPrefix+opened.ChatRoomID, opened.Channel)

	_, err = s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.ana, Channel: opened.Channel, Text: "auuu"})
	s.Require().NoError(err)

	_, err = s.roomService.SendMessage(s.ctx, &SendMessageInput{Scope: s.beto, Channel: opened.Channel, Text: "¿hola?"})
	s.ErrorIs(err, ErrInvalidChannel)

	s.Require().NoError(s.roomService.CloseChatRoom(s.ctx, &CloseChatRoomInput{Scope: s.operator, ChatRoomID: opened.ChatRoomID}))

	room := s.room()
	s.Empty(room.ChatRooms)
	s.NotContains(room.Channels, opened.Channel)

	s.ErrorIs(s.roomService.CloseChatRoom(s.ctx, &CloseChatRoomInput{Scope: s.operator, ChatRoomID: opened.ChatRoomID}), ErrChatRoomNotFound)
}

func (s *RoomServiceTestSuite) TestToggleVoteDelegatesForActor() {
	s.mockVoteService.EXPECT().
		ToggleVote(s.ctx, &vote.ToggleVoteInput{RoomID: s.roomID, VoterID: "ana", GameID: "tesoro"}).
		Return(&vote.ToggleVoteOutput{Voted: true}, nil)

	out, err := s.roomService.ToggleVote(s.ctx, &ToggleVoteInput{Scope: s.ana, GameID: "tesoro"})
	s.Require().NoError(err)
	s.True(out.Voted)
}
