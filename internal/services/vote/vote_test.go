package vote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	roomMocks "github.com/KirkDiggler/roomsync/internal/repositories/room/mocks"
)

func TestToggleDoubleInvocationCancelsOut(t *testing.T) {
	votes := map[string]map[string]bool{}

	once, voted := Toggle(votes, "p1", "asesino")
	if !voted || !once["asesino"]["p1"] {
		t.Fatalf("expected p1 to vote for asesino, got %v", once)
	}

	twice, voted := Toggle(once, "p1", "asesino")
	if voted || len(twice) != 0 {
		t.Fatalf("expected no votes after toggling twice, got %v", twice)
	}

	if !once["asesino"]["p1"] {
		t.Fatal("Toggle must not modify its input")
	}
}

func TestToggleIsExclusiveAcrossGames(t *testing.T) {
	votes := map[string]map[string]bool{
		"asesino": {"p1": true, "p2": true},
	}

	next, voted := Toggle(votes, "p1", "tesoro")
	if !voted {
		t.Fatal("expected a vote for tesoro")
	}
	if next["asesino"]["p1"] {
		t.Fatal("vote for asesino should have moved")
	}
	if !next["asesino"]["p2"] || !next["tesoro"]["p1"] {
		t.Fatalf("unexpected votes %v", next)
	}
}

func TestSelectWinner(t *testing.T) {
	order := []string{"escondite", "asesino", "tesoro"}

	tests := []struct {
		name  string
		votes map[string]map[string]bool
		want  string
	}{
		{
			name: "most votes wins",
			votes: map[string]map[string]bool{
				"asesino": {"a": true, "b": true, "c": true},
				"tesoro":  {"d": true, "e": true, "f": true, "g": true, "h": true},
			},
			want: "tesoro",
		},
		{
			name:  "empty returns default",
			votes: map[string]map[string]bool{},
			want:  "juicio",
		},
		{
			name: "tie goes to catalog order",
			votes: map[string]map[string]bool{
				"tesoro":  {"a": true},
				"asesino": {"b": true},
			},
			want: "asesino",
		},
		{
			name: "undeclared games never win",
			votes: map[string]map[string]bool{
				"ajedrez": {"a": true, "b": true},
				"tesoro":  {"c": true},
			},
			want: "tesoro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectWinner(tt.votes, order, "juicio"); got != tt.want {
				t.Errorf("SelectWinner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeDropsAbsentAndOfflineVoters(t *testing.T) {
	votes := map[string]map[string]bool{
		"asesino": {"online": true, "offline": true, "gone": true},
		"tesoro":  {"gone": true},
	}
	players := []*models.Player{
		{ID: "online", Status: models.PlayerStatusOnline},
		{ID: "offline", Status: models.PlayerStatusOffline},
	}

	got := Sanitize(votes, players)

	if len(got) != 1 || len(got["asesino"]) != 1 || !got["asesino"]["online"] {
		t.Fatalf("unexpected sanitized votes %v", got)
	}
}

type VoteServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRoomRepo *roomMocks.MockRepository
	voteService  Service
	ctx          context.Context
	roomID       string
}

func (s *VoteServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.roomID = "sala"

	svc, err := NewService(&Config{
		RoomRepository: s.mockRoomRepo,
		Catalog:        catalog.Default(),
	})
	s.Require().NoError(err)
	s.voteService = svc
}

func (s *VoteServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoteServiceTestSuite))
}

func (s *VoteServiceTestSuite) expectRoom(data map[string]any) {
	s.mockRoomRepo.EXPECT().
		Get(s.ctx, &roomRepo.GetInput{RoomID: s.roomID}).
		Return(&roomRepo.GetOutput{Document: &roomRepo.Document{RoomID: s.roomID, Version: 3, Data: data}}, nil)
}

func (s *VoteServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{Catalog: catalog.Default()})
	s.ErrorIs(err, ErrNilRoomRepo)

	_, err = NewService(&Config{RoomRepository: s.mockRoomRepo})
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *VoteServiceTestSuite) TestToggleVoteReplacesWholeMap() {
	s.expectRoom(map[string]any{
		"players": map[string]any{"p1": map[string]any{"status": "online"}},
		"votes":   map[string]any{"asesino": map[string]any{"p1": true, "p2": true}},
	})

	s.mockRoomRepo.EXPECT().
		Update(s.ctx, &roomRepo.UpdateInput{
			RoomID: s.roomID,
			Values: map[string]any{
				"votes": map[string]any{
					"asesino": map[string]any{"p2": true},
					"tesoro":  map[string]any{"p1": true},
				},
			},
		}).
		Return(nil)

	out, err := s.voteService.ToggleVote(s.ctx, &ToggleVoteInput{RoomID: s.roomID, VoterID: "p1", GameID: "tesoro"})
	s.Require().NoError(err)
	s.True(out.Voted)
}

func (s *VoteServiceTestSuite) TestToggleVoteAcceptedWhilePlaying() {
	s.expectRoom(map[string]any{
		"status":  "playing",
		"players": map[string]any{"p1": map[string]any{}},
	})
	s.mockRoomRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	_, err := s.voteService.ToggleVote(s.ctx, &ToggleVoteInput{RoomID: s.roomID, VoterID: "p1", GameID: "asesino"})
	s.NoError(err)
}

func (s *VoteServiceTestSuite) TestToggleVoteRejectsUnknownGame() {
	_, err := s.voteService.ToggleVote(s.ctx, &ToggleVoteInput{RoomID: s.roomID, VoterID: "p1", GameID: "ajedrez"})
	s.ErrorIs(err, ErrUnknownGame)
}

func (s *VoteServiceTestSuite) TestToggleVoteRejectsStranger() {
	s.expectRoom(map[string]any{})

	_, err := s.voteService.ToggleVote(s.ctx, &ToggleVoteInput{RoomID: s.roomID, VoterID: "p9", GameID: "asesino"})
	s.ErrorIs(err, ErrVoterNotFound)
}

func (s *VoteServiceTestSuite) TestToggleVotePropagatesWriteError() {
	s.expectRoom(map[string]any{"players": map[string]any{"p1": map[string]any{}}})
	writeErr := errors.New("connection reset")
	s.mockRoomRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(writeErr)

	_, err := s.voteService.ToggleVote(s.ctx, &ToggleVoteInput{RoomID: s.roomID, VoterID: "p1", GameID: "asesino"})
	s.ErrorIs(err, writeErr)
}

func (s *VoteServiceTestSuite) TestTallySanitizesBeforeSelecting() {
	s.expectRoom(map[string]any{
		"players": map[string]any{
			"p1": map[string]any{"status": "online"},
			"p2": map[string]any{"status": "online"},
			"p3": map[string]any{"status": "offline"},
		},
		"votes": map[string]any{
			"tesoro":  map[string]any{"p3": true, "gone": true},
			"juicio":  map[string]any{"p1": true},
			"asesino": map[string]any{"p2": true},
		},
	})

	out, err := s.voteService.Tally(s.ctx, &TallyInput{RoomID: s.roomID})
	s.Require().NoError(err)
	s.Equal("asesino", out.WinnerID)
	s.NotContains(out.Votes, "tesoro")
}

func (s *VoteServiceTestSuite) TestTallyWithoutVotesReturnsDefault() {
	s.expectRoom(map[string]any{})

	out, err := s.voteService.Tally(s.ctx, &TallyInput{RoomID: s.roomID})
	s.Require().NoError(err)
	s.Equal(catalog.Default().DefaultGame, out.WinnerID)
}
