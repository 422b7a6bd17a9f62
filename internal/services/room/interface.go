package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsync/internal/services/room Service

import "context"

// Service defines every legal mutation of the shared room record
type Service interface {
	// CreateRoom seeds catalog defaults for every key the room does not have yet
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// SetStatus moves the room to a status
	SetStatus(ctx context.Context, input *SetStatusInput) error

	// StartGame tallies the votes and starts the winning game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AdvancePhase moves the active game to its next step
	AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error)

	// EndGame returns to the lobby and retracts the game's catalog additions
	EndGame(ctx context.Context, input *EndGameInput) error

	// SoftReset clears the session but keeps the players
	SoftReset(ctx context.Context, input *SoftResetInput) error

	// Shutdown closes the room and removes every player but the operator
	Shutdown(ctx context.Context, input *ShutdownInput) error

	// AddOption adds a label to an option list
	AddOption(ctx context.Context, input *AddOptionInput) error

	// RenameOption renames a label everywhere it is used
	RenameOption(ctx context.Context, input *RenameOptionInput) error

	// DeleteOption removes a label everywhere it is used
	DeleteOption(ctx context.Context, input *DeleteOptionInput) error

	// ToggleLabel flips a role or state on a player
	ToggleLabel(ctx context.Context, input *ToggleLabelInput) (*ToggleLabelOutput, error)

	// SetReady sets a player's ready flag
	SetReady(ctx context.Context, input *SetReadyInput) error

	// SetNickname renames a player
	SetNickname(ctx context.Context, input *SetNicknameInput) error

	// ExpelPlayer removes a player from the room
	ExpelPlayer(ctx context.Context, input *ExpelPlayerInput) error

	// SetGlobalState selects the narrative label
	SetGlobalState(ctx context.Context, input *SetGlobalStateInput) error

	// SetTicker sets the broadcast ticker
	SetTicker(ctx context.Context, input *SetTickerInput) error

	// StartClock starts or resumes the clock
	StartClock(ctx context.Context, input *StartClockInput) error

	// PauseClock pauses the clock
	PauseClock(ctx context.Context, input *PauseClockInput) error

	// ResetClock stops the clock at a base time
	ResetClock(ctx context.Context, input *ResetClockInput) error

	// SetClockBase changes the base time of a stopped clock
	SetClockBase(ctx context.Context, input *SetClockBaseInput) error

	// SetClockMode changes the mode of a stopped clock
	SetClockMode(ctx context.Context, input *SetClockModeInput) error

	// SendMessage appends a chat message to a channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error)

	// SetTyping records that the actor is typing in a channel
	SetTyping(ctx context.Context, input *SetTypingInput) error

	// OpenChatRoom opens an ad-hoc channel for some players
	OpenChatRoom(ctx context.Context, input *OpenChatRoomInput) (*OpenChatRoomOutput, error)

	// CloseChatRoom closes an ad-hoc channel and drops its messages
	CloseChatRoom(ctx context.Context, input *CloseChatRoomInput) error

	// ToggleVote moves the actor's vote to a game, or withdraws it
	ToggleVote(ctx context.Context, input *ToggleVoteInput) (*ToggleVoteOutput, error)
}
