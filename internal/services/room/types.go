package room

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// Scope identifies the room and who is acting on it
type Scope struct {
	RoomID string
	Actor  *models.Identity
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	Scope
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Seeded lists the top-level keys that were missing and got defaults
	Seeded []string
}

// SetStatusInput contains parameters for changing the room status
type SetStatusInput struct {
	Scope
	Status models.RoomStatus
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	Scope
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	GameID string
}

// AdvancePhaseInput contains parameters for advancing the game phase
type AdvancePhaseInput struct {
	Scope
}

// AdvancePhaseOutput contains the new phase
type AdvancePhaseOutput struct {
	GamePhase int
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	Scope
}

// SoftResetInput contains parameters for a soft reset
type SoftResetInput struct {
	Scope
}

// ShutdownInput contains parameters for shutting the room down
type ShutdownInput struct {
	Scope
}

// AddOptionInput contains parameters for adding a label to an option list
type AddOptionInput struct {
	Scope
	List  models.OptionList
	Label string
}

// RenameOptionInput contains parameters for renaming a label
type RenameOptionInput struct {
	Scope
	List models.OptionList
	From string
	To   string
}

// DeleteOptionInput contains parameters for deleting a label
type DeleteOptionInput struct {
	Scope
	List  models.OptionList
	Label string
}

// ToggleLabelInput contains parameters for toggling a player's role or state
type ToggleLabelInput struct {
	Scope
	PlayerID string

	// List is roles, playerStates or publicStates
	List  models.OptionList
	Label string
}

// ToggleLabelOutput contains the result of toggling a label
type ToggleLabelOutput struct {
	// Active is true when the player now carries the label
	Active bool
}

// SetReadyInput contains parameters for setting a player's ready flag
type SetReadyInput struct {
	Scope
	PlayerID string
	Ready    bool
}

// SetNicknameInput contains parameters for renaming a player
type SetNicknameInput struct {
	Scope
	PlayerID string
	Nickname string
}

// ExpelPlayerInput contains parameters for expelling a player
type ExpelPlayerInput struct {
	Scope
	PlayerID string
}

// SetGlobalStateInput contains parameters for selecting the narrative label
type SetGlobalStateInput struct {
	Scope

	// Label must be one of the global states, or empty to clear
	Label string
}

// SetTickerInput contains parameters for the broadcast ticker
type SetTickerInput struct {
	Scope
	Text string

	// Speed is the scroll period in seconds
	Speed float64
}

// StartClockInput contains parameters for starting the clock
type StartClockInput struct {
	Scope
}

// PauseClockInput contains parameters for pausing the clock
type PauseClockInput struct {
	Scope
}

// ResetClockInput contains parameters for resetting the clock
type ResetClockInput struct {
	Scope
	BaseTime float64
}

// SetClockBaseInput contains parameters for changing the clock base time
type SetClockBaseInput struct {
	Scope
	BaseTime float64
}

// SetClockModeInput contains parameters for changing the clock mode
type SetClockModeInput struct {
	Scope
	Mode models.ClockMode
}

// SendMessageInput contains parameters for sending a chat message
type SendMessageInput struct {
	Scope
	Channel string
	Text    string
}

// SendMessageOutput contains the stored message id
type SendMessageOutput struct {
	MessageID string
}

// SetTypingInput contains parameters for a typing indicator
type SetTypingInput struct {
	Scope
	Channel string
}

// OpenChatRoomInput contains parameters for opening a chat room
type OpenChatRoomInput struct {
	Scope
	Name    string
	Members []string
}

// OpenChatRoomOutput contains the new chat room
type OpenChatRoomOutput struct {
	ChatRoomID string
	Channel    string
}

// CloseChatRoomInput contains parameters for closing a chat room
type CloseChatRoomInput struct {
	Scope
	ChatRoomID string
}

// ToggleVoteInput contains parameters for toggling the actor's vote
type ToggleVoteInput struct {
	Scope
	GameID string
}

// ToggleVoteOutput contains the result of toggling a vote
type ToggleVoteOutput struct {
	Voted bool
}
