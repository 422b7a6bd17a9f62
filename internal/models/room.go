package models

import (
	"time"
)

// RoomStatus drives which screen each class of client should be on
type RoomStatus string

const (
	// RoomStatusWaiting indicates players are gathering in the lobby
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusPlaying indicates a game is in progress
	RoomStatusPlaying RoomStatus = "playing"

	// RoomStatusShutdown indicates the operator closed the room
	RoomStatusShutdown RoomStatus = "shutdown"
)

// IsValid reports whether the status is one of the known values
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusWaiting, RoomStatusPlaying, RoomStatusShutdown:
		return true
	}
	return false
}

// OptionList names one of the curated option lists the operator maintains
type OptionList string

const (
	OptionListRoles        OptionList = "roles"
	OptionListPlayerStates OptionList = "playerStates"
	OptionListPublicStates OptionList = "publicStates"
	OptionListGlobalStates OptionList = "globalStates"
)

// IsValid reports whether the list is one of the known option lists
func (l OptionList) IsValid() bool {
	switch l {
	case OptionListRoles, OptionListPlayerStates, OptionListPublicStates, OptionListGlobalStates:
		return true
	}
	return false
}

// DefaultKey is the document key holding the pre-game baseline of the list
func (l OptionList) DefaultKey() string {
	switch l {
	case OptionListRoles:
		return "defaultRoles"
	case OptionListPlayerStates:
		return "defaultPlayerStates"
	case OptionListPublicStates:
		return "defaultPublicStates"
	case OptionListGlobalStates:
		return "defaultGlobalStates"
	}
	return ""
}

// Room is the single shared session aggregate, after normalization
type Room struct {
	// ID is the room identifier the document is stored under
	ID string

	// Version is the store version the snapshot was read at
	Version int64

	// Status is the current lifecycle state of the room
	Status RoomStatus

	// GamePhase is the monotonic step counter of the active game, 0 during setup
	GamePhase int

	// CurrentGame is the mini-game selected when the session started
	CurrentGame string

	// ClockConfig is the shared configuration of the derived clock
	ClockConfig ClockConfig

	// TickerText is the cosmetic broadcast string
	TickerText string

	// TickerSpeed is the scroll period of the ticker in seconds
	TickerSpeed float64

	// GlobalState is the narrative label selected from GlobalStates, or empty
	GlobalState string

	Roles        []string
	PlayerStates []string
	PublicStates []string
	GlobalStates []string

	DefaultRoles        []string
	DefaultPlayerStates []string
	DefaultPublicStates []string
	DefaultGlobalStates []string

	// Players are all participants including the operator, sorted by ID
	Players []*Player

	// Votes maps a game ID to the set of voter identities
	Votes map[string]map[string]bool

	// Channels maps a channel name to its messages in arrival order
	Channels map[string][]*ChatMessage

	// Notifications is the transient command queue in arrival order
	Notifications []*Notification

	// ChatRooms are the ad-hoc rooms the operator has opened
	ChatRooms []*ChatRoom

	// Typing maps a channel to identity to the last typing time
	Typing map[string]map[string]time.Time
}

// Options returns the named option list
func (r *Room) Options(list OptionList) []string {
	switch list {
	case OptionListRoles:
		return r.Roles
	case OptionListPlayerStates:
		return r.PlayerStates
	case OptionListPublicStates:
		return r.PublicStates
	case OptionListGlobalStates:
		return r.GlobalStates
	}
	return nil
}

// Defaults returns the pre-game baseline of the named option list
func (r *Room) Defaults(list OptionList) []string {
	switch list {
	case OptionListRoles:
		return r.DefaultRoles
	case OptionListPlayerStates:
		return r.DefaultPlayerStates
	case OptionListPublicStates:
		return r.DefaultPublicStates
	case OptionListGlobalStates:
		return r.DefaultGlobalStates
	}
	return nil
}

// Player returns the player with the given identity, or nil
func (r *Room) Player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ChatRoom returns the chat room with the given ID, or nil
func (r *Room) ChatRoom(id string) *ChatRoom {
	for _, c := range r.ChatRooms {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ChannelCounts returns the number of messages in every channel
func (r *Room) ChannelCounts() map[string]int {
	counts := make(map[string]int, len(r.Channels))
	for name, messages := range r.Channels {
		counts[name] = len(messages)
	}
	return counts
}
