package models

import "time"

// PlayerStatus represents the connection state of a player
type PlayerStatus string

const (
	// PlayerStatusOnline indicates the player's client is connected
	PlayerStatusOnline PlayerStatus = "online"

	// PlayerStatusOffline indicates the player's client disconnected
	PlayerStatusOffline PlayerStatus = "offline"
)

// Player represents one participant, including the operator
type Player struct {
	// ID is the authentication subject and the key in the room record
	ID string

	// Nickname is the display name chosen at login
	Nickname string

	// IsGM flags the operator
	IsGM bool

	// Status is the connection state
	Status PlayerStatus

	// LastSeen is refreshed periodically while connected
	LastSeen time.Time

	// Ready is reset on every session (re)start
	Ready bool

	// Roles is a subset of the room's role list
	Roles []string

	// PlayerStates are visible only to the owner and the operator
	PlayerStates []string

	// PublicStates are visible to everyone
	PublicStates []string
}

// Labels returns the player's set for the given option list. Global states
// are not per-player and return nil.
func (p *Player) Labels(list OptionList) []string {
	switch list {
	case OptionListRoles:
		return p.Roles
	case OptionListPlayerStates:
		return p.PlayerStates
	case OptionListPublicStates:
		return p.PublicStates
	}
	return nil
}

// IsOnline reports whether the player is connected
func (p *Player) IsOnline() bool {
	return p.Status == PlayerStatusOnline
}
