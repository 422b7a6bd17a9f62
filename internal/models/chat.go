package models

import (
	"slices"
	"strings"
	"time"
)

const (
	// GlobalChannel is the channel every participant shares
	GlobalChannel = "global"

	// PrivateChannelPrefix prefixes a player's private channel with the operator
	PrivateChannelPrefix = "private_"

	// RoomChannelPrefix prefixes the channel of an ad-hoc chat room
	RoomChannelPrefix = "room_"
)

// ChatRole identifies who authored a message
type ChatRole string

const (
	ChatRoleGM     ChatRole = "gm"
	ChatRolePlayer ChatRole = "player"
)

// ChatMessage is one append-only message in a channel
type ChatMessage struct {
	ID string

	// User is the author's display name
	User string

	// UserID is the author's identity
	UserID string

	Text      string
	Role      ChatRole
	Timestamp time.Time
	Channel   string
}

// ChatRoom is an ad-hoc grouped channel
type ChatRoom struct {
	ID        string
	Name      string
	Members   []string
	CreatedAt time.Time
}

// Channel returns the channel name backing the room
func (c *ChatRoom) Channel() string {
	return RoomChannelPrefix + c.ID
}

// HasMember reports whether the identity belongs to the room
func (c *ChatRoom) HasMember(playerID string) bool {
	return slices.Contains(c.Members, playerID)
}

// PrivateChannel returns the private channel between a player and the operator
func PrivateChannel(playerID string) string {
	return PrivateChannelPrefix + playerID
}

// IsPrivateChannel reports whether the channel is a private channel
func IsPrivateChannel(channel string) bool {
	return strings.HasPrefix(channel, PrivateChannelPrefix)
}

// IsRoomChannel reports whether the channel backs a chat room
func IsRoomChannel(channel string) bool {
	return strings.HasPrefix(channel, RoomChannelPrefix)
}

// SortMessages orders messages by timestamp, leaving ties in arrival order
func SortMessages(messages []*ChatMessage) []*ChatMessage {
	sorted := slices.Clone(messages)
	slices.SortStableFunc(sorted, func(a, b *ChatMessage) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}
