package view

import (
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Visible returns the part of the room an identity may see. The operator
// sees everything. Players see their own private states only, and only the
// channels they take part in.
func Visible(r *models.Room, identity *models.Identity) *models.Room {
	if identity != nil && identity.IsGM {
		return r
	}

	var self string
	if identity != nil {
		self = identity.ID
	}

	out := *r

	out.Players = make([]*models.Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.ID == self {
			out.Players = append(out.Players, p)
			continue
		}
		stripped := *p
		stripped.PlayerStates = []string{}
		out.Players = append(out.Players, &stripped)
	}

	out.ChatRooms = make([]*models.ChatRoom, 0, len(r.ChatRooms))
	for _, c := range r.ChatRooms {
		if c.HasMember(self) {
			out.ChatRooms = append(out.ChatRooms, c)
		}
	}

	out.Channels = make(map[string][]*models.ChatMessage, len(r.Channels))
	for name, messages := range r.Channels {
		if CanRead(&out, self, name) {
			out.Channels[name] = messages
		}
	}

	out.Typing = make(map[string]map[string]time.Time, len(r.Typing))
	for name, typing := range r.Typing {
		if CanRead(&out, self, name) {
			out.Typing[name] = typing
		}
	}

	return &out
}

// CanRead reports whether a non-operator player may read a channel
func CanRead(r *models.Room, playerID, channel string) bool {
	switch {
	case channel == models.GlobalChannel:
		return true
	case models.IsPrivateChannel(channel):
		return playerID != "" && channel == models.PrivateChannel(playerID)
	case models.IsRoomChannel(channel):
		chatRoom := r.ChatRoom(channel[len(models.RoomChannelPrefix):])
		return chatRoom != nil && chatRoom.HasMember(playerID)
	}
	return false
}
