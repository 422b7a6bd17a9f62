package room

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/models"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

// canWrite reports whether the actor may post to a channel. The operator may
// post to the global channel, any player's private channel and any open
// room; players only to the channels they can read.
func canWrite(room *models.Room, actor *models.Identity, channel string) bool {
	if !actor.IsGM {
		return view.CanRead(room, actor.ID, channel)
	}

	switch {
	case channel == models.GlobalChannel:
		return true
	case models.IsPrivateChannel(channel):
		return room.Player(strings.TrimPrefix(channel, models.PrivateChannelPrefix)) != nil
	case models.IsRoomChannel(channel):
		return room.ChatRoom(strings.TrimPrefix(channel, models.RoomChannelPrefix)) != nil
	}
	return false
}

// SendMessage appends a message to a channel and clears the author's typing
// indicator there
func (s *service) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := validateScope(input.Scope); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrMessageRequired
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if !canWrite(room, input.Actor, input.Channel) {
		return nil, ErrInvalidChannel
	}

	nickname := input.Actor.Nickname
	if p := room.Player(input.Actor.ID); p != nil && p.Nickname != "" {
		nickname = p.Nickname
	}

	role := models.ChatRolePlayer
	if input.Actor.IsGM {
		role = models.ChatRoleGM
	}

	out, err := s.roomRepo.Push(ctx, &roomRepo.PushInput{
		RoomID: input.RoomID,
		Path:   "channels/" + input.Channel,
		Value: snapshot.EncodeMessage(&models.ChatMessage{
			User:      nickname,
			UserID:    input.Actor.ID,
			Text:      text,
			Role:      role,
			Timestamp: s.clock.Now(),
			Channel:   input.Channel,
		}),
	})
	if err != nil {
		return nil, err
	}

	err = s.roomRepo.Remove(ctx, &roomRepo.RemoveInput{
		RoomID: input.RoomID,
		Path:   "typing/" + input.Channel + "/" + input.Actor.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("room_id", input.RoomID).Str("channel", input.Channel).Msg("failed to clear typing indicator")
	}

	return &SendMessageOutput{MessageID: out.ID}, nil
}

// SetTyping stamps the actor's typing indicator in a channel
func (s *service) SetTyping(ctx context.Context, input *SetTypingInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := validateScope(input.Scope); err != nil {
		return err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	if !canWrite(room, input.Actor, input.Channel) {
		return ErrInvalidChannel
	}

	return s.update(ctx, input.RoomID, map[string]any{
		"typing/" + input.Channel + "/" + input.Actor.ID: s.clock.Now().UnixMilli(),
	})
}

// OpenChatRoom opens an ad-hoc channel for a group of players
func (s *service) OpenChatRoom(ctx context.Context, input *OpenChatRoomInput) (*OpenChatRoomOutput, error) {
	if input == nil {
		return nil, ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrChatRoomNameRequired
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(input.Members))
	for _, id := range input.Members {
		if room.Player(id) == nil {
			return nil, ErrPlayerNotFound
		}
		members = append(members, id)
	}

	chatRoom := &models.ChatRoom{
		ID:        s.uuid.NewPushID(),
		Name:      name,
		Members:   members,
		CreatedAt: s.clock.Now(),
	}

	err = s.update(ctx, input.RoomID, map[string]any{
		"chatRooms/" + chatRoom.ID: snapshot.EncodeChatRoom(chatRoom),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("room_id", input.RoomID).Str("channel", chatRoom.Channel()).Int("members", len(members)).Msg("chat room opened")

	return &OpenChatRoomOutput{
		ChatRoomID: chatRoom.ID,
		Channel:    chatRoom.Channel(),
	}, nil
}

// CloseChatRoom closes a chat room and drops its messages and typing indicators
func (s *service) CloseChatRoom(ctx context.Context, input *CloseChatRoomInput) error {
	if input == nil {
		return ErrRoomIDRequired
	}

	if err := requireOperator(input.Scope); err != nil {
		return err
	}

	room, err := s.load(ctx, input.RoomID)
	if err != nil {
		return err
	}

	chatRoom := room.ChatRoom(input.ChatRoomID)
	if chatRoom == nil {
		return ErrChatRoomNotFound
	}

	return s.update(ctx, input.RoomID, map[string]any{
		"chatRooms/" + chatRoom.ID:       nil,
		"channels/" + chatRoom.Channel(): nil,
		"typing/" + chatRoom.Channel():   nil,
	})
}
