package snapshot

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// Encoders turn typed values back into the raw shapes stored in the room
// record. Times are written as epoch milliseconds and sets as arrays.

// EncodePlayer returns the raw player sub-record
func EncodePlayer(p *models.Player) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"nickname":     p.Nickname,
		"isGM":         p.IsGM,
		"status":       string(p.Status),
		"lastSeen":     millis(p.LastSeen),
		"ready":        p.Ready,
		"roles":        EncodeSet(p.Roles),
		"playerStates": EncodeSet(p.PlayerStates),
		"publicStates": EncodeSet(p.PublicStates),
	}
}

// EncodeClock returns the raw clock configuration. It is always written whole.
func EncodeClock(c models.ClockConfig) map[string]any {
	return map[string]any{
		"mode":      string(c.Mode),
		"baseTime":  c.BaseTime,
		"isRunning": c.IsRunning,
		"startTime": millisPtr(c.StartTime),
		"pausedAt":  millisPtr(c.PausedAt),
	}
}

// EncodeNotification returns the raw command record without its id, which
// the store assigns on push
func EncodeNotification(n *models.Notification) map[string]any {
	payload := map[string]any{}
	if n.Payload.SoundID != "" {
		payload["soundId"] = n.Payload.SoundID
	}
	if n.Payload.DurationMs > 0 {
		payload["duration"] = n.Payload.DurationMs
	}
	if n.Payload.Text != "" {
		payload["text"] = n.Payload.Text
	}

	var target any
	if n.TargetPlayerID != "" {
		target = n.TargetPlayerID
	}

	return map[string]any{
		"type":           string(n.Type),
		"payload":        payload,
		"targetPlayerId": target,
		"timestamp":      millis(n.Timestamp),
	}
}

// EncodeMessage returns the raw chat message without its id
func EncodeMessage(m *models.ChatMessage) map[string]any {
	return map[string]any{
		"user":      m.User,
		"userId":    m.UserID,
		"text":      m.Text,
		"role":      string(m.Role),
		"timestamp": millis(m.Timestamp),
		"channel":   m.Channel,
	}
}

// EncodeChatRoom returns the raw chat room record
func EncodeChatRoom(c *models.ChatRoom) map[string]any {
	return map[string]any{
		"name":      c.Name,
		"members":   EncodeSet(c.Members),
		"createdAt": millis(c.CreatedAt),
	}
}

// EncodeVotes returns the whole raw votes map. Empty sets are dropped.
func EncodeVotes(votes map[string]map[string]bool) map[string]any {
	out := make(map[string]any, len(votes))
	for gameID, voters := range votes {
		set := map[string]any{}
		for voter, ok := range voters {
			if ok {
				set[voter] = true
			}
		}
		if len(set) > 0 {
			out[gameID] = set
		}
	}
	return out
}

// EncodeSet returns a label set as a raw array, never nil
func EncodeSet(labels []string) []any {
	out := make([]any, 0, len(labels))
	for _, l := range labels {
		out = append(out, l)
	}
	return out
}
