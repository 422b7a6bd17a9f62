// Package snapshot converts the raw room document into typed models and back.
// Untyped maps never leave this package.
package snapshot

import (
	"sort"
	"time"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/repositories/room"
)

// Normalize converts one raw document into a typed room. It never fails:
// absent keys become empty collections and malformed values their zero value.
func Normalize(doc *room.Document) *models.Room {
	if doc == nil {
		doc = &room.Document{}
	}
	raw := doc.Data
	if raw == nil {
		raw = map[string]any{}
	}

	status := models.RoomStatus(toString(raw["status"]))
	if !status.IsValid() {
		status = models.RoomStatusWaiting
	}

	phase := toInt(raw["gamePhase"])
	if phase < 0 {
		phase = 0
	}

	return &models.Room{
		ID:          doc.RoomID,
		Version:     doc.Version,
		Status:      status,
		GamePhase:   phase,
		CurrentGame: toString(raw["currentGame"]),
		ClockConfig: normalizeClock(raw["clockConfig"]),
		TickerText:  toString(raw["tickerText"]),
		TickerSpeed: toFloat(raw["tickerSpeed"]),
		GlobalState: toString(raw["globalState"]),

		Roles:        toSet(raw["roles"]),
		PlayerStates: toSet(raw["playerStates"]),
		PublicStates: toSet(raw["publicStates"]),
		GlobalStates: toSet(raw["globalStates"]),

		DefaultRoles:        toSet(raw["defaultRoles"]),
		DefaultPlayerStates: toSet(raw["defaultPlayerStates"]),
		DefaultPublicStates: toSet(raw["defaultPublicStates"]),
		DefaultGlobalStates: toSet(raw["defaultGlobalStates"]),

		Players:       normalizePlayers(raw["players"]),
		Votes:         normalizeVotes(raw["votes"]),
		Channels:      normalizeChannels(raw["channels"], raw["chat"]),
		Notifications: normalizeNotifications(raw["notifications"]),
		ChatRooms:     normalizeChatRooms(raw["chatRooms"]),
		Typing:        normalizeTyping(raw["typing"]),
	}
}

func normalizeClock(v any) models.ClockConfig {
	raw := toMap(v)

	mode := models.ClockMode(toString(raw["mode"]))
	if !mode.IsValid() {
		mode = models.ClockModeStatic
	}

	base := toFloat(raw["baseTime"])
	if base < 0 {
		base = 0
	}

	cfg := models.ClockConfig{
		Mode:      mode,
		BaseTime:  base,
		IsRunning: toBool(raw["isRunning"]),
		StartTime: toTimePtr(raw["startTime"]),
		PausedAt:  toTimePtr(raw["pausedAt"]),
	}

	// startTime is meaningful only while running
	if !cfg.IsRunning {
		cfg.StartTime = nil
	} else if cfg.StartTime == nil {
		cfg.IsRunning = false
	}

	return cfg
}

func normalizePlayers(v any) []*models.Player {
	raw := toMap(v)
	players := make([]*models.Player, 0, len(raw))

	for _, id := range sortedKeys(raw) {
		entry, ok := raw[id].(map[string]any)
		if !ok {
			continue
		}

		status := models.PlayerStatus(toString(entry["status"]))
		if status != models.PlayerStatusOnline {
			status = models.PlayerStatusOffline
		}

		players = append(players, &models.Player{
			ID:           id,
			Nickname:     toString(entry["nickname"]),
			IsGM:         toBool(entry["isGM"]),
			Status:       status,
			LastSeen:     toTime(entry["lastSeen"]),
			Ready:        toBool(entry["ready"]),
			Roles:        toSet(entry["roles"]),
			PlayerStates: toSet(entry["playerStates"]),
			PublicStates: toSet(entry["publicStates"]),
		})
	}

	return players
}

func normalizeVotes(v any) map[string]map[string]bool {
	raw := toMap(v)
	votes := make(map[string]map[string]bool, len(raw))

	for gameID, entry := range raw {
		voters := toSet(entry)
		if len(voters) == 0 {
			continue
		}
		set := make(map[string]bool, len(voters))
		for _, voter := range voters {
			set[voter] = true
		}
		votes[gameID] = set
	}

	return votes
}

// normalizeChannels reads every channel in arrival order. Legacy flat chat
// data is folded into the global channel only when no global channel exists.
func normalizeChannels(v any, legacy any) map[string][]*models.ChatMessage {
	raw := toMap(v)
	channels := make(map[string][]*models.ChatMessage, len(raw))

	for name, entry := range raw {
		channels[name] = normalizeMessages(name, entry)
	}

	if _, ok := channels[models.GlobalChannel]; !ok {
		if legacyMessages := normalizeMessages(models.GlobalChannel, legacy); len(legacyMessages) > 0 {
			channels[models.GlobalChannel] = legacyMessages
		}
	}

	return channels
}

func normalizeMessages(channel string, v any) []*models.ChatMessage {
	type keyed struct {
		key   string
		entry any
	}

	var entries []keyed
	switch raw := v.(type) {
	case []any:
		for _, e := range raw {
			entries = append(entries, keyed{entry: e})
		}
	default:
		// Push ids sort by arrival
		m := toMap(v)
		for _, key := range sortedKeys(m) {
			entries = append(entries, keyed{key: key, entry: m[key]})
		}
	}

	messages := make([]*models.ChatMessage, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.entry.(map[string]any)
		if !ok {
			continue
		}

		id := toString(entry["id"])
		if id == "" {
			id = e.key
		}

		role := models.ChatRole(toString(entry["role"]))
		if role != models.ChatRoleGM {
			role = models.ChatRolePlayer
		}

		messages = append(messages, &models.ChatMessage{
			ID:        id,
			User:      toString(entry["user"]),
			UserID:    toString(entry["userId"]),
			Text:      toString(entry["text"]),
			Role:      role,
			Timestamp: toTime(entry["timestamp"]),
			Channel:   channel,
		})
	}

	return messages
}

func normalizeNotifications(v any) []*models.Notification {
	raw := toMap(v)
	notifications := make([]*models.Notification, 0, len(raw))

	for _, id := range sortedKeys(raw) {
		entry, ok := raw[id].(map[string]any)
		if !ok {
			continue
		}

		payload := toMap(entry["payload"])
		text := toString(payload["text"])
		if text == "" {
			text = toString(payload["message"])
		}

		notifications = append(notifications, &models.Notification{
			ID:   id,
			Type: models.NotificationType(toString(entry["type"])),
			Payload: models.NotificationPayload{
				SoundID:    toString(payload["soundId"]),
				DurationMs: toInt(payload["duration"]),
				Text:       text,
			},
			TargetPlayerID: toString(entry["targetPlayerId"]),
			Timestamp:      toTime(entry["timestamp"]),
		})
	}

	return notifications
}

func normalizeChatRooms(v any) []*models.ChatRoom {
	raw := toMap(v)
	rooms := make([]*models.ChatRoom, 0, len(raw))

	for _, id := range sortedKeys(raw) {
		entry, ok := raw[id].(map[string]any)
		if !ok {
			continue
		}

		rooms = append(rooms, &models.ChatRoom{
			ID:        id,
			Name:      toString(entry["name"]),
			Members:   toSet(entry["members"]),
			CreatedAt: toTime(entry["createdAt"]),
		})
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.Before(rooms[j].CreatedAt)
	})

	return rooms
}

func normalizeTyping(v any) map[string]map[string]time.Time {
	raw := toMap(v)
	typing := make(map[string]map[string]time.Time, len(raw))

	for channel, entry := range raw {
		byUser := map[string]time.Time{}
		for user, at := range toMap(entry) {
			if t := toTime(at); !t.IsZero() {
				byUser[user] = t
			}
		}
		if len(byUser) > 0 {
			typing[channel] = byUser
		}
	}

	return typing
}
