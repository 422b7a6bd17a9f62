package gateway

import (
	"sort"

	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

// renderView shapes a view for the browser. Room fields keep the names they
// have in the room record; messages are sorted by timestamp for display.
func renderView(v *view.View, statusMessage string) map[string]any {
	out := map[string]any{
		"synced":        v.Synced,
		"identity":      toIdentityPayload(v.Identity),
		"unread":        nonNil(v.Unread),
		"statusMessage": statusMessage,
	}

	r := v.Room
	if r == nil {
		return out
	}

	players := make([]any, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, snapshot.EncodePlayer(p))
	}

	channels := make(map[string]any, len(r.Channels))
	for name, messages := range r.Channels {
		rendered := make([]any, 0, len(messages))
		for _, m := range models.SortMessages(messages) {
			rendered = append(rendered, snapshot.EncodeMessage(m))
		}
		channels[name] = rendered
	}

	chatRooms := make([]any, 0, len(r.ChatRooms))
	for _, c := range r.ChatRooms {
		chatRooms = append(chatRooms, snapshot.EncodeChatRoom(c))
	}

	typing := make(map[string]any, len(r.Typing))
	for channel, who := range r.Typing {
		ids := make([]string, 0, len(who))
		for id := range who {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		typing[channel] = ids
	}

	out["room"] = map[string]any{
		"status":          string(r.Status),
		"gamePhase":       r.GamePhase,
		"currentGame":     r.CurrentGame,
		"clockConfig":     snapshot.EncodeClock(r.ClockConfig),
		"tickerText":      r.TickerText,
		"tickerSpeed":     r.TickerSpeed,
		"globalState":     r.GlobalState,
		"roles":           snapshot.EncodeSet(r.Roles),
		"playerStates":    snapshot.EncodeSet(r.PlayerStates),
		"publicStates":    snapshot.EncodeSet(r.PublicStates),
		"globalStates":    snapshot.EncodeSet(r.GlobalStates),
		"players":         players,
		"votes":           snapshot.EncodeVotes(r.Votes),
		"channels":        channels,
		"chatRooms":       chatRooms,
		"typing":          typing,
		"pendingCommands": len(r.Notifications),
	}

	return out
}

func nonNil(tabs []string) []string {
	if tabs == nil {
		return []string{}
	}
	return tabs
}
