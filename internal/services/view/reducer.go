// Package view merges normalized snapshots into a client's local view.
package view

import (
	"slices"
	"sort"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// Reduce applies a snapshot to the previous view. It is pure.
func Reduce(input *Input) *Output {
	prev := input.Prev
	if prev == nil {
		prev = &View{}
	}

	snap := input.Snapshot
	if snap == nil {
		snap = &models.Room{}
	}

	identity := input.Identity
	isGM := identity != nil && identity.IsGM

	// A shut down room or an expelled player logs out every non-operator
	// client; nothing else from the snapshot is applied
	if identity != nil && !isGM && (snap.Status == models.RoomStatusShutdown || wasExpelled(prev, snap, identity.ID)) {
		return &Output{
			View: &View{
				Room:   prev.Room,
				Synced: prev.Synced,
				Unread: slices.Clone(prev.Unread),
				Counts: prev.Counts,
			},
			Effects: SideEffects{
				ForceLogout: true,
				Navigate:    ScreenLogin,
			},
		}
	}

	visible := Visible(snap, identity)
	counts := visible.ChannelCounts()

	next := &View{
		Room:     visible,
		Identity: identity,
		Synced:   true,
		Unread:   slices.Clone(prev.Unread),
		Counts:   counts,
	}

	var effects SideEffects

	if input.PrevCounts != nil {
		for _, channel := range sortedChannels(counts) {
			if counts[channel] <= input.PrevCounts[channel] {
				continue
			}
			tab := TabFor(channel)
			if input.ChatOpen && input.ActiveTab == tab {
				continue
			}
			if !slices.Contains(next.Unread, tab) {
				next.Unread = append(next.Unread, tab)
				effects.NewUnread = append(effects.NewUnread, tab)
			}
		}
	}

	if identity != nil && !isGM {
		effects.Navigate = navigation(prev, snap)
	}

	return &Output{View: next, Effects: effects}
}

// MarkRead removes a tab from the unread set
func (v *View) MarkRead(tab string) {
	v.Unread = slices.DeleteFunc(v.Unread, func(t string) bool { return t == tab })
}

// TabFor maps a channel to the logical tab that displays it
func TabFor(channel string) string {
	switch {
	case channel == models.GlobalChannel:
		return TabGlobal
	case models.IsPrivateChannel(channel):
		return TabPrivate
	}
	return channel
}

// navigation proposes the screen for a status transition. The first snapshot
// applied for an identity proposes the screen for the current status.
func navigation(prev *View, snap *models.Room) Screen {
	var prevStatus models.RoomStatus
	if prev.Synced && prev.Room != nil && prev.Identity != nil {
		prevStatus = prev.Room.Status
	}

	if prevStatus == snap.Status {
		return ScreenNone
	}

	switch snap.Status {
	case models.RoomStatusPlaying:
		if prevStatus == "" || prevStatus == models.RoomStatusWaiting {
			return ScreenPlayer
		}
	case models.RoomStatusWaiting:
		return ScreenPatio
	}
	return ScreenNone
}

// wasExpelled reports whether the player was in the previous view and is
// missing from the snapshot
func wasExpelled(prev *View, snap *models.Room, playerID string) bool {
	if !prev.Synced || prev.Room == nil || prev.Room.Player(playerID) == nil {
		return false
	}
	return snap.Player(playerID) == nil
}

func sortedChannels(counts map[string]int) []string {
	channels := make([]string, 0, len(counts))
	for c := range counts {
		channels = append(channels, c)
	}
	sort.Strings(channels)
	return channels
}
