package view

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// Screen is a navigation target proposed to the presentation layer
type Screen string

const (
	ScreenNone   Screen = ""
	ScreenLogin  Screen = "login"
	ScreenPlayer Screen = "player"
	ScreenPatio  Screen = "patio"
)

// Logical chat tabs
const (
	TabGlobal  = "global"
	TabPrivate = "privado"
)

// View is a client's local view of the room
type View struct {
	// Room is the snapshot as visible to Identity
	Room *models.Room

	// Identity is nil while unauthenticated
	Identity *models.Identity

	// Synced is set once any snapshot has been applied
	Synced bool

	// Unread is the set of tabs with messages the user has not seen
	Unread []string

	// Counts are the raw per-channel message counts of the last applied snapshot
	Counts map[string]int
}

// Input contains everything one reduction needs
type Input struct {
	Prev *View

	// Snapshot is the freshly normalized room
	Snapshot *models.Room

	// PrevCounts are the channel counts the unread diff is computed against;
	// nil skips the diff
	PrevCounts map[string]int

	Identity *models.Identity

	// ActiveTab and ChatOpen describe what the UI currently displays
	ActiveTab string
	ChatOpen  bool
}

// SideEffects are the UI consequences of a reduction
type SideEffects struct {
	// ForceLogout means the persisted identity must be cleared
	ForceLogout bool

	// Navigate proposes a screen, or ScreenNone
	Navigate Screen

	// NewUnread are tabs added to the unread set by this snapshot
	NewUnread []string
}

// Output contains the next view and its side effects
type Output struct {
	View    *View
	Effects SideEffects
}
