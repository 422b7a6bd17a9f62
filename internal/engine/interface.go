package engine

import (
	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

// Observer receives everything the presentation layer renders. Calls come
// from the client's loop goroutine, one at a time.
type Observer interface {
	// ViewChanged delivers the view after every applied snapshot
	ViewChanged(v *view.View)

	// ClockChanged delivers the displayed clock when it changes
	ClockChanged(display string)

	// Navigate proposes a screen
	Navigate(screen view.Screen)

	// Unread reports tabs that just received unseen messages
	Unread(tabs []string)

	// IdentityChanged reports a login, or nil on logout
	IdentityChanged(identity *models.Identity)
}
