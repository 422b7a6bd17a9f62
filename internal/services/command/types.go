package command

import (
	"github.com/KirkDiggler/roomsync/internal/models"
)

// EnqueueInput contains parameters for issuing a command
type EnqueueInput struct {
	RoomID string

	// Actor must be the operator
	Actor *models.Identity

	Type    models.NotificationType
	Payload models.NotificationPayload

	// TargetPlayerID is empty for a broadcast
	TargetPlayerID string
}

// EnqueueOutput contains the result of issuing a command
type EnqueueOutput struct {
	NotificationID string
}

// DispatchInput contains one snapshot's command queue
type DispatchInput struct {
	RoomID string

	// SelfID is the identity of this client
	SelfID string

	Notifications []*models.Notification
}

// DispatchOutput reports what this client consumed
type DispatchOutput struct {
	// Executed are the ids consumed from this snapshot, in execution order
	Executed []string
}
