package models

import "time"

// NotificationType selects the local effect a command triggers
type NotificationType string

const (
	// NotificationTypeSound plays a sound by ID
	NotificationTypeSound NotificationType = "sound"

	// NotificationTypeVibration vibrates the device for a duration
	NotificationTypeVibration NotificationType = "vibration"

	// NotificationTypeDivineVoice displays and speaks a message
	NotificationTypeDivineVoice NotificationType = "divineVoice"

	// NotificationTypeGlobalMessage displays a broadcast banner
	NotificationTypeGlobalMessage NotificationType = "globalMessage"
)

// IsValid reports whether the type is one of the known values
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeSound, NotificationTypeVibration, NotificationTypeDivineVoice, NotificationTypeGlobalMessage:
		return true
	}
	return false
}

// NotificationPayload carries the type-specific arguments of a command
type NotificationPayload struct {
	// SoundID is set for sound commands
	SoundID string

	// DurationMs is set for vibration commands
	DurationMs int

	// Text is set for divine voice and global message commands
	Text string
}

// Notification is a one-shot command targeted at one client or broadcast
type Notification struct {
	ID      string
	Type    NotificationType
	Payload NotificationPayload

	// TargetPlayerID is empty for a broadcast
	TargetPlayerID string

	Timestamp time.Time
}

// IsFor reports whether the command targets the given identity
func (n *Notification) IsFor(playerID string) bool {
	return n.TargetPlayerID == "" || n.TargetPlayerID == playerID
}

// HistoryEntry is a locally retained record of a processed command. It is
// kept for display only.
type HistoryEntry struct {
	NotificationID string           `yaml:"notificationId"`
	Type           NotificationType `yaml:"type"`
	Text           string           `yaml:"text"`
	ReceivedAt     time.Time        `yaml:"receivedAt"`
}
