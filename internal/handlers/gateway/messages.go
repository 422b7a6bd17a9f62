package gateway

import (
	"encoding/json"

	"github.com/KirkDiggler/roomsync/internal/models"
)

// MessageType identifies a gateway message
type MessageType string

// Browser to gateway
const (
	MessageTypeHello  MessageType = "hello"
	MessageTypeLogin  MessageType = "login"
	MessageTypeLogout MessageType = "logout"
	MessageTypeAction MessageType = "action"
	MessageTypeUI     MessageType = "ui"
)

// Gateway to browser
const (
	MessageTypeView     MessageType = "view"
	MessageTypeClock    MessageType = "clock"
	MessageTypeNavigate MessageType = "navigate"
	MessageTypeUnread   MessageType = "unread"
	MessageTypeEffect   MessageType = "effect"
	MessageTypeIdentity MessageType = "identity"
	MessageTypeResult   MessageType = "result"
	MessageTypeError    MessageType = "error"
)

// ClientMessage is anything the browser sends
type ClientMessage struct {
	Type MessageType `json:"type"`

	// RequestID is echoed on the result or error of the request
	RequestID string `json:"requestId,omitempty"`

	// Hello carries what the browser persisted from an earlier session
	Identity *IdentityPayload `json:"identity,omitempty"`

	// Login
	Nickname string `json:"nickname,omitempty"`
	IsGM     bool   `json:"isGM,omitempty"`

	// Action
	Action string          `json:"action,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`

	// UI state
	ActiveTab string `json:"activeTab,omitempty"`
	ChatOpen  bool   `json:"chatOpen,omitempty"`
}

// ServerMessage is anything the gateway sends
type ServerMessage struct {
	Type      MessageType `json:"type"`
	RequestID string      `json:"requestId,omitempty"`

	View     map[string]any   `json:"view,omitempty"`
	Display  string           `json:"display,omitempty"`
	Screen   string           `json:"screen,omitempty"`
	Tabs     []string         `json:"tabs,omitempty"`
	Effect   *EffectPayload   `json:"effect,omitempty"`
	Identity *IdentityPayload `json:"identity,omitempty"`
	Result   any              `json:"result,omitempty"`
	Error    *ErrorPayload    `json:"error,omitempty"`
}

// IdentityPayload is the identity the browser persists between visits
type IdentityPayload struct {
	ID       string `json:"identity"`
	Nickname string `json:"nickname"`
	IsGM     bool   `json:"isGM"`
}

// EffectPayload asks the browser to run a command's local effect
type EffectPayload struct {
	Kind       models.NotificationType `json:"kind"`
	SoundID    string                  `json:"soundId,omitempty"`
	DurationMs int64                   `json:"durationMs,omitempty"`
	Text       string                  `json:"text,omitempty"`
}

// ErrorPayload describes a failed request
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toIdentityPayload(identity *models.Identity) *IdentityPayload {
	if identity == nil {
		return nil
	}
	return &IdentityPayload{
		ID:       identity.ID,
		Nickname: identity.Nickname,
		IsGM:     identity.IsGM,
	}
}

func (p *IdentityPayload) toModel() *models.Identity {
	if p == nil || p.ID == "" {
		return nil
	}
	return &models.Identity{
		ID:       p.ID,
		Nickname: p.Nickname,
		IsGM:     p.IsGM,
	}
}
