package gateway

import (
	"fmt"

	"github.com/KirkDiggler/roomsync/internal/services/messaging"
)

// GatewayError is a custom error type for gateway errors
type GatewayError string

// Error implements the error interface
func (e GatewayError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSendBufferFull      GatewayError = "connection send buffer is full"
	ErrNilConfig           GatewayError = "config cannot be nil"
	ErrRoomIDRequired      GatewayError = "room id cannot be empty"
	ErrNilRoomRepo         GatewayError = "room repository cannot be nil"
	ErrNilIdentityRepo     GatewayError = "identity repository cannot be nil"
	ErrNilRoomService      GatewayError = "room service cannot be nil"
	ErrNilCommandService   GatewayError = "command service cannot be nil"
	ErrNilMessagingService GatewayError = "messaging service cannot be nil"
	ErrNilCatalog          GatewayError = "catalog cannot be nil"
	ErrNilClock            GatewayError = "clock cannot be nil"
)

// Request errors carry the invalid_request code
var (
	ErrMalformedMessage   = fmt.Errorf("%w: malformed message", messaging.ErrInvalidRequest)
	ErrUnknownMessageType = fmt.Errorf("%w: unknown message type", messaging.ErrInvalidRequest)
	ErrUnknownAction      = fmt.Errorf("%w: unknown action", messaging.ErrInvalidRequest)
)
