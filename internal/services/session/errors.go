package session

// SessionError is a custom error type for session errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNicknameRequired SessionError = "nickname cannot be empty"
	ErrIdentityRequired SessionError = "identity cannot be empty"
	ErrRoomIDRequired   SessionError = "room id cannot be empty"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilRoomRepo      SessionError = "room repository cannot be nil"
	ErrNilIdentityRepo  SessionError = "identity repository cannot be nil"
	ErrNilLocalStore    SessionError = "local store cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
)
