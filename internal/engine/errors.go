package engine

// EngineError is a custom error type for client engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotLoggedIn       EngineError = "client is not logged in"
	ErrAlreadyLoggedIn   EngineError = "client is already logged in"
	ErrAlreadyRunning    EngineError = "client is already running"
	ErrStopped           EngineError = "client is not running"
	ErrNilConfig         EngineError = "config cannot be nil"
	ErrRoomIDRequired    EngineError = "room id cannot be empty"
	ErrNilRoomRepo       EngineError = "room repository cannot be nil"
	ErrNilSessionService EngineError = "session service cannot be nil"
	ErrNilLocalStore     EngineError = "local store cannot be nil"
	ErrNilEffects        EngineError = "effects cannot be nil"
	ErrNilObserver       EngineError = "observer cannot be nil"
	ErrNilClock          EngineError = "clock cannot be nil"
)
