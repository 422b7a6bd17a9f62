package command

// CommandError is a custom error type for command bus errors
type CommandError string

// Error implements the error interface
func (e CommandError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotOperator      CommandError = "only the operator can issue commands"
	ErrInvalidType      CommandError = "invalid command type"
	ErrUnknownSound     CommandError = "sound is not in the catalog"
	ErrInvalidDuration  CommandError = "vibration duration must be positive"
	ErrTextRequired     CommandError = "command text cannot be empty"
	ErrRoomIDRequired   CommandError = "room id cannot be empty"
	ErrNilConfig        CommandError = "config cannot be nil"
	ErrNilRoomRepo      CommandError = "room repository cannot be nil"
	ErrNilEffects       CommandError = "effects cannot be nil"
	ErrNilLocalStore    CommandError = "local store cannot be nil"
	ErrNilCatalog       CommandError = "catalog cannot be nil"
	ErrNilClock         CommandError = "clock cannot be nil"
	ErrIdentityRequired CommandError = "identity cannot be empty"
)
