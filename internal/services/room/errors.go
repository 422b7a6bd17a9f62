package room

// RoomError is a custom error type for room action errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotOperator          RoomError = "only the operator can do this"
	ErrForbidden            RoomError = "players may only change their own record"
	ErrActorRequired        RoomError = "actor cannot be empty"
	ErrRoomIDRequired       RoomError = "room id cannot be empty"
	ErrPlayerNotFound       RoomError = "player not found"
	ErrCannotExpelSelf      RoomError = "the operator cannot expel themselves"
	ErrNicknameRequired     RoomError = "nickname cannot be empty"
	ErrInvalidStatus        RoomError = "invalid room status"
	ErrInvalidRoomState     RoomError = "invalid room state"
	ErrInvalidOptionList    RoomError = "invalid option list"
	ErrOptionRequired       RoomError = "option cannot be empty"
	ErrOptionExists         RoomError = "option already exists"
	ErrOptionNotFound       RoomError = "option not found"
	ErrInvalidTickerSpeed   RoomError = "ticker speed must be positive"
	ErrInvalidChannel       RoomError = "invalid channel"
	ErrMessageRequired      RoomError = "message cannot be empty"
	ErrChatRoomNotFound     RoomError = "chat room not found"
	ErrChatRoomNameRequired RoomError = "chat room name cannot be empty"
	ErrNilConfig            RoomError = "config cannot be nil"
	ErrNilRoomRepo          RoomError = "room repository cannot be nil"
	ErrNilVoteService       RoomError = "vote service cannot be nil"
	ErrNilCatalog           RoomError = "catalog cannot be nil"
	ErrNilClock             RoomError = "clock cannot be nil"
	ErrNilUUIDGenerator     RoomError = "UUID generator cannot be nil"
)
