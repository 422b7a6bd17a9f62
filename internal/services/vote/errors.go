package vote

// VoteError is a custom error type for vote-related errors
type VoteError string

// Error implements the error interface
func (e VoteError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownGame     VoteError = "game is not in the catalog"
	ErrVoterNotFound   VoteError = "voter is not a player in the room"
	ErrVoterRequired   VoteError = "voter cannot be empty"
	ErrNilConfig       VoteError = "config cannot be nil"
	ErrNilRoomRepo     VoteError = "room repository cannot be nil"
	ErrNilCatalog      VoteError = "catalog cannot be nil"
	ErrRoomIDRequired VoteError = "room id cannot be empty"
)
