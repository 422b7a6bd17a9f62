package messaging

// MessagingError is a custom error type for messaging errors
type MessagingError string

// Error implements the error interface
func (e MessagingError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidRequest marks malformed client requests; wrap it to get the invalid_request code
	ErrInvalidRequest MessagingError = "invalid request"

	ErrNilConfig MessagingError = "config cannot be nil"
	ErrNilInput  MessagingError = "input cannot be nil"
	ErrNilError  MessagingError = "error cannot be nil"
)
