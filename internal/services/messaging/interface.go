package messaging

import "context"

// Service turns engine outcomes into the text players read
type Service interface {
	// GetErrorMessage returns a stable code and a user-friendly message for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetStatusMessage returns a line describing the room status
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)
}
