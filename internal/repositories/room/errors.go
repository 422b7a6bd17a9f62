package room

import "errors"

var (
	// ErrInvalidPath is returned for empty paths or paths with empty segments
	ErrInvalidPath = errors.New("invalid document path")

	// ErrRoomIDRequired is returned when an input omits the room ID
	ErrRoomIDRequired = errors.New("room ID cannot be empty")

	// ErrPathNotFound is returned when a path an update requires is missing
	ErrPathNotFound = errors.New("document path not found")

	// ErrWriteConflict is returned when a write kept losing optimistic races
	ErrWriteConflict = errors.New("write conflict: too many concurrent writers")
)
