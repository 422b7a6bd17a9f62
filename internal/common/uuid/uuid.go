package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/roomsync/internal/common/uuid Generator

// Generator creates identifiers for room records
type Generator interface {
	// NewPushID returns an identifier that sorts by creation time
	NewPushID() string

	// NewSubject returns a random anonymous identity
	NewSubject() string
}

// DefaultGenerator implements Generator with the uuid package
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewPushID returns a version 7 UUID, whose string form sorts by time
func (d *DefaultGenerator) NewPushID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewSubject returns a version 4 UUID
func (d *DefaultGenerator) NewSubject() string {
	return uuid.New().String()
}
