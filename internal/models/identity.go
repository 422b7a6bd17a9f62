package models

// Identity is a client's anonymous identity as persisted locally
type Identity struct {
	// ID is the authentication subject
	ID string `yaml:"identity"`

	Nickname string `yaml:"nickname"`

	// IsGM flags the operator's client
	IsGM bool `yaml:"isGM"`
}
